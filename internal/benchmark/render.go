package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the report representation.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a config or flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", s)
	}
}

const (
	titleWidth = 40
	valueWidth = 8
)

// Renderer writes reports. Heading, when set, decorates section titles of
// the text format.
type Renderer struct {
	Format  Format
	Heading func(string) string
}

type encodedReport struct {
	Suite      string          `json:"suite" yaml:"suite"`
	BuildInfo  string          `json:"build_info" yaml:"build_info"`
	Baseline   string          `json:"baseline" yaml:"baseline"`
	Results    []encodedResult `json:"results" yaml:"results"`
	Normalized []Normalized    `json:"normalized" yaml:"normalized"`
}

type encodedResult struct {
	Name       string `json:"name" yaml:"name"`
	Iterations int64  `json:"iterations" yaml:"iterations"`
	ElapsedNs  int64  `json:"elapsed_ns" yaml:"elapsed_ns"`
	ElapsedMs  int64  `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// Render writes r to w. Normalization errors are returned before anything
// is written.
func (rd Renderer) Render(w io.Writer, r *Report) error {
	norm, err := r.Normalize()
	if err != nil {
		return err
	}

	switch rd.Format {
	case "", FormatText:
		return rd.renderText(w, r, norm)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(encode(r, norm))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(encode(r, norm)); err != nil {
			return err
		}
		return enc.Close()
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r, norm))
		return err
	default:
		return fmt.Errorf("unsupported report format: %s", rd.Format)
	}
}

func encode(r *Report, norm []Normalized) encodedReport {
	out := encodedReport{
		Suite:      r.Suite,
		BuildInfo:  r.BuildInfo,
		Baseline:   r.Baseline,
		Normalized: norm,
	}
	for _, res := range r.Results {
		out.Results = append(out.Results, encodedResult{
			Name:       res.Name,
			Iterations: res.Iterations,
			ElapsedNs:  res.Elapsed.Nanoseconds(),
			ElapsedMs:  res.Millis(),
		})
	}
	return out
}

func (rd Renderer) heading(s string) string {
	if rd.Heading == nil {
		return s
	}
	return rd.Heading(s)
}

func (rd Renderer) renderText(w io.Writer, r *Report, norm []Normalized) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n-----------------------\n\n",
		rd.heading(fmt.Sprintf("Test report %s (build info: %s)", r.Suite, r.BuildInfo)))

	b.WriteString(rd.heading("original result (ms)"))
	b.WriteString("\n\n")
	for _, res := range r.Results {
		fmt.Fprintf(&b, "%-*s%*d\n", titleWidth, res.Name+":", valueWidth, res.Millis())
	}

	b.WriteString("\n")
	b.WriteString(rd.heading(fmt.Sprintf("normalized result (baseline: %s)", r.Baseline)))
	b.WriteString("\n\n")
	for _, n := range norm {
		fmt.Fprintf(&b, "%-*s%*.3f\n", titleWidth, n.Name+":", valueWidth, n.Ratio)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Markdown renders the report as two markdown tables.
func Markdown(r *Report, norm []Normalized) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\nBuild: `%s`\n\n", r.Suite, r.BuildInfo)
	b.WriteString("| trial | iterations | ms | ns/op |\n| --- | ---: | ---: | ---: |\n")
	for _, res := range r.Results {
		fmt.Fprintf(&b, "| %s | %d | %d | %.2f |\n", res.Name, res.Iterations, res.Millis(), res.NsPerOp())
	}
	fmt.Fprintf(&b, "\n## normalized (baseline: %s)\n\n", r.Baseline)
	b.WriteString("| trial | ratio |\n| --- | ---: |\n")
	for _, n := range norm {
		fmt.Fprintf(&b, "| %s | %.3f |\n", n.Name, n.Ratio)
	}
	return b.String()
}
