package ui

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeading_Colors(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	out := Heading("original result")
	assert.Contains(t, out, "original result")
	// #7D56F4 background; the blue channel may round to 243
	assert.Contains(t, out, "48;2;125;86;24")
	assert.Equal(t, headingStyle.Render("original result"), out)

	assert.Contains(t, Status(StatusRegression), "196")
	assert.Contains(t, Status(StatusImproved), "46")
	assert.Equal(t, StatusSame, Status(StatusSame))
}

func TestHeading_Plain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := Heading("normalized result")
	assert.Equal(t, "normalized result", strings.TrimSpace(out))
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# call\n\n| trial | ratio |\n| --- | ---: |\n| direct_call | 1.000 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "direct_call")
	assert.Contains(t, out, "1.000")
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}

func TestSelectSuite(t *testing.T) {
	defer func() { AskOne = survey.AskOne }()

	var offered []string
	AskOne = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		offered = p.(*survey.Select).Options
		*(response.(*string)) = "alloc"
		return nil
	}

	choice, err := SelectSuite([]string{"call", "alloc", "pdf"})
	require.NoError(t, err)
	assert.Equal(t, "alloc", choice)
	assert.Equal(t, []string{"call", "alloc", "pdf"}, offered)

	AskOne = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		return errors.New("interrupt")
	}
	_, err = SelectSuite([]string{"call"})
	assert.ErrorContains(t, err, "suite selection cancelled")

	_, err = SelectSuite(nil)
	assert.ErrorContains(t, err, "no suites available")
}
