package main

import (
	"errors"

	"microbench/internal/config"
	"microbench/internal/pdftext"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPDFCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Time page text extraction with two PDF libraries",
		Long: `Loads --file and extracts the text of one page (0-based --page) with
rsc.io/pdf and github.com/ledongthuc/pdf. With --echo the extracted text
is printed before the report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Decode(v)
			if err != nil {
				return err
			}
			if cfg.PDF.File == "" {
				return errors.New("a PDF file is required (--file or pdf.file)")
			}

			pc := pdftext.Config{File: cfg.PDF.File, Page: cfg.PDF.Page}
			if cfg.PDF.Echo {
				pc.Out = cmd.OutOrStdout()
			}
			return runSuite(cmd, cfg, suiteRun{
				Name:     "pdf",
				Baseline: cfg.PDF.Baseline,
				Trials:   pdftext.Suite(pc),
			})
		},
	}

	cmd.Flags().StringP("file", "f", "", "PDF document to load")
	cmd.Flags().Int("page", 0, "Page to extract, starting at 0")
	cmd.Flags().Bool("echo", false, "Print the extracted text")
	cmd.Flags().String("baseline", pdftext.Baseline, "Trial the others are normalized against")
	bindFlags(v, cmd.Flags(), map[string]string{
		"pdf.file":     "file",
		"pdf.page":     "page",
		"pdf.echo":     "echo",
		"pdf.baseline": "baseline",
	})
	return cmd
}
