package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yqhu-dev/wordtrainer/internal/report"
)

func newReportCommand() *cobra.Command {
	var asPDF bool
	command := &cobra.Command{
		Use:   "report",
		Short: "Write a mastery report of the word list",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, cfg, cleanup, err := newInteractiveCLI(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			generator := report.NewGenerator(base.Store())
			path, err := generator.Write(cfg.Outputs.ReportDirectory, base.Username(), time.Now(), asPDF)
			if err != nil {
				return fmt.Errorf("generator.Write() > %w", err)
			}

			fmt.Printf("Report written to %s\n", path)
			return nil
		},
	}
	command.Flags().BoolVar(&asPDF, "pdf", false, "also convert the report to PDF")

	return command
}
