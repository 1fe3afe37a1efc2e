package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aaqil101/toggl-to-timekeep/internal/pdftext"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect PDF",
	Short: "Dump the raw text extracted from a report PDF",
	Long: `Inspect prints the plain text recovered from a Toggl report PDF, so the
entry patterns can be checked when a report fails to parse.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _ := cmd.Flags().GetString("backend")
		ex, err := pdftext.Select(backend)
		if err != nil {
			return err
		}
		text, err := ex.Extract(args[0])
		if err != nil {
			return err
		}
		fmt.Print(pdftext.Clean(text))
		return nil
	},
}

func init() {
	inspectCmd.Flags().String("backend", "native", "PDF text backend: native or pdftotext")

	rootCmd.AddCommand(inspectCmd)
}
