package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Aaqil101/toggl-to-timekeep/internal/pdftext"
	"github.com/Aaqil101/toggl-to-timekeep/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert [inputs...]",
	Short: "Convert Toggl report files to Timekeep JSON",
	Long: `Convert reads Toggl Track detailed-report exports and writes a Timekeep
JSON entry list, a readable text summary, and a YAML run manifest next to
each input (or at --output). Inputs may be report PDFs, detailed CSV
exports, or directories of CSV exports.

PDF reports print clock times but no dates; the start date comes from
--start-date or from a from_YYYY_MM_DD fragment in the export filename.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _ := cmd.Flags().GetString("backend")
		if !cmd.Flags().Changed("backend") && viper.IsSet("backend") {
			backend = viper.GetString("backend")
		}
		block, _ := cmd.Flags().GetBool("block")
		if !cmd.Flags().Changed("block") && viper.IsSet("block") {
			block = viper.GetBool("block")
		}
		output, _ := cmd.Flags().GetString("output")

		var startDate time.Time
		if startStr, _ := cmd.Flags().GetString("start-date"); startStr != "" {
			t, err := time.Parse("2006-01-02", startStr)
			if err != nil {
				return fmt.Errorf("invalid --start-date %q: expected YYYY-MM-DD", startStr)
			}
			startDate = t
		}

		ex, err := pdftext.Select(backend)
		if err != nil {
			return err
		}

		opts := pipeline.Options{
			StartDate: startDate,
			Output:    output,
			Block:     block,
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			opts.Debug = os.Stderr
		}

		result, err := pipeline.Run(ex, args, opts, os.Stdout)
		if err != nil {
			return err
		}
		if result.HasFailures() {
			return fmt.Errorf("%d of %d inputs failed", result.Failed, result.Total())
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("start-date", "d", "", "start date for PDF reports (YYYY-MM-DD)")
	convertCmd.Flags().StringP("output", "o", "", "output JSON path (single input only)")
	convertCmd.Flags().String("backend", "native", "PDF text backend: native or pdftotext")
	convertCmd.Flags().Bool("block", false, "also write the fenced timekeep markdown block")
	convertCmd.Flags().Bool("debug", false, "print parser diagnostics to stderr")

	rootCmd.AddCommand(convertCmd)
}
