package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/invoice-render/internal/inspect"
	"github.com/pdiddy/invoice-render/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report page count and dimensions of a PDF",
	Long: `Inspect reads the page count and per-page media box dimensions of a PDF
without rasterizing it. Useful for checking an invoice before rendering.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("input", "", "path to the PDF")
	inspectCmd.Flags().Bool("json", false, "output the report as JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		return fmt.Errorf("provide a PDF with --input")
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	cfg := types.InspectConfig{JSON: jsonOut}

	info, err := inspect.Inspect(input)
	if err != nil {
		return err
	}

	if cfg.JSON {
		return info.ReportJSON(os.Stdout)
	}
	info.Report(os.Stdout)
	return nil
}
