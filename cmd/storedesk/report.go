package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	applog "storedesk/internal/log"
	"storedesk/internal/report"
	"storedesk/internal/validate"
)

var (
	reportFormat string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print every sales report at once",
	Long: `Print total sales, average order value, the most popular category,
product counts per category and order counts for every customer.

Formats: text (default), json, html.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "output format: text, json or html")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	format, ok := validate.Format(reportFormat)
	if !ok {
		return fmt.Errorf("unknown format %q (want text, json or html)", reportFormat)
	}

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := cmd.Context()
	if err := sess.Store.InitSchema(ctx); err != nil {
		return err
	}
	snap, err := report.Build(ctx, sess.Store, time.Now())
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if reportOut != "" {
		f, err := os.Create(reportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", reportOut, err)
		}
		defer f.Close()
		w = f
	}
	if err := report.Write(w, format, snap); err != nil {
		return err
	}
	applog.Info("report.write", map[string]any{"format": format, "out": reportOut})
	return nil
}
