package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/FernBytes/sheetnorm-cli/internal/config"
	"github.com/FernBytes/sheetnorm-cli/internal/normalize"
	"github.com/FernBytes/sheetnorm-cli/internal/schema"
	"github.com/FernBytes/sheetnorm-cli/internal/source"
	"github.com/FernBytes/sheetnorm-cli/internal/utils"
	"github.com/FernBytes/sheetnorm-cli/internal/validate"
)

var (
	normOutput string
	normReport string
	normForce  bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Map a CSV/TSV onto the canonical schema and write the result",
	Long: `normalize runs the full pipeline on one file: analyze columns, build a
mapping from the suggestion, transform every row to the canonical 10-column
schema, validate, and write the output CSV plus a validation report. Blocking
validation issues stop the write unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		c := activeConfig()
		delim, err := cfgpkg.ParseDelimiter(c.Delimiter)
		if err != nil {
			return err
		}
		tab, err := source.ReadFile(path, delim)
		if err != nil {
			return err
		}

		sess := normalize.NewSession(normalize.WithSampleSize(c.SampleSize))
		an, err := sess.Analyze(tab.Headers, tab.Rows)
		if err != nil {
			return err
		}
		id, err := sess.CreateMapping(an.Suggestion.Selections, &an.Relationships)
		if err != nil {
			return err
		}
		rows, err := sess.Transform(id, tab.Headers, tab.Rows)
		if err != nil {
			return err
		}
		rep, err := sess.Validate(rows)
		if err != nil {
			return err
		}

		outPath := normOutput
		if outPath == "" {
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			dir := c.OutputDir
			if dir == "" {
				dir = filepath.Dir(path)
			}
			outPath = filepath.Join(dir, base+".normalized.csv")
		}
		reportPath := normReport
		if reportPath == "" {
			reportPath = strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".report.json"
		}

		repJSON, err := utils.PrettyJSON(rep)
		if err != nil {
			return err
		}
		if err := utils.SafeWriteFile(reportPath, repJSON); err != nil {
			return err
		}

		if rep.Blocking() && !normForce {
			printReport(rep)
			return fmt.Errorf("%d blocking issue(s); output not written (use --force to write anyway, report at %s)", len(rep.Issues), reportPath)
		}

		var buf bytes.Buffer
		headers := make([]string, schema.Width)
		copy(headers, schema.Fields[:])
		if err := source.Write(&buf, headers, rows); err != nil {
			return err
		}
		if err := utils.SafeWriteFile(outPath, buf.Bytes()); err != nil {
			return err
		}

		fmt.Printf("✓ Wrote %d rows to %s\n", len(rows), outPath)
		fmt.Printf("✓ Wrote validation report to %s\n", reportPath)
		printReport(rep)
		return nil
	},
}

func printReport(rep validate.Report) {
	for _, e := range rep.Issues {
		fmt.Printf("✗ %s: %s (rows %v)\n", columnLabel(e.Column), e.Message, e.Rows)
	}
	for _, e := range rep.Warnings {
		fmt.Printf("⚠ %s: %s (rows %v)\n", columnLabel(e.Column), e.Message, e.Rows)
	}
}

func columnLabel(col string) string {
	if col == "" {
		return "row"
	}
	return col
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().StringVarP(&normOutput, "output", "o", "", "path for the normalized CSV (default <input>.normalized.csv)")
	normalizeCmd.Flags().StringVar(&normReport, "report", "", "path for the validation report JSON")
	normalizeCmd.Flags().BoolVar(&normForce, "force", false, "write output even when blocking issues are present")
}
