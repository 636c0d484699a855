package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfgpkg "github.com/FernBytes/sheetnorm-cli/internal/config"
	"github.com/FernBytes/sheetnorm-cli/internal/normalize"
	"github.com/FernBytes/sheetnorm-cli/internal/schema"
	"github.com/FernBytes/sheetnorm-cli/internal/source"
	"github.com/FernBytes/sheetnorm-cli/internal/utils"
)

var (
	insFormat string
	insOutput string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Analyze a CSV/TSV: column types, split fields, suggested mapping",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		delim, err := cfgpkg.ParseDelimiter(c.Delimiter)
		if err != nil {
			return err
		}
		tab, err := source.ReadFile(args[0], delim)
		if err != nil {
			return err
		}
		sess := normalize.NewSession(normalize.WithSampleSize(c.SampleSize))
		an, err := sess.Analyze(tab.Headers, tab.Rows)
		if err != nil {
			return err
		}

		var out []byte
		switch insFormat {
		case "text", "":
			out = []byte(renderAnalysis(an, len(tab.Rows)))
		case "json":
			out, err = utils.PrettyJSON(an)
			if err != nil {
				return err
			}
		case "yaml":
			out, err = yaml.Marshal(an)
			if err != nil {
				return fmt.Errorf("marshal yaml: %w", err)
			}
		default:
			return fmt.Errorf("unsupported --format: %s (use text|json|yaml)", insFormat)
		}

		if insOutput != "" {
			if err := utils.SafeWriteFile(insOutput, out); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote analysis to %s\n", insOutput)
			return nil
		}
		fmt.Println(strings.TrimRight(string(out), "\n"))
		return nil
	},
}

func renderAnalysis(an *normalize.Analysis, totalRows int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[COLUMNS] (%d rows, %d sampled)\n", totalRows, len(an.SampleIndices))
	for _, c := range an.Columns {
		fmt.Fprintf(&b, "- %s: %s\n", c.Header, c.Type)
	}

	rel := an.Relationships
	b.WriteString("\n[RELATIONSHIPS]\n")
	if rel.HasNameSplit {
		fmt.Fprintf(&b, "- name split across: %s\n", joinComponents(rel.NameComponents))
	}
	if rel.HasAddressSplit {
		fmt.Fprintf(&b, "- address split across: %s\n", joinComponents(rel.AddressComponents))
	}
	if rel.HasCombinedAddress {
		fmt.Fprintf(&b, "- combined address column: %s\n", rel.CombinedAddressColumn)
	}
	if !rel.HasNameSplit && !rel.HasAddressSplit && !rel.HasCombinedAddress {
		b.WriteString("- none detected\n")
	}

	b.WriteString("\n[SUGGESTED MAPPING]\n")
	for _, field := range schema.Fields {
		src := an.Suggestion.Selections[field]
		if src == "" {
			src = "(unmapped)"
		}
		fmt.Fprintf(&b, "- %s ← %s [%s]\n", field, src, an.Suggestion.Tiers[field])
	}
	return b.String()
}

func joinComponents(m map[string]string) string {
	parts := make([]string, 0, len(m))
	for comp, header := range m {
		parts = append(parts, fmt.Sprintf("%s=%s", comp, header))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&insFormat, "format", "f", "text", "output format: text|json|yaml")
	inspectCmd.Flags().StringVarP(&insOutput, "output", "o", "", "optional path to write the analysis")
}
