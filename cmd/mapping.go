package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/FernBytes/sheetnorm-cli/internal/config"
	"github.com/FernBytes/sheetnorm-cli/internal/normalize"
	"github.com/FernBytes/sheetnorm-cli/internal/schema"
	"github.com/FernBytes/sheetnorm-cli/internal/source"
	"github.com/FernBytes/sheetnorm-cli/internal/utils"
)

var mapSet []string

var mappingCmd = &cobra.Command{
	Use:   "mapping <file>",
	Short: "Build a mapping from explicit field=header selections",
	Long: `mapping starts from the suggested mapping for a file and applies explicit
overrides given as --set "Canonical Field=Source Header" (repeatable; an empty
header clears the field). It prints the validated mapping record as JSON.`,
	Args: cobra.ExactArgs(1),
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

		sel := an.Suggestion.Selections
		for _, kv := range mapSet {
			field, header, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("invalid --set %q (want \"Field=Header\")", kv)
			}
			field = strings.TrimSpace(field)
			if schema.Index(field) < 0 {
				return fmt.Errorf("unknown canonical field %q", field)
			}
			sel[field] = strings.TrimSpace(header)
		}

		id, err := sess.CreateMapping(sel, &an.Relationships)
		if err != nil {
			return err
		}
		rec, _ := sess.Mapping(id)
		out, err := utils.PrettyJSON(map[string]any{
			"mapping_id": id,
			"mapping":    rec,
		})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mappingCmd)
	mappingCmd.Flags().StringArrayVar(&mapSet, "set", nil, `override one field, e.g. --set "Contact Number=Phone"`)
}
