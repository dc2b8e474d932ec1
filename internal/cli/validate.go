package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/muesli/termenv"
	"github.com/protokit-labs/protokit/internal/schema"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned when at least one definition has errors.
var ErrValidationFailed = errors.New("validation failed")

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate [type]",
	Short: "Validate project definitions",
	Long: `Validate one project definition, or all of them when no type is given.
The type may be a directory name or key in any case (next-typescript,
NEXT_TYPESCRIPT). Exits non-zero when any definition has errors.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	set, err := loadDefinitions(cmd)
	if err != nil {
		return err
	}

	var results map[string]schema.Result
	if len(args) == 1 {
		key, err := set.Resolve(args[0])
		if err != nil {
			return err
		}
		raw, _ := set.Get(key)
		results = map[string]schema.Result{key: schema.ValidateProjectConfig(raw)}
	} else {
		results = schema.ValidateAllProjectConfigs(set.Raw())
	}

	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No project definitions found.")
		return nil
	}

	if validateJSON {
		err = printResultsJSON(cmd.OutOrStdout(), results)
	} else {
		err = printResults(cmd.OutOrStdout(), results)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if !res.Valid {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d definitions have errors", ErrValidationFailed, failed, len(results))
	}
	return nil
}

func printResults(w io.Writer, results map[string]schema.Result) error {
	out := termenv.NewOutput(w)
	green := out.Color("2")
	red := out.Color("1")
	yellow := out.Color("3")

	for i, key := range sortedResultKeys(results) {
		res := results[key]
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s:\n", out.String(key).Bold())

		color := green
		if !res.Valid {
			color = red
		}
		fmt.Fprintf(w, "Valid: %s\n", out.String(fmt.Sprint(res.Valid)).Foreground(color))

		if len(res.Errors) > 0 {
			fmt.Fprintln(w, "Errors:")
			for _, e := range res.Errors {
				fmt.Fprintf(w, "- %s\n", out.String(e).Foreground(red))
			}
		}
		if len(res.Warnings) > 0 {
			fmt.Fprintln(w, "Warnings:")
			for _, warning := range res.Warnings {
				fmt.Fprintf(w, "- %s\n", out.String(warning).Foreground(yellow))
			}
		}
	}
	return nil
}

func printResultsJSON(w io.Writer, results map[string]schema.Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func sortedResultKeys(results map[string]schema.Result) []string {
	keys := make([]string, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
