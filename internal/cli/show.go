package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/protokit-labs/protokit/internal/definitions"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <type>",
	Short: "Show a project definition",
	Long: `Show a project definition with its dependencies, scripts and template files.
Dependency versions are shown with the range they allow.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	set, err := loadDefinitions(cmd)
	if err != nil {
		return err
	}
	key, err := set.Resolve(args[0])
	if err != nil {
		return err
	}
	def, err := set.Definition(key)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s (%s)\n", def.Name, def.Type)
	fmt.Fprintf(w, "Key:         %s\n", def.Key)
	fmt.Fprintf(w, "Source:      %s\n", def.Origin)
	fmt.Fprintf(w, "Description: %s\n", def.Description)
	if def.SrcFolder != "" || def.Source != "" {
		fmt.Fprintf(w, "Entry:       %s/%s\n", orDash(def.SrcFolder), orDash(def.Source))
	}
	if def.ModuleType != "" {
		fmt.Fprintf(w, "Module type: %s\n", def.ModuleType)
	}

	printVersions(w, "Dependencies", def.Dependencies.Base)
	printVersions(w, "Unit test dependencies", def.Dependencies.Test.Unit)
	printVersions(w, "E2E test dependencies", def.Dependencies.Test.E2E)

	printMap(w, "Scripts", def.ScriptsFor(definitions.Features{}))
	printMap(w, "Test scripts", def.Scripts.Test)

	if files := def.RequiredFiles(); len(files) > 0 {
		fmt.Fprintf(w, "\nTemplate files:\n")
		for _, f := range files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	for _, q := range def.Questions {
		fmt.Fprintf(w, "\nQuestion %s (%s): %s\n", q.Name, q.Type, q.Message)
		for _, c := range q.Choices {
			fmt.Fprintf(w, "  - %s\n", c.Name)
		}
	}
	return nil
}

// printVersions lists deps with the range each allows. A version that does not
// parse is printed as written; validate reports it.
func printVersions(w io.Writer, title string, deps map[string]string) {
	if len(deps) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, name := range sortedNames(deps) {
		spec := deps[name]
		desc, err := definitions.DescribeVersion(spec)
		if err != nil || desc == spec {
			fmt.Fprintf(w, "  %s %s\n", name, spec)
			continue
		}
		fmt.Fprintf(w, "  %s %s (%s)\n", name, spec, desc)
	}
}

func printMap(w io.Writer, title string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	width := 0
	for k := range m {
		width = max(width, len(k))
	}
	for _, k := range sortedNames(m) {
		fmt.Fprintf(w, "  %s%s  %s\n", k, strings.Repeat(" ", width-len(k)), m[k])
	}
}

func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
