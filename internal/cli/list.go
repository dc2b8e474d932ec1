package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available project definitions",
	Long:  `List the project definitions found in --dir, the configured definitions_dir and the built-ins.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry is one definition row.
type listEntry struct {
	Key    string `json:"key"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

func runList(cmd *cobra.Command, args []string) error {
	set, err := loadDefinitions(cmd)
	if err != nil {
		return err
	}
	if set.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No project definitions found.")
		return nil
	}

	entries := make([]listEntry, 0, set.Len())
	for _, key := range set.Keys() {
		entry := listEntry{Key: key, Source: set.Origin(key)}
		// Raw values are read directly so malformed definitions still list.
		raw, _ := set.Get(key)
		if obj, ok := raw.(map[string]any); ok {
			entry.Type, _ = obj["type"].(string)
			entry.Name, _ = obj["name"].(string)
		}
		entries = append(entries, entry)
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KEY\tTYPE\tNAME\tSOURCE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Key, orDash(e.Type), orDash(e.Name), e.Source)
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
