package cli

import (
	"errors"
	"fmt"

	"github.com/protokit-labs/protokit/internal/pkgjson"
	"github.com/protokit-labs/protokit/internal/schema"
	"github.com/spf13/cobra"
)

var (
	manifestName        string
	manifestDescription string
	manifestAuthor      string
	manifestSrcFolder   string
	manifestUnit        bool
	manifestE2E         bool
)

var manifestCmd = &cobra.Command{
	Use:   "manifest <type>",
	Short: "Print the package.json for a new project",
	Long: `Build the package.json a new project of the given type would start with.
The definition must pass validation, and the result is checked against the
package.json schema before it is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runManifest,
}

func init() {
	manifestCmd.Flags().StringVar(&manifestName, "name", "", "Project name (lowercase letters, digits and hyphens)")
	manifestCmd.Flags().StringVar(&manifestDescription, "description", "", "Project description")
	manifestCmd.Flags().StringVar(&manifestAuthor, "author", "", "Project author")
	manifestCmd.Flags().StringVar(&manifestSrcFolder, "src-folder", "", "Source folder (defaults to the definition's)")
	manifestCmd.Flags().BoolVar(&manifestUnit, "unit", false, "Include unit test tooling")
	manifestCmd.Flags().BoolVar(&manifestE2E, "e2e", false, "Include e2e test tooling")
	_ = manifestCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(manifestCmd)
}

func runManifest(cmd *cobra.Command, args []string) error {
	set, err := loadDefinitions(cmd)
	if err != nil {
		return err
	}
	key, err := set.Resolve(args[0])
	if err != nil {
		return err
	}

	raw, _ := set.Get(key)
	if res := schema.ValidateProjectConfig(raw); !res.Valid {
		for _, e := range res.Errors {
			logger.Error("invalid definition", "key", key, "problem", e)
		}
		return fmt.Errorf("%w: %s has %d errors", ErrValidationFailed, key, len(res.Errors))
	}

	def, err := set.Definition(key)
	if err != nil {
		return err
	}
	m, err := pkgjson.Build(def, pkgjson.Options{
		Name:             manifestName,
		Description:      manifestDescription,
		Author:           manifestAuthor,
		SrcFolder:        manifestSrcFolder,
		IncludeUnitTests: manifestUnit,
		IncludeE2ETests:  manifestE2E,
	})
	if err != nil {
		return err
	}

	check, err := m.Check()
	if err != nil {
		return err
	}
	if !check.Valid {
		for _, issue := range check.Issues {
			logger.Error("invalid package.json", "path", issue.Path, "keyword", issue.Keyword, "problem", issue.Message)
		}
		return errors.New("generated package.json does not match the package schema")
	}

	data, err := m.JSON()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
