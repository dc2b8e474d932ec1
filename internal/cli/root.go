package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/protokit-labs/protokit/internal/branding"
	"github.com/protokit-labs/protokit/internal/config"
	"github.com/protokit-labs/protokit/internal/definitions"
	"github.com/protokit-labs/protokit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevelFlag    string
	definitionsDir  string
	includeBuiltins bool

	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` checks project-type definitions against the project schema
and builds the package.json of new projects from them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := logLevelFlag
		if level == "" {
			level = config.Get(config.KeyLogLevel)
		}
		lvl, err := logging.ParseLevel(level)
		if err != nil {
			return err
		}
		logger = logging.NewWithWriter(cmd.ErrOrStderr(), lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&definitionsDir, "dir", "", "Directory of project definitions, searched before the built-in ones")
	rootCmd.PersistentFlags().BoolVar(&includeBuiltins, "builtin", true, "Include the built-in project definitions")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// definitionSources returns the sources to load, highest priority first:
// --dir, then the configured definitions_dir, then the built-ins.
func definitionSources() ([]definitions.Source, error) {
	var sources []definitions.Source

	dir := definitionsDir
	if dir == "" {
		dir = config.DefinitionsDir()
	}
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("definitions directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("definitions directory %s is not a directory", dir)
		}
		sources = append(sources, definitions.DirSource(dir))
	}

	if includeBuiltins {
		sources = append(sources, definitions.Builtin())
	}
	return sources, nil
}

func loadDefinitions(cmd *cobra.Command) (*definitions.Set, error) {
	sources, err := definitionSources()
	if err != nil {
		return nil, err
	}
	set, err := definitions.Load(cmd.Context(), logger, sources...)
	if err != nil {
		return nil, err
	}
	logger.Debug("definitions loaded", slog.Int("count", set.Len()))
	return set, nil
}
