package cmd

import (
	"github.com/spf13/cobra"

	"github.com/act-operator/cli/internal/config"
	oerrors "github.com/act-operator/cli/internal/errors"
	"github.com/act-operator/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool
	quietFlag   bool
	noColorFlag bool

	// Loaded configuration (populated during PersistentPreRunE)
	actopConfig *config.Config
)

// NewRootCmd creates the root command for the actop CLI. Running it with
// no subcommand scaffolds a new act, mirroring `actop new`.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "actop",
		Short:         "Act Operator CLI",
		Long:          `actop scaffolds LangGraph act projects and adds cast graphs to existing ones.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
		RunE: runNew,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: ACTOP_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress everything below warnings")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable styled output")

	addNewFlags(rootCmd)

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewCastCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging, color handling, and loads the config
// file once for the whole command tree.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag, quietFlag)
	if noColorFlag {
		output.DisableColor()
	}

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		return oerrors.NewConfigError("loading configuration", configFlag, err)
	}
	actopConfig = cfg

	output.Debug("configuration loaded",
		"language", cfg.Language,
		"templateDir", cfg.TemplateDir,
	)
	return nil
}

// loadedConfig returns the configuration loaded by PersistentPreRunE,
// defaulted when a command runs outside the cobra lifecycle (tests).
func loadedConfig() *config.Config {
	if actopConfig == nil {
		return config.DefaultConfig()
	}
	return actopConfig
}
