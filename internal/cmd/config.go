package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/act-operator/cli/internal/config"
	oerrors "github.com/act-operator/cli/internal/errors"
	"github.com/act-operator/cli/internal/output"
)

var configInitForce bool

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage actop configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Long: `Write a config file populated with the default values.

The file lands at ~/.actop/config.yaml unless --config or ACTOP_CONFIG
points elsewhere. An existing file is never overwritten without --force.`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configFlag
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return oerrors.NewConfigError("resolving config file path", "", err)
		}
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return oerrors.NewConfigError("checking config file", path, err)
	}
	if exists && !configInitForce {
		return oerrors.NewConfigError("config file already exists", path, nil)
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return oerrors.NewConfigError("expanding config path", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return oerrors.NewConfigError("creating config directory", filepath.Dir(expanded), err)
	}

	raw, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return oerrors.NewConfigError("encoding default config", "", err)
	}
	if err := os.WriteFile(expanded, raw, 0o644); err != nil {
		return oerrors.NewConfigError("writing config file", expanded, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Wrote "+expanded))
	return nil
}
