package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/act-operator/cli/internal/output"
	"github.com/act-operator/cli/internal/scaffold"
)

var (
	castName        string
	castPath        string
	castLanguage    string
	castTemplateDir string
)

// NewCastCmd creates the cast command.
func NewCastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cast",
		Short: "Add a cast to an existing act project",
		Long: `Add a new cast graph to an existing act project.

The target must already be a valid act project: its signature files are
checked before anything is written. The new cast joins the uv workspace
and the langgraph.json registry.

Examples:
  # Add a cast to the project in the current directory
  actop cast --cast-name Analyzer

  # Add a cast to a specific project
  actop cast -c "Data Feed" -p ./research-bot`,
		Args: cobra.NoArgs,
		RunE: runCast,
	}

	cmd.Flags().StringVarP(&castName, "cast-name", "c", "", "Display name of the cast to add")
	cmd.Flags().StringVarP(&castPath, "path", "p", ".", "Path to an existing act project")
	cmd.Flags().StringVarP(&castLanguage, "language", "l", "", "Content language for generated docs (en|kr)")
	cmd.Flags().StringVar(&castTemplateDir, "template-dir", "", "On-disk template source overriding the embedded one (env: ACTOP_TEMPLATE_DIR)")

	return cmd
}

func runCast(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig()

	name, err := resolveRequired(cmd.InOrStdin(), cmd.OutOrStdout(), "Name of the new cast", "cast-name", castName)
	if err != nil {
		return err
	}

	orch, language, err := newOrchestrator(cfg, castTemplateDir, castLanguage)
	if err != nil {
		return err
	}

	var res *scaffold.Result
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var runErr error
		res, runErr = orch.AddCast(cmd.Context(), scaffold.AddOptions{
			CastName: name,
			Path:     castPath,
			Language: language,
		})
		return runErr
	}, output.WithTitle("Scaffolding cast..."))
	if err != nil {
		return err
	}

	printResult(cmd, res, "Cast added successfully!", filepath.Join("casts", res.Cast.Snake))
	return nil
}
