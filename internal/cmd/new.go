package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/act-operator/cli/internal/config"
	"github.com/act-operator/cli/internal/output"
	"github.com/act-operator/cli/internal/scaffold"
	"github.com/act-operator/cli/internal/templates"
)

var (
	newActName     string
	newCastName    string
	newPath        string
	newLanguage    string
	newTemplateDir string
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new act project",
		Long: `Create a new act project from the act template.

The project directory is named after the act's kebab-case slug unless
--path names it explicitly. Missing names are prompted for on a terminal.

Examples:
  # Create ./research-bot with an initial collector cast
  actop new --act-name "Research Bot" --cast-name Collector

  # Create into an explicit directory with Korean docs
  actop new -a "Research Bot" -c Collector -p ./bots/research -l kr`,
		Args: cobra.NoArgs,
		RunE: runNew,
	}

	addNewFlags(cmd)
	return cmd
}

// addNewFlags registers the new command's flags. The root command shares
// them so a bare `actop` run behaves like `actop new`.
func addNewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&newActName, "act-name", "a", "", "Display name of the act project")
	cmd.Flags().StringVarP(&newCastName, "cast-name", "c", "", "Display name of the initial cast")
	cmd.Flags().StringVarP(&newPath, "path", "p", "", "Directory to create the project in (defaults to ./<act-slug>)")
	cmd.Flags().StringVarP(&newLanguage, "language", "l", "", "Content language for generated docs (en|kr)")
	cmd.Flags().StringVar(&newTemplateDir, "template-dir", "", "On-disk template source overriding the embedded one (env: ACTOP_TEMPLATE_DIR)")
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig()

	actName, err := resolveRequired(cmd.InOrStdin(), cmd.OutOrStdout(), "Name of the new act", "act-name", newActName)
	if err != nil {
		return err
	}
	castName, err := resolveRequired(cmd.InOrStdin(), cmd.OutOrStdout(), "Name of the first cast", "cast-name", newCastName)
	if err != nil {
		return err
	}

	orch, language, err := newOrchestrator(cfg, newTemplateDir, newLanguage)
	if err != nil {
		return err
	}

	var res *scaffold.Result
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var runErr error
		res, runErr = orch.CreateAct(cmd.Context(), scaffold.CreateOptions{
			ActName:  actName,
			CastName: castName,
			Path:     newPath,
			Language: language,
		})
		return runErr
	}, output.WithTitle("Scaffolding act project..."))
	if err != nil {
		return err
	}

	printResult(cmd, res, "Act project created successfully!", filepath.Base(res.Path))
	return nil
}

// newOrchestrator resolves the template source and content language across
// flag, environment, and config precedence, then wires the pipeline.
func newOrchestrator(cfg *config.Config, templateDirFlag, languageFlag string) (*scaffold.Orchestrator, string, error) {
	langRes := config.ResolveLanguage(languageFlag, cfg)
	tmplRes := config.ResolveTemplateDir(templateDirFlag, cfg)
	config.LogResolvedValues([]config.ResolvedValue{langRes, tmplRes})

	src, err := templates.Resolve(tmplRes.Value)
	if err != nil {
		return nil, "", err
	}
	return scaffold.NewOrchestrator(src, templates.NewTreeEngine(), cfg), langRes.Value, nil
}

// printResult renders the summary table, the success line, and a file
// tree of what was generated under treeRoot.
func printResult(cmd *cobra.Command, res *scaffold.Result, success, treeRoot string) {
	table := output.NewTable("", "").
		Row("Act", output.StyleNoun.Render(res.Act.Title)).
		Row("Cast", output.StyleNoun.Render(res.Cast.Title)).
		Row("Language", config.LanguageName(res.Language)).
		Row("Location", output.StyleNoun.Render(res.Path))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, table.String())
	fmt.Fprintln(out, output.FormatCheckmark(output.StyleSummary.Render(success)))

	for _, r := range res.Renames {
		fmt.Fprintf(out, "%s %s -> %s\n", output.StatusStyle(output.StatusRenamed).Render(output.StatusRenamed), r.From, r.To)
	}

	if len(res.Files) > 0 {
		files := make(map[string]string, len(res.Files))
		for _, f := range res.Files {
			files[f] = ""
		}
		fmt.Fprint(out, output.RenderFileTree(treeRoot, files))
	}
}
