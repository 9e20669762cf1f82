package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/act-operator/cli/internal/config"
	oerrors "github.com/act-operator/cli/internal/errors"
	"github.com/act-operator/cli/internal/naming"
	"github.com/act-operator/cli/internal/output"
	"github.com/act-operator/cli/internal/project"
	"github.com/act-operator/cli/internal/templates"
)

// Orchestrator runs the two scaffolding operations as fixed linear
// pipelines: validate, build context, render, normalize, register. The
// first failing stage aborts the rest and is reported with its stage name.
type Orchestrator struct {
	source    templates.Source
	renderer  *Renderer
	validator *project.Validator
	cfg       *config.Config
}

// NewOrchestrator wires an orchestrator for one template source. The
// validator checklist comes from cfg.Signature when set.
func NewOrchestrator(source templates.Source, engine templates.Engine, cfg *config.Config) *Orchestrator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Orchestrator{
		source:    source,
		renderer:  NewRenderer(engine),
		validator: project.NewValidator(cfg.Signature),
		cfg:       cfg,
	}
}

// CreateOptions parameterizes CreateAct.
type CreateOptions struct {
	// ActName is the raw project display name.
	ActName string

	// CastName is the raw display name of the initial cast.
	CastName string

	// Path names the project directory. Empty means ./<act slug>.
	Path string

	// Language is the content language code. Empty means the configured
	// default.
	Language string
}

// AddOptions parameterizes AddCast.
type AddOptions struct {
	// CastName is the raw display name of the cast to add.
	CastName string

	// Path is the root of an existing act project.
	Path string

	// Language is the content language code.
	Language string
}

// Result reports a completed operation for presentation.
type Result struct {
	// Act and Cast are the resolved name variants.
	Act  naming.Variants
	Cast naming.Variants

	// Language is the content language used.
	Language string

	// Path is the absolute path of the created or extended project.
	Path string

	// Files are the rendered file paths relative to the rendered root.
	Files []string

	// Renames are the directory renames the normalize pass performed.
	Renames []Rename
}

// CreateAct scaffolds a new act project with one initial cast.
func (o *Orchestrator) CreateAct(ctx context.Context, opts CreateOptions) (*Result, error) {
	act, err := o.resolveName("act name", opts.ActName)
	if err != nil {
		return nil, err
	}
	cast, err := o.resolveName("cast name", opts.CastName)
	if err != nil {
		return nil, err
	}

	language, err := o.resolveLanguage(opts.Language)
	if err != nil {
		return nil, err
	}

	target := opts.Path
	if target == "" {
		target = act.Slug
	}
	target, err = filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	res, err := o.validator.Validate(target, project.ForCreate)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	manifest, pctx, err := o.buildContext(act, cast, language)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	output.Debug("rendering act", "template", manifest.Name, "target", target)
	files, err := o.renderer.Render(o.source, manifest.Root, pctx.Flatten(), target)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	renames, err := o.normalizeAndRewrite(target, manifest.ComponentsDir)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	return &Result{
		Act:      act,
		Cast:     cast,
		Language: language,
		Path:     target,
		Files:    files,
		Renames:  renames,
	}, nil
}

// AddCast scaffolds one additional cast into an existing act project. The
// act identity is re-derived from the project directory's name.
func (o *Orchestrator) AddCast(ctx context.Context, opts AddOptions) (*Result, error) {
	target := opts.Path
	if target == "" {
		target = "."
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	res, err := o.validator.Validate(target, project.ForExtend)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	act, err := o.resolveName("act name", filepath.Base(target))
	if err != nil {
		return nil, err
	}
	cast, err := o.resolveName("cast name", opts.CastName)
	if err != nil {
		return nil, err
	}

	language, err := o.resolveLanguage(opts.Language)
	if err != nil {
		return nil, err
	}

	manifest, pctx, err := o.buildContext(act, cast, language)
	if err != nil {
		return nil, err
	}
	if manifest.CastRoot == "" {
		return nil, fmt.Errorf("context: template %s has no cast subtree", manifest.Name)
	}

	castsDir := filepath.Join(target, manifest.ComponentsDir)
	if _, err := os.Stat(filepath.Join(castsDir, cast.Snake)); err == nil {
		return nil, fmt.Errorf("validate: %w", oerrors.NewPreconditionError(
			fmt.Sprintf("cast %q already exists", cast.Snake),
			filepath.Join(castsDir, cast.Snake),
			"pick a different cast name"))
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	output.Debug("rendering cast", "template", manifest.Name, "cast", cast.Snake)
	files, err := o.renderer.Render(o.source, manifest.CastRoot, pctx.Flatten(), filepath.Join(castsDir, cast.Slug))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	// Only the subtree just rendered is normalized; pre-existing
	// directories under the components root belong to the user.
	renames, err := NormalizeDir(target, manifest.ComponentsDir, cast.Slug)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	if err := o.rewriteRenamed(target, renames); err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	if err := project.AddWorkspaceMember(filepath.Join(target, "pyproject.toml"), manifest.ComponentsDir+"/"+cast.Snake); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if err := project.AddCastToRegistry(filepath.Join(target, "langgraph.json"), cast.Snake); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	return &Result{
		Act:      act,
		Cast:     cast,
		Language: language,
		Path:     target,
		Files:    files,
		Renames:  renames,
	}, nil
}

// resolveName derives variants for a raw name and rejects reserved
// identifiers. The resolver itself never renames on collision; the
// orchestrator owns the destination context, so the rejection lives here.
func (o *Orchestrator) resolveName(label, raw string) (naming.Variants, error) {
	v, err := naming.Resolve(raw)
	if err != nil {
		return naming.Variants{}, fmt.Errorf("%s: %w", label, err)
	}
	if naming.IsReserved(v.Snake) {
		return naming.Variants{}, fmt.Errorf("%s %q: %w", label, v.Snake, naming.ErrReservedName)
	}
	return v, nil
}

// resolveLanguage validates the requested language, falling back to the
// configured default when empty.
func (o *Orchestrator) resolveLanguage(lang string) (string, error) {
	if lang == "" {
		lang = o.cfg.Language
	}
	if lang == "" {
		lang = config.DefaultLanguage
	}
	if err := config.ValidateLanguage(lang); err != nil {
		return "", oerrors.NewInvalidInputError(err.Error(), "")
	}
	return lang, nil
}

// buildContext loads and checks the manifest, then assembles the render
// context and verifies every required key is supplied.
func (o *Orchestrator) buildContext(act, cast naming.Variants, language string) (*templates.Manifest, ProjectContext, error) {
	manifest, err := templates.LoadManifest(o.source)
	if err != nil {
		return nil, ProjectContext{}, fmt.Errorf("context: %w", err)
	}
	if !manifest.SupportsLanguage(language) {
		return nil, ProjectContext{}, fmt.Errorf("context: %w", oerrors.NewInvalidInputError(
			fmt.Sprintf("template %s does not ship %s content", manifest.Name, language), ""))
	}

	pctx := BuildContext(act, cast, language, o.cfg.Defaults)
	if err := pctx.CheckRequired(manifest); err != nil {
		return nil, ProjectContext{}, fmt.Errorf("context: %w", err)
	}
	return manifest, pctx, nil
}

// normalizeAndRewrite runs the rename pass over the whole components
// directory and fixes registry references for every rename it performed.
func (o *Orchestrator) normalizeAndRewrite(root, componentsDir string) ([]Rename, error) {
	renames, err := Normalize(root, componentsDir)
	if err != nil {
		return renames, err
	}
	if err := o.rewriteRenamed(root, renames); err != nil {
		return renames, err
	}
	return renames, nil
}

// rewriteRenamed updates langgraph.json and pyproject.toml references for
// each rename performed.
func (o *Orchestrator) rewriteRenamed(root string, renames []Rename) error {
	for _, r := range renames {
		oldName := filepath.Base(r.From)
		newName := filepath.Base(r.To)
		output.Debug("normalized cast directory", "from", oldName, "to", newName)

		if err := project.RewriteCastPath(filepath.Join(root, "langgraph.json"), oldName, newName); err != nil {
			return err
		}
		if err := project.RewriteWorkspaceMember(filepath.Join(root, "pyproject.toml"), oldName, newName); err != nil {
			return err
		}
	}
	return nil
}
