package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
)

// TemplateSuffix marks files whose contents are executed against the
// context. The suffix is stripped from the rendered name.
const TemplateSuffix = ".tmpl"

// tokenPattern matches placeholder tokens in file and directory names.
var tokenPattern = regexp.MustCompile(`__([a-z][a-z0-9_]*)__`)

// Engine renders a tokenized template subtree into a destination directory.
type Engine interface {
	// Render materializes the subtree rooted at subtree inside src as a
	// child of dstParent. The subtree's root directory name has its tokens
	// substituted to form the child name. It returns the absolute path of
	// the rendered root and the rendered file paths relative to it.
	Render(src Source, subtree string, vars map[string]string, dstParent string) (string, []string, error)
}

// TreeEngine is the built-in Engine. It substitutes name tokens in every
// path segment, executes .tmpl contents as text templates with strict
// missing-key handling, and copies everything else byte for byte.
type TreeEngine struct{}

// NewTreeEngine returns a ready-to-use TreeEngine.
func NewTreeEngine() *TreeEngine {
	return &TreeEngine{}
}

// Render implements Engine.
func (e *TreeEngine) Render(src Source, subtree string, vars map[string]string, dstParent string) (string, []string, error) {
	info, err := fs.Stat(src.FS, subtree)
	if err != nil || !info.IsDir() {
		return "", nil, newRenderError(ErrKindTemplateNotFound,
			fmt.Sprintf("subtree %q not in template %s", subtree, src.Name), err)
	}

	rootName := substituteSegment(path.Base(subtree), vars)
	rootPath := filepath.Join(dstParent, rootName)

	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return "", nil, newRenderError(ErrKindTargetUnwritable, rootPath, err)
	}

	var files []string
	walkErr := fs.WalkDir(src.FS, subtree, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return newRenderError(ErrKindEngine, "walking "+p, err)
		}
		if p == subtree {
			return nil
		}

		rel := strings.TrimPrefix(p, subtree+"/")
		destRel := substitutePath(rel, vars)

		if d.IsDir() {
			dest := filepath.Join(rootPath, filepath.FromSlash(destRel))
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return newRenderError(ErrKindTargetUnwritable, dest, err)
			}
			return nil
		}

		if strings.HasSuffix(destRel, TemplateSuffix) {
			destRel = strings.TrimSuffix(destRel, TemplateSuffix)
			dest := filepath.Join(rootPath, filepath.FromSlash(destRel))
			if err := executeTemplate(src.FS, p, dest, vars); err != nil {
				return err
			}
		} else {
			dest := filepath.Join(rootPath, filepath.FromSlash(destRel))
			if err := copyVerbatim(src.FS, p, dest); err != nil {
				return err
			}
		}

		files = append(files, destRel)
		return nil
	})
	if walkErr != nil {
		return "", nil, walkErr
	}

	return rootPath, files, nil
}

// substitutePath substitutes tokens in every segment of a slash-separated
// relative path.
func substitutePath(rel string, vars map[string]string) string {
	segments := strings.Split(rel, "/")
	for i, seg := range segments {
		segments[i] = substituteSegment(seg, vars)
	}
	return strings.Join(segments, "/")
}

// substituteSegment replaces tokens whose key exists in the context.
// Dunder-style names that match no context key, such as __init__.py, pass
// through untouched. Keys a template relies on are declared in its manifest
// and checked before rendering starts.
func substituteSegment(seg string, vars map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(seg, func(token string) string {
		key := token[2 : len(token)-2]
		if val, ok := vars[key]; ok {
			return val
		}
		return token
	})
}

// executeTemplate runs a .tmpl file's contents against the context and
// writes the result to dest.
func executeTemplate(src fs.FS, p, dest string, vars map[string]string) error {
	raw, err := fs.ReadFile(src, p)
	if err != nil {
		return newRenderError(ErrKindEngine, "reading "+p, err)
	}

	tmpl, err := template.New(path.Base(p)).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return newRenderError(ErrKindEngine, "parsing "+p, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		if isMissingKeyErr(err) {
			return newRenderError(ErrKindMissingKey, "in contents of "+p, err)
		}
		return newRenderError(ErrKindEngine, "executing "+p, err)
	}

	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return newRenderError(ErrKindTargetUnwritable, dest, err)
	}
	return nil
}

// copyVerbatim copies a non-template file byte for byte.
func copyVerbatim(src fs.FS, p, dest string) error {
	raw, err := fs.ReadFile(src, p)
	if err != nil {
		return newRenderError(ErrKindEngine, "reading "+p, err)
	}
	if err := os.WriteFile(dest, raw, 0o644); err != nil {
		return newRenderError(ErrKindTargetUnwritable, dest, err)
	}
	return nil
}

// isMissingKeyErr reports whether a template execution error came from the
// strict missing-key option.
func isMissingKeyErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "map has no entry for key")
}
