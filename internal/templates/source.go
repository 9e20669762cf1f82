package templates

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Source is one template source: a filesystem holding a template.yaml
// manifest and the tokenized template tree it describes.
type Source struct {
	// FS is the template filesystem, rooted at the manifest's directory.
	FS fs.FS

	// Name identifies the source in errors and logs.
	Name string
}

// FromDir opens an on-disk template source. The directory must contain a
// template.yaml manifest.
func FromDir(dir string) (Source, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Source{}, newRenderError(ErrKindTemplateNotFound, dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return Source{}, newRenderError(ErrKindTemplateNotFound, abs, err)
	}

	if _, err := os.Stat(filepath.Join(abs, ManifestFileName)); err != nil {
		return Source{}, newRenderError(ErrKindTemplateNotFound, abs+" has no "+ManifestFileName, err)
	}

	return Source{FS: os.DirFS(abs), Name: abs}, nil
}

// Resolve picks the template source: an on-disk directory when templateDir
// is set, the embedded act template otherwise.
func Resolve(templateDir string) (Source, error) {
	if templateDir == "" {
		return Embedded()
	}
	return FromDir(templateDir)
}
