package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed templates/*
var templates embed.FS

//go:embed static/*
var static embed.FS

// LoadTemplate loads an HTML template from the embedded tree by bare
// name, no extension and no path. Separators and dots are rejected up
// front so a lookup can never leave templates/.
func LoadTemplate(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\.`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// StaticFS returns the embedded static files rooted at their own names,
// so "app.css" resolves without the static/ prefix. Suitable for
// http.FileServer behind a /static/ route.
func StaticFS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// The static directory is embedded at compile time; a missing
		// subtree means the binary itself is broken.
		panic("assets: embedded static tree missing: " + err.Error())
	}
	return sub
}
