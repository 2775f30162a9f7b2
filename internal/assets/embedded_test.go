package assets_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/alnah/go-mdpdf/internal/assets"
)

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	t.Run("index template exists", func(t *testing.T) {
		t.Parallel()

		content, err := assets.LoadTemplate("index")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(content, "<textarea") {
			t.Error("index template should contain the markdown textarea")
		}
		if !strings.Contains(content, `action="/convert"`) {
			t.Error("index template should post to /convert")
		}
		if !strings.Contains(content, "{{.MaxInputBytes}}") {
			t.Error("index template should carry the input limit placeholder")
		}
	})

	t.Run("unknown template returns ErrTemplateNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := assets.LoadTemplate("nope")
		if !errors.Is(err, assets.ErrTemplateNotFound) {
			t.Errorf("error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("unsafe names return ErrInvalidAssetName", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{
			"",
			"index.html",
			"../templates/index",
			`..\templates\index`,
			"sub/index",
		} {
			if _, err := assets.LoadTemplate(name); !errors.Is(err, assets.ErrInvalidAssetName) {
				t.Errorf("LoadTemplate(%q) error = %v, want ErrInvalidAssetName", name, err)
			}
		}
	})
}

func TestStaticFS(t *testing.T) {
	t.Parallel()

	staticFS := assets.StaticFS()

	for _, name := range []string{"app.css", "app.js"} {
		content, err := fs.ReadFile(staticFS, name)
		if err != nil {
			t.Errorf("reading %s: %v", name, err)
			continue
		}
		if len(content) == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	if _, err := fs.ReadFile(staticFS, "static/app.css"); err == nil {
		t.Error("static prefix should be stripped from the filesystem root")
	}
}
