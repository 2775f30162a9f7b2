package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests config flag", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound(nil)

		if !strings.Contains(hint, "hint:") {
			t.Error("expected hint prefix")
		}
		if !strings.Contains(hint, "--config") {
			t.Error("expected --config suggestion")
		}
	})

	t.Run("suggests creating user config when path available", func(t *testing.T) {
		t.Parallel()

		paths := []string{
			"mdpdf.yaml",
			"/home/user/.config/go-mdpdf/mdpdf.yaml",
		}
		hint := ForConfigNotFound(paths)

		if !strings.Contains(hint, "/home/user/.config/go-mdpdf/mdpdf.yaml") {
			t.Errorf("expected user config path suggestion, got: %q", hint)
		}
	})

	t.Run("skips suggestion when no user config path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"mdpdf.yaml", "mdpdf.yml"})

		if strings.Contains(hint, "or create") {
			t.Errorf("unexpected create suggestion, got: %q", hint)
		}
	})
}

func TestForAddrInUse(t *testing.T) {
	t.Parallel()

	hint := ForAddrInUse(":8080")

	if !strings.Contains(hint, ":8080") {
		t.Errorf("expected address in hint, got: %q", hint)
	}
	if !strings.Contains(hint, "--addr") {
		t.Errorf("expected --addr suggestion, got: %q", hint)
	}
}

func TestForFontsMissing(t *testing.T) {
	t.Parallel()

	hint := ForFontsMissing("/srv/fonts")

	if !strings.Contains(hint, "/srv/fonts") {
		t.Errorf("expected directory in hint, got: %q", hint)
	}
	if !strings.Contains(hint, "Barlow-Regular.ttf") {
		t.Errorf("expected font file names, got: %q", hint)
	}
	if !strings.Contains(hint, "--fonts-dir") {
		t.Errorf("expected --fonts-dir suggestion, got: %q", hint)
	}
}

func TestForTimeout(t *testing.T) {
	t.Parallel()

	hint := ForTimeout()

	if !strings.Contains(hint, "timeoutSeconds") {
		t.Errorf("expected config field in hint, got: %q", hint)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	t.Run("empty hint yields empty string", func(t *testing.T) {
		t.Parallel()

		if got := format(""); got != "" {
			t.Errorf("format(%q) = %q, want empty", "", got)
		}
	})

	t.Run("hint gets newline and prefix", func(t *testing.T) {
		t.Parallel()

		got := format("do the thing")
		want := "\n  hint: do the thing"
		if got != want {
			t.Errorf("format() = %q, want %q", got, want)
		}
	})
}
