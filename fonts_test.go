package mdpdf

import (
	"os"
	"path/filepath"
	"testing"
)

// minimal file contents carrying a TrueType magic number
func fakeTTF() []byte {
	return append([]byte{0x00, 0x01, 0x00, 0x00}, make([]byte, 32)...)
}

func TestFontResolver_AllFilesMissing(t *testing.T) {
	t.Parallel()

	got := NewFontResolver(t.TempDir()).Resolve()
	expected := FontMapping{Body: "Helvetica", Bold: "Helvetica", Mono: "Courier"}
	if got != expected {
		t.Errorf("Resolve() = %+v, want %+v", got, expected)
	}
}

func TestFontResolver_LoadsValidFonts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"Barlow-Regular.ttf", "Barlow-Bold.ttf", "FiraCode-Regular.ttf"} {
		if err := os.WriteFile(filepath.Join(dir, name), fakeTTF(), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	got := NewFontResolver(dir).Resolve()
	expected := FontMapping{Body: "Barlow", Bold: "Barlow", Mono: "FiraCode"}
	if got != expected {
		t.Errorf("Resolve() = %+v, want %+v", got, expected)
	}
}

func TestFontResolver_RejectsNonFontFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "Barlow-Regular.ttf"), []byte("<html>not a font</html>"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	got := NewFontResolver(dir).Resolve()
	if got.Body != "Helvetica" {
		t.Errorf("Body = %q, want fallback Helvetica", got.Body)
	}
}

func TestFontResolver_PartialSet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "FiraCode-Regular.ttf"), fakeTTF(), 0o600); err != nil {
		t.Fatal(err)
	}

	got := NewFontResolver(dir).Resolve()
	expected := FontMapping{Body: "Helvetica", Bold: "Helvetica", Mono: "FiraCode"}
	if got != expected {
		t.Errorf("Resolve() = %+v, want %+v", got, expected)
	}
}

func TestFontResolver_ResolvesOnce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := NewFontResolver(dir)
	first := r.Resolve()

	// Files appearing after the first resolve are not picked up.
	if err := os.WriteFile(filepath.Join(dir, "Barlow-Regular.ttf"), fakeTTF(), 0o600); err != nil {
		t.Fatal(err)
	}
	second := r.Resolve()
	if first != second {
		t.Errorf("Resolve() changed between calls: %+v then %+v", first, second)
	}
}

func TestReadFontFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  []byte
		expected bool
	}{
		{name: "truetype magic", content: fakeTTF(), expected: true},
		{name: "apple true magic", content: append([]byte("true"), make([]byte, 16)...), expected: true},
		{name: "collection magic", content: append([]byte("ttcf"), make([]byte, 16)...), expected: true},
		{name: "opentype magic", content: append([]byte("OTTO"), make([]byte, 16)...), expected: true},
		{name: "wrong magic", content: []byte("GIF89a..."), expected: false},
		{name: "too short", content: []byte{0x00}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "font.ttf")
			if err := os.WriteFile(path, tt.content, 0o600); err != nil {
				t.Fatal(err)
			}
			data, ok := readFontFile(path)
			if ok != tt.expected {
				t.Errorf("readFontFile() ok = %v, want %v", ok, tt.expected)
			}
			if ok && len(data) != len(tt.content) {
				t.Errorf("readFontFile() returned %d bytes, want %d", len(data), len(tt.content))
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, ok := readFontFile(filepath.Join(t.TempDir(), "absent.ttf")); ok {
			t.Error("readFontFile() ok for a missing file")
		}
	})
}

func TestIsCoreFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		family   string
		expected bool
	}{
		{"Helvetica", true},
		{"Courier", true},
		{"Barlow", false},
		{"FiraCode", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isCoreFamily(tt.family); got != tt.expected {
			t.Errorf("isCoreFamily(%q) = %v, want %v", tt.family, got, tt.expected)
		}
	}
}

func TestFontMapping_UsesFallback(t *testing.T) {
	t.Parallel()

	full := FontMapping{Body: "Barlow", Bold: "Barlow", Mono: "FiraCode"}
	if full.UsesFallback() {
		t.Error("UsesFallback() = true for a fully resolved mapping")
	}

	partial := FontMapping{Body: "Barlow", Bold: "Helvetica", Mono: "FiraCode"}
	if !partial.UsesFallback() {
		t.Error("UsesFallback() = false with a fallback bold face")
	}

	none := FontMapping{Body: "Helvetica", Bold: "Helvetica", Mono: "Courier"}
	if !none.UsesFallback() {
		t.Error("UsesFallback() = false with all fallback faces")
	}
}
