package mdpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/jung-kurt/gofpdf"
)

// Font files looked up by the resolver, relative to the font directory.
const (
	fontFileBody = "Barlow-Regular.ttf"
	fontFileBold = "Barlow-Bold.ttf"
	fontFileMono = "FiraCode-Regular.ttf"
)

// Families registered for the custom fonts.
const (
	familyBody = "Barlow"
	familyMono = "FiraCode"
)

// Built-in core families used when a font file cannot be loaded.
const (
	fallbackBody = "Helvetica"
	fallbackMono = "Courier"
)

// FontMapping maps logical roles to concrete family names usable with
// the PDF engine. It is always complete: a role whose file is missing
// carries its fallback family instead.
type FontMapping struct {
	Body string // regular body text, also used with the I style flag
	Bold string // bold text, also used with the BI style flag
	Mono string // inline code and code blocks
}

// UsesFallback reports whether any role resolved to a built-in family
// instead of a bundled font file.
func (m FontMapping) UsesFallback() bool {
	return isCoreFamily(m.Body) || isCoreFamily(m.Bold) || isCoreFamily(m.Mono)
}

// FontResolver locates the optional font files for one directory and
// produces a complete FontMapping. The disk lookup happens at most
// once per resolver.
type FontResolver struct {
	dir string

	once    sync.Once
	mapping FontMapping
	body    []byte
	bold    []byte
	mono    []byte
}

// NewFontResolver returns a resolver searching dir. An empty dir means
// the working directory.
func NewFontResolver(dir string) *FontResolver {
	return &FontResolver{dir: dir}
}

// Resolve loads the font files and returns the role mapping. Absent,
// unreadable or non-TrueType files resolve to the fallback family for
// their role without error.
func (r *FontResolver) Resolve() FontMapping {
	r.once.Do(r.load)
	return r.mapping
}

func (r *FontResolver) load() {
	r.mapping = FontMapping{Body: fallbackBody, Bold: fallbackBody, Mono: fallbackMono}
	if b, ok := readFontFile(filepath.Join(r.dir, fontFileBody)); ok {
		r.body = b
		r.mapping.Body = familyBody
	}
	if b, ok := readFontFile(filepath.Join(r.dir, fontFileBold)); ok {
		r.bold = b
		r.mapping.Bold = familyBody
	}
	if b, ok := readFontFile(filepath.Join(r.dir, fontFileMono)); ok {
		r.mono = b
		r.mapping.Mono = familyMono
	}
}

// Apply registers the loaded font bytes into a document's font table.
// The regular face doubles as the italic variant and the bold face as
// bold italic, since no slanted files ship with the asset set.
// Registration is idempotent: the engine keeps one entry per
// family/style key, so applying twice neither errors nor duplicates.
// Fallback families are built into the engine and need no registration.
func (r *FontResolver) Apply(pdf *gofpdf.Fpdf) {
	r.once.Do(r.load)
	if r.body != nil {
		pdf.AddUTF8FontFromBytes(familyBody, "", r.body)
		pdf.AddUTF8FontFromBytes(familyBody, "I", r.body)
	}
	if r.bold != nil {
		pdf.AddUTF8FontFromBytes(familyBody, "B", r.bold)
		pdf.AddUTF8FontFromBytes(familyBody, "BI", r.bold)
	}
	if r.mono != nil {
		pdf.AddUTF8FontFromBytes(familyMono, "", r.mono)
	}
}

// TrueType and OpenType magic numbers.
var fontMagics = [][]byte{
	{0x00, 0x01, 0x00, 0x00},
	[]byte("true"),
	[]byte("ttcf"),
	[]byte("OTTO"),
}

// readFontFile loads a font file, sniffing the magic bytes so a stray
// non-font file cannot poison the PDF engine.
func readFontFile(path string) ([]byte, bool) {
	data, err := os.ReadFile(path) // #nosec G304 -- font dir is operator-configured
	if err != nil {
		return nil, false
	}
	if len(data) < 4 {
		return nil, false
	}
	for _, magic := range fontMagics {
		if bytes.Equal(data[:4], magic) {
			return data, true
		}
	}
	return nil, false
}

// isCoreFamily reports whether a family is one of the engine's built-in
// fonts, which take Windows-1252 text rather than UTF-8.
func isCoreFamily(family string) bool {
	return family == fallbackBody || family == fallbackMono
}
