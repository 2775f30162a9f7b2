package mdpdf

import "fmt"

// styleNamePrefix guards registered style names against collisions with
// anything else sharing a document's namespace. Registering the same
// prefixed name twice overwrites silently instead of failing.
const styleNamePrefix = "mdpdf-"

// styleName returns the registry key for a bare style name.
func styleName(name string) string {
	return styleNamePrefix + name
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B int
}

// Hex formats the color as #rrggbb for the generated stylesheet.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// hexColor parses a #rrggbb string. Malformed input yields black.
func hexColor(hex string) RGB {
	var c RGB
	if len(hex) != 7 || hex[0] != '#' {
		return c
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}
	}
	return c
}

// Style is the layout recipe for one block kind. Sizes and distances
// are points.
type Style struct {
	Name        string
	Mono        bool // use the mono role instead of body/bold
	Bold        bool
	Italic      bool
	Underline   bool
	Size        float64
	Leading     float64
	Color       RGB
	Fill        RGB // background fill, used when Filled
	Filled      bool
	SpaceBefore float64
	SpaceAfter  float64
	LeftIndent  float64
}

// StyleRegistry holds the named styles for every block kind the parser
// produces. It is immutable after construction and safe to share
// across concurrent conversions.
type StyleRegistry struct {
	styles map[string]Style
	body   Style
}

// NewStyleRegistry builds the fixed style set. Building twice in one
// process yields equivalent registries; within one build, a duplicate
// name overwrites the earlier entry rather than failing.
func NewStyleRegistry() *StyleRegistry {
	r := &StyleRegistry{styles: make(map[string]Style)}
	for _, s := range defaultStyles() {
		r.register(s)
	}
	r.body = r.styles[styleName("body")]
	return r
}

func (r *StyleRegistry) register(s Style) {
	r.styles[s.Name] = s
}

// Lookup returns the named style. Unknown names fall back to the body
// style so rendering never fails on a missing lookup.
func (r *StyleRegistry) Lookup(name string) Style {
	if s, ok := r.styles[name]; ok {
		return s
	}
	return r.body
}

// Heading returns the style for a heading level, clamping out-of-range
// levels into 1..6.
func (r *StyleRegistry) Heading(level int) Style {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return r.Lookup(styleName(fmt.Sprintf("h%d", level)))
}

// Names returns the registered style names. Order is unspecified.
func (r *StyleRegistry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	return names
}

// defaultStyles is the fixed typographic rule set shared by the PDF
// renderer and the generated stylesheet.
func defaultStyles() []Style {
	return []Style{
		{
			Name:       styleName("body"),
			Size:       12,
			Leading:    20,
			Color:      hexColor("#333333"),
			SpaceAfter: 20,
		},
		{
			Name:        styleName("h1"),
			Bold:        true,
			Underline:   true,
			Size:        24,
			Leading:     28,
			Color:       hexColor("#1a1a1a"),
			SpaceBefore: 20,
			SpaceAfter:  26,
		},
		{
			Name:        styleName("h2"),
			Bold:        true,
			Underline:   true,
			Size:        18,
			Leading:     24,
			Color:       hexColor("#1a4a5e"),
			SpaceBefore: 20,
			SpaceAfter:  24,
		},
		{
			Name:        styleName("h3"),
			Bold:        true,
			Size:        15,
			Leading:     20,
			Color:       hexColor("#1a4a5e"),
			SpaceBefore: 16,
			SpaceAfter:  20,
		},
		{
			Name:        styleName("h4"),
			Bold:        true,
			Size:        13,
			Leading:     18,
			Color:       hexColor("#2a5a6e"),
			SpaceBefore: 14,
			SpaceAfter:  16,
		},
		{
			Name:        styleName("h5"),
			Bold:        true,
			Size:        12,
			Leading:     16,
			Color:       hexColor("#3a6a7e"),
			SpaceBefore: 12,
			SpaceAfter:  13,
		},
		{
			Name:        styleName("h6"),
			Bold:        true,
			Size:        12,
			Leading:     16,
			Color:       hexColor("#4a7a8e"),
			SpaceBefore: 10,
			SpaceAfter:  13,
		},
		{
			Name:        styleName("list"),
			Size:        12,
			Leading:     18,
			Color:       hexColor("#333333"),
			SpaceBefore: 5,
			SpaceAfter:  5,
		},
		{
			Name:    styleName("inline-code"),
			Mono:    true,
			Size:    10,
			Leading: 20,
			Color:   hexColor("#333333"),
		},
		{
			Name:        styleName("code"),
			Mono:        true,
			Size:        10,
			Leading:     14,
			Color:       highlightTextColor(),
			Fill:        highlightBackground(),
			Filled:      true,
			SpaceBefore: 12,
			SpaceAfter:  12,
		},
		{
			Name:    styleName("table-header"),
			Bold:    true,
			Size:    11,
			Leading: 15,
			Color:   hexColor("#333333"),
			Fill:    RGB{R: 240, G: 240, B: 240},
			Filled:  true,
		},
		{
			Name:    styleName("table-cell"),
			Size:    11,
			Leading: 15,
			Color:   hexColor("#333333"),
		},
		{
			Name:        styleName("blockquote"),
			Italic:      true,
			Size:        12,
			Leading:     18,
			Color:       hexColor("#555555"),
			SpaceBefore: 10,
			SpaceAfter:  10,
			LeftIndent:  24,
		},
		{
			Name:    styleName("footer"),
			Size:    9,
			Leading: 11,
			Color:   hexColor("#666666"),
		},
	}
}
