package mdpdf

import (
	"fmt"
	"sort"
	"strings"
)

// buildStylesheet renders the registry as CSS. Output is deterministic:
// style rules in name order, then the fixed layout rules, then the
// token color classes for highlighted code.
func buildStylesheet(reg *StyleRegistry) string {
	names := reg.Names()
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		writeStyleRule(&sb, name, reg.Lookup(name))
	}
	sb.WriteString(layoutCSS)
	sb.WriteString(highlightCSS())
	return sb.String()
}

func writeStyleRule(sb *strings.Builder, name string, st Style) {
	fmt.Fprintf(sb, ".%s {\n", name)
	if st.Mono {
		sb.WriteString("  font-family: \"Fira Code\", monospace;\n")
	} else {
		sb.WriteString("  font-family: \"Barlow\", sans-serif;\n")
	}
	fmt.Fprintf(sb, "  font-size: %gpt;\n", st.Size)
	fmt.Fprintf(sb, "  line-height: %gpt;\n", st.Leading)
	if st.Bold {
		sb.WriteString("  font-weight: bold;\n")
	}
	if st.Italic {
		sb.WriteString("  font-style: italic;\n")
	}
	if st.Underline {
		sb.WriteString("  text-decoration: underline;\n")
	}
	fmt.Fprintf(sb, "  color: %s;\n", st.Color.Hex())
	if st.Filled {
		fmt.Fprintf(sb, "  background-color: %s;\n", st.Fill.Hex())
	}
	if st.SpaceBefore > 0 {
		fmt.Fprintf(sb, "  margin-top: %gpt;\n", st.SpaceBefore)
	}
	if st.SpaceAfter > 0 {
		fmt.Fprintf(sb, "  margin-bottom: %gpt;\n", st.SpaceAfter)
	}
	if st.LeftIndent > 0 {
		fmt.Fprintf(sb, "  padding-left: %gpt;\n", st.LeftIndent)
	}
	sb.WriteString("}\n")
}

// layoutCSS carries the rules the registry does not describe: table
// borders, code box padding, the horizontal rule.
const layoutCSS = `.mdpdf-table {
  border-collapse: collapse;
  width: 100%;
  border: 1pt solid #cccccc;
}
.mdpdf-table th, .mdpdf-table td {
  border: 0.5pt solid #e0e0e0;
  padding: 4pt 12pt;
  text-align: left;
  vertical-align: top;
}
.mdpdf-table thead tr {
  border-bottom: 1pt solid #cccccc;
}
.mdpdf-code {
  padding: 8pt 10pt;
  border-radius: 2pt;
  overflow-x: auto;
}
.mdpdf-code pre {
  margin: 0;
  font-family: "Fira Code", monospace;
}
.mdpdf-blockquote {
  margin-left: 0;
  border-left: 2pt solid #cccccc;
}
hr {
  border: none;
  border-top: 1pt solid #cccccc;
  margin: 12pt 0;
}
`
