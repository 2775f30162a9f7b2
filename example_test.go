package mdpdf_test

import (
	"context"
	"fmt"
	"strings"

	mdpdf "github.com/alnah/go-mdpdf"
)

// Example demonstrates basic markdown to PDF conversion.
func Example() {
	svc := mdpdf.New()

	pdf, err := svc.Convert(context.Background(), mdpdf.Input{
		Markdown: "# Hello World\n\nThis is a test.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.HasPrefix(string(pdf), "%PDF-"))
	// Output: true
}

// Example_preview renders the HTML fragment shown in live previews.
func Example_preview() {
	svc := mdpdf.New()

	fragment, err := svc.Preview(context.Background(), mdpdf.Input{
		Markdown: "# Hello",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Contains(fragment, "<h1"))
	// Output: true
}

// ExampleService_ConvertHTML exports a standalone HTML document with
// the stylesheet inlined.
func ExampleService_ConvertHTML() {
	svc := mdpdf.New(mdpdf.WithDocumentTitle("Release Notes"))

	doc, err := svc.ConvertHTML(context.Background(), mdpdf.Input{
		Markdown: "# v1.0\n\nFirst stable release.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.HasPrefix(doc, "<!DOCTYPE html>"))
	fmt.Println(strings.Contains(doc, "<title>Release Notes</title>"))
	// Output:
	// true
	// true
}

// ExampleService_StylesheetCSS serves the CSS that pairs with Preview
// fragments.
func ExampleService_StylesheetCSS() {
	svc := mdpdf.New()

	css := svc.StylesheetCSS()
	fmt.Println(strings.Contains(css, ".mdpdf-body"))
	// Output: true
}
