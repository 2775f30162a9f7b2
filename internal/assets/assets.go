package assets

import (
	"html/template"
	"sync"
)

// IndexTemplateName identifies the form page template.
const IndexTemplateName = "index"

var (
	indexOnce sync.Once
	indexTmpl *template.Template
	indexErr  error
)

// IndexTemplate returns the parsed form page template. Parsing happens
// once; subsequent calls return the cached result.
func IndexTemplate() (*template.Template, error) {
	indexOnce.Do(func() {
		content, err := LoadTemplate(IndexTemplateName)
		if err != nil {
			indexErr = err
			return
		}
		indexTmpl, indexErr = template.New(IndexTemplateName).Parse(content)
	})
	return indexTmpl, indexErr
}
