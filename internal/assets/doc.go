// Package assets provides the embedded HTML templates and static files
// for the web interface.
//
// Everything ships inside the binary via go:embed; there is no on-disk
// override. Asset names are validated before lookup so a request can
// never escape the embedded tree.
//
//	templates/
//	└── index.html       # form page with live preview
//	static/
//	├── app.css          # page chrome (panes, toolbar)
//	└── app.js           # live preview and byte counter
package assets
