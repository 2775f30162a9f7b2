// Package web serves the converter over HTTP: a form page with live
// preview, PDF and HTML downloads, and the stylesheet shared by both
// the preview pane and the standalone export.
//
// The handlers are a thin shell around the conversion service. They
// enforce transport concerns the service cannot see: request size caps,
// per-IP rate limits, a render concurrency gate, and a TTL cache keyed
// by input hash. Nothing persists across restarts.
package web
