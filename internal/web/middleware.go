package web

import (
	"net/http"

	"github.com/google/uuid"
)

// requestHeaderID is the header carrying the request correlation ID.
const requestHeaderID = "X-Request-ID"

// requestID honors an inbound correlation ID or mints one, and echoes
// it on the response so clients can quote it in bug reports.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestHeaderID)
		if id == "" {
			id = uuid.New().String()
			r.Header.Set(requestHeaderID, id)
		}
		w.Header().Set(requestHeaderID, id)
		next.ServeHTTP(w, r)
	})
}

// securityHeaders applies a conservative header set. The CSP permits
// only same-origin resources, which covers the embedded page assets
// and the generated stylesheet.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'self'")
		next.ServeHTTP(w, r)
	})
}
