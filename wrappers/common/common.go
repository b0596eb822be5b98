// Package common holds the bits shared by the middleware wrappers:
// response status capture and section naming.
package common

import (
	"fmt"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"

	"github.com/perfmonio/perfmon-go/track"
)

// ResponseWriter wraps the handler's writer so the middleware can read
// the status code after the handler returns. The embedded writer comes
// from httpsnoop so optional interfaces (Flusher, Hijacker, ...) keep
// working.
type ResponseWriter struct {
	http.ResponseWriter
	Status int
}

func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: httpsnoop.Wrap(w, httpsnoop.Hooks{}),
	}
}

func (h *ResponseWriter) WriteHeader(statusCode int) {
	h.Status = statusCode
	h.ResponseWriter.WriteHeader(statusCode)
}

// SectionName builds the display name for a request's section, e.g.
// "GET /hello (200)". route replaces the raw request path when the
// router knows a better template; a zero status reads as 200, matching
// what the client saw.
func SectionName(r *http.Request, route string, status int) string {
	if route == "" {
		route = r.URL.Path
	}
	if status == 0 {
		status = http.StatusOK
	}
	return fmt.Sprintf("%s %s (%d)", r.Method, route, status)
}

// Record files a finished section on reg: one section started at start
// and ended now, in milliseconds. Used by the wrappers after the handler
// has run, once the name is fully known.
func Record(reg *track.Registry, name string, start time.Time) {
	id := reg.BeginAt(name, track.Milliseconds, start)
	// a freshly begun section can always be ended
	_ = reg.End(id)
}
