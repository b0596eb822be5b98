package pmnethttp

import (
	"net/http"
	"time"

	"github.com/perfmonio/perfmon-go/track"
	"github.com/perfmonio/perfmon-go/wrappers/common"
)

// WrapHandler records one section on reg per invocation of this handler,
// named by method, path, and response status.
func WrapHandler(reg *track.Registry, handler http.Handler) http.Handler {
	wrappedHandler := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		// replace the writer with our wrapper to catch the status code
		wrappedWriter := common.NewResponseWriter(w)
		handler.ServeHTTP(wrappedWriter, r)
		common.Record(reg, common.SectionName(r, "", wrappedWriter.Status), start)
	}
	return http.HandlerFunc(wrappedHandler)
}

// WrapHandlerFunc records one section on reg per invocation of this
// handler function.
func WrapHandlerFunc(reg *track.Registry, hf func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrappedWriter := common.NewResponseWriter(w)
		hf(wrappedWriter, r)
		common.Record(reg, common.SectionName(r, "", wrappedWriter.Status), start)
	}
}

// WrapMuxHandler wraps an http.ServeMux and returns an http.Handler. It
// is intended to be used to wrap a ServeMux when it is passed to
// http.ListenAndServe after all the handlers have been added to it.
// Sections are named by the mux pattern that matched rather than the raw
// request path.
func WrapMuxHandler(reg *track.Registry, mux *http.ServeMux) http.Handler {
	wrappedHandler := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrappedWriter := common.NewResponseWriter(w)
		handler, pattern := mux.Handler(r)
		handler.ServeHTTP(wrappedWriter, r)
		common.Record(reg, common.SectionName(r, pattern, wrappedWriter.Status), start)
	}
	return http.HandlerFunc(wrappedHandler)
}
