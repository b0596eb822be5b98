package pmgorilla

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/perfmonio/perfmon-go/track"
	"github.com/perfmonio/perfmon-go/wrappers/common"
)

// Middleware returns a gorilla middleware recording one section on reg
// per request routed through the muxer. Sections are named by the
// route's registered name when it has one, then its path template, then
// the raw request path.
func Middleware(reg *track.Registry) mux.MiddlewareFunc {
	return func(handler http.Handler) http.Handler {
		wrappedHandler := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			// replace the writer with our wrapper to catch the status code
			wrappedWriter := common.NewResponseWriter(w)

			var routeName string
			if route := mux.CurrentRoute(r); route != nil {
				// user-supplied names are better than path templates
				routeName = route.GetName()
				if routeName == "" {
					if tmpl, err := route.GetPathTemplate(); err == nil {
						routeName = tmpl
					}
				}
			}
			handler.ServeHTTP(wrappedWriter, r)
			common.Record(reg, common.SectionName(r, routeName, wrappedWriter.Status), start)
		}
		return http.HandlerFunc(wrappedHandler)
	}
}
