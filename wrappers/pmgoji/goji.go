package pmgoji

import (
	"net/http"
	"time"

	"goji.io/v3/middleware"
	"goji.io/v3/pat"

	"github.com/perfmonio/perfmon-go/track"
	"github.com/perfmonio/perfmon-go/wrappers/common"
)

// Middleware returns a middleware for goji's router.Use() function. Each
// request records one section on reg, named by the matched pat pattern
// and the response status.
func Middleware(reg *track.Registry) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		wrappedHandler := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			// replace the writer with our wrapper to catch the status code
			wrappedWriter := common.NewResponseWriter(w)

			var route string
			if pm := middleware.Pattern(r.Context()); pm != nil {
				if p, ok := pm.(*pat.Pattern); ok {
					route = p.String()
				}
			}
			handler.ServeHTTP(wrappedWriter, r)
			common.Record(reg, common.SectionName(r, route, wrappedWriter.Status), start)
		}
		return http.HandlerFunc(wrappedHandler)
	}
}
