package pmhttprouter

import (
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/perfmonio/perfmon-go/track"
	"github.com/perfmonio/perfmon-go/wrappers/common"
)

// Middleware wraps an httprouter handle, recording one section on reg
// per invocation. Because it wraps handles with explicit parameters, it
// can rebuild the route shape from them: parameter values in the path
// are replaced by their :names, so all requests for the same route share
// a section name.
func Middleware(reg *track.Registry, handle httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		start := time.Now()
		// replace the writer with our wrapper to catch the status code
		wrappedWriter := common.NewResponseWriter(w)

		handle(wrappedWriter, r, ps)

		route := r.URL.Path
		for _, param := range ps {
			route = strings.Replace(route, param.Value, ":"+param.Key, 1)
		}
		common.Record(reg, common.SectionName(r, route, wrappedWriter.Status), start)
	}
}
