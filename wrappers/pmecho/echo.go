package pmecho

import (
	"sync"
	"time"

	echo "github.com/labstack/echo/v4"

	"github.com/perfmonio/perfmon-go/track"
	"github.com/perfmonio/perfmon-go/wrappers/common"
)

// EchoWrapper times requests served by the Echo router via middleware.
type EchoWrapper struct {
	reg          *track.Registry
	handlerNames map[string]string
	once         sync.Once
}

// New returns an EchoWrapper recording sections on reg.
func New(reg *track.Registry) *EchoWrapper {
	return &EchoWrapper{reg: reg}
}

// Middleware returns an echo.MiddlewareFunc to be used with Echo.Use().
// Each request records one section named by the matched route path and
// the response status.
func (e *EchoWrapper) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// invoke next middleware in chain
			err := next(c)

			route := c.Path()
			if route == "" {
				// no matched route; the registered handler name is the
				// next best label
				route = e.handlerName(c)
			}
			// the error handler hasn't written its status yet when an
			// error comes back, so take the status from the error itself
			status := c.Response().Status
			if err != nil {
				status = 500
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			common.Record(e.reg, common.SectionName(c.Request(), route, status), start)
			return err
		}
	}
}

// Unfortunately the name of c.Handler() is an anonymous function, so the
// route table is used to map request paths to actual handler names. The
// map is built once, on the first request, and looked up cheaply from
// then on.
func (e *EchoWrapper) handlerName(c echo.Context) string {
	e.once.Do(func() {
		routes := c.Echo().Routes()
		e.handlerNames = make(map[string]string, len(routes))
		for _, r := range routes {
			e.handlerNames[r.Method+r.Path] = r.Name
		}
	})
	return e.handlerNames[c.Request().Method+c.Path()]
}
