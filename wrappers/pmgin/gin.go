package pmgin

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/perfmonio/perfmon-go/track"
	"github.com/perfmonio/perfmon-go/wrappers/common"
)

// Middleware returns a gin middleware recording one section on reg per
// request. Sections are named by the matched route pattern (c.FullPath)
// and the response status; unmatched requests fall back to the raw path.
func Middleware(reg *track.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// run the rest of the middleware chain and the handler
		c.Next()

		// FullPath is empty when no route matched
		route := c.FullPath()
		common.Record(reg, common.SectionName(c.Request, route, c.Writer.Status()), start)
	}
}
