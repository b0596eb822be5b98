package pmgin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfmonio/perfmon-go/track"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := track.New()

	router := gin.New()
	router.Use(Middleware(reg))
	router.GET("/hello/:name", func(c *gin.Context) {
		c.String(http.StatusOK, "hello %s", c.Param("name"))
	})

	r, _ := http.NewRequest("GET", "/hello/eeyore", nil)
	router.ServeHTTP(httptest.NewRecorder(), r)

	secs := reg.Sections()
	require.Len(t, secs, 1, "one request records one section")
	assert.Equal(t, "GET /hello/:name (200)", secs[0].Name(),
		"the route pattern names the section")
	_, done := secs[0].Elapsed()
	assert.True(t, done)
}

func TestMiddlewareUnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := track.New()

	router := gin.New()
	router.Use(Middleware(reg))

	r, _ := http.NewRequest("GET", "/nope", nil)
	router.ServeHTTP(httptest.NewRecorder(), r)

	secs := reg.Sections()
	require.Len(t, secs, 1)
	assert.Equal(t, "GET /nope (404)", secs[0].Name(),
		"unmatched requests fall back to the raw path and gin's 404")
}
