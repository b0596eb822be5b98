package common

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfmonio/perfmon-go/track"
)

func TestResponseWriterCapturesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewResponseWriter(rec)
	w.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Status)
	assert.Equal(t, http.StatusTeapot, rec.Code, "the status must still reach the real writer")
}

func TestSectionName(t *testing.T) {
	r, _ := http.NewRequest("GET", "/hello/world", nil)
	assert.Equal(t, "GET /hello/world (200)", SectionName(r, "", 0),
		"no route and no explicit status falls back to path and 200")
	assert.Equal(t, "GET /hello/:name (404)", SectionName(r, "/hello/:name", 404),
		"a route template replaces the raw path")
}

func TestRecord(t *testing.T) {
	reg := track.New()
	Record(reg, "GET / (200)", time.Now().Add(-5*time.Millisecond))
	secs := reg.Sections()
	require.Len(t, secs, 1)
	assert.Equal(t, "GET / (200)", secs[0].Name())
	elapsed, done := secs[0].Elapsed()
	assert.True(t, done, "recorded sections arrive already ended")
	assert.True(t, elapsed >= 5, "the backdated start must be honored")
	assert.Equal(t, track.Milliseconds, secs[0].Resolution())
}
