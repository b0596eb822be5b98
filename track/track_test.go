package track

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture implements Publisher and remembers everything it's given.
type capture struct {
	results []Result
}

func (c *capture) Publish(res Result) {
	c.results = append(c.results, res)
}

func TestBeginAssignsSequentialIDs(t *testing.T) {
	r := New()
	for i := 0; i < 5; i++ {
		id := r.Begin("step", Milliseconds)
		assert.Equal(t, i, id, "ids should be insertion positions with no gaps or reuse")
	}
	assert.Equal(t, 5, r.Len())
}

func TestBeginDefaults(t *testing.T) {
	r := New()
	id := r.Begin("", 0)
	secs := r.Sections()
	require.Len(t, secs, 1)
	assert.Equal(t, DefaultName, secs[id].Name(), "empty names should fall back to UNKNOWN")
	assert.Equal(t, Milliseconds, secs[id].Resolution(), "invalid resolutions should fall back to milliseconds")
	_, done := secs[id].Elapsed()
	assert.False(t, done, "a fresh section should still be running")
}

func TestEndOutOfRange(t *testing.T) {
	r := New()
	r.Begin("only", Milliseconds)
	for _, id := range []int{-1, 1, 100} {
		err := r.End(id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidOp), "out of range ids should report an invalid operation")
	}
	// the one real section must be untouched by the failed calls
	_, done := r.Sections()[0].Elapsed()
	assert.False(t, done, "failed End calls should leave the registry unmodified")
}

func TestEndRecordsElapsed(t *testing.T) {
	r := New()
	// backdate the start so the measurement is deterministic enough to assert on
	start := time.Now().Add(-2500 * time.Millisecond)
	sec := r.BeginAt("in seconds", Seconds, start)
	ms := r.BeginAt("in millis", Milliseconds, start)
	require.NoError(t, r.End(sec))
	require.NoError(t, r.End(ms))

	got, done := r.Sections()[sec].Elapsed()
	assert.True(t, done)
	assert.Equal(t, int64(2), got, "2500ms truncates toward zero to 2 whole seconds")

	got, done = r.Sections()[ms].Elapsed()
	assert.True(t, done)
	assert.True(t, got >= 2500, "the millisecond section should see at least the backdated amount")
}

func TestEndTwiceRejected(t *testing.T) {
	r := New()
	id := r.Begin("once", Nanoseconds)
	require.NoError(t, r.End(id))
	before, _ := r.Sections()[id].Elapsed()

	err := r.End(id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOp), "re-ending a section should be an invalid operation")
	after, _ := r.Sections()[id].Elapsed()
	assert.Equal(t, before, after, "a rejected End should not overwrite the recorded value")
}

func TestZeroElapsedIsNotRunning(t *testing.T) {
	r := New()
	id := r.BeginAt("instant", Seconds, time.Now())
	require.NoError(t, r.End(id))
	got, done := r.Sections()[id].Elapsed()
	assert.True(t, done, "a zero duration measurement still counts as ended")
	assert.Equal(t, int64(0), got)
}

func TestElapsedNonNegative(t *testing.T) {
	r := New()
	for res := Seconds; res <= Nanoseconds; res++ {
		id := r.Begin("res check", res)
		require.NoError(t, r.End(id))
		got, done := r.Sections()[id].Elapsed()
		assert.True(t, done)
		assert.True(t, got >= 0, "elapsed can never be negative")
	}
}

func TestReset(t *testing.T) {
	r := New()
	r.Begin("a", Milliseconds)
	id := r.Begin("b", Milliseconds)
	require.NoError(t, r.End(id))

	r.Reset()
	assert.Equal(t, 0, r.Len(), "reset should drop every section")
	assert.True(t, errors.Is(r.End(id), ErrInvalidOp), "old ids are invalid after a reset")
	assert.Equal(t, 0, r.Begin("fresh", Milliseconds), "ids start over from 0 after a reset")
}

func TestPublisherReceivesResults(t *testing.T) {
	pub := &capture{}
	r := New(WithPublisher(pub))
	id := r.BeginAt("published", Microseconds, time.Now().Add(-time.Millisecond))
	require.NoError(t, r.End(id))

	require.Len(t, pub.results, 1, "one End should publish one result")
	res := pub.results[0]
	assert.Equal(t, id, res.ID)
	assert.Equal(t, "published", res.Name)
	assert.Equal(t, Microseconds, res.Resolution)
	assert.Equal(t, r.RunID(), res.RunID)
	assert.True(t, res.Elapsed >= 1000, "a backdated millisecond is at least 1000µs")

	// failed End calls must not publish
	r.End(id)
	r.End(42)
	assert.Len(t, pub.results, 1)
}

func TestEndToEnd(t *testing.T) {
	r := New()
	id := r.Begin("Load", Seconds)
	assert.Equal(t, 0, id)
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, r.End(id))

	got, done := r.Sections()[id].Elapsed()
	assert.True(t, done)
	assert.True(t, got >= 0)

	out := r.Render("")
	assert.Contains(t, out, "Load")
	found := false
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Load") && strings.HasSuffix(line, " s") {
			found = true
		}
	}
	assert.True(t, found, "the report should have a Load row with an s suffix")
}
