// Package client maintains the shared libhoney client that section
// events are exported through, and the Publisher that turns ended
// sections into events.
package client

import (
	"sync"

	libhoney "github.com/honeycombio/libhoney-go"
	"github.com/honeycombio/libhoney-go/transmission"

	"github.com/perfmonio/perfmon-go/sample"
	"github.com/perfmonio/perfmon-go/track"
)

var (
	mu sync.RWMutex
	c  *libhoney.Client
)

// Init replaces the shared client. Calling any other function before
// Init is safe; events just go nowhere.
func Init(config libhoney.ClientConfig) error {
	nc, err := libhoney.NewClient(config)
	if err != nil {
		return err
	}
	mu.Lock()
	old := c
	c = nc
	mu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// Close flushes pending events and shuts the client down.
func Close() {
	mu.RLock()
	defer mu.RUnlock()
	if c != nil {
		c.Close()
	}
}

// Flush sends any pending events immediately.
func Flush() {
	mu.RLock()
	defer mu.RUnlock()
	if c != nil {
		c.Flush()
	}
}

// AddField adds a field to every event the client sends from now on.
func AddField(name string, val interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if c != nil {
		c.AddField(name, val)
	}
}

// NewBuilder returns a builder scoped to the current client.
func NewBuilder() *libhoney.Builder {
	mu.RLock()
	defer mu.RUnlock()
	if c != nil {
		return c.NewBuilder()
	}
	return &libhoney.Builder{}
}

// TxResponses returns the transmission response queue, or a closed
// channel when no client has been initialized.
func TxResponses() chan transmission.Response {
	mu.RLock()
	defer mu.RUnlock()
	if c != nil {
		return c.TxResponses()
	}
	ch := make(chan transmission.Response)
	close(ch)
	return ch
}

// Publisher exports one event per ended section through the shared
// client. It implements track.Publisher.
type Publisher struct {
	sampler sample.Sampler
}

// NewPublisher returns a publisher. A nil sampler keeps every event.
func NewPublisher(sampler sample.Sampler) *Publisher {
	return &Publisher{sampler: sampler}
}

// Publish sends the section as an event, unless the sampler drops it.
// The sampling key combines the run id and section name so repeated runs
// of the same section are kept or dropped together.
func (p *Publisher) Publish(res track.Result) {
	if p.sampler != nil && !p.sampler.Sample(res.RunID+"/"+res.Name) {
		return
	}
	ev := NewBuilder().NewEvent()
	ev.AddField("meta.type", "section")
	ev.AddField("run_id", res.RunID)
	ev.AddField("section_id", res.ID)
	ev.AddField("name", res.Name)
	ev.AddField("duration", res.Elapsed)
	ev.AddField("duration_unit", res.Resolution.Suffix())
	if p.sampler != nil {
		ev.SampleRate = uint(p.sampler.GetSampleRate())
		ev.SendPresampled()
		return
	}
	ev.Send()
}
