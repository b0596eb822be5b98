package track

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/perfmonio/perfmon-go/timer"
)

// DefaultName labels sections begun without a name.
const DefaultName = "UNKNOWN"

// ErrInvalidOp is returned by End when asked to do something impossible:
// end a section that doesn't exist, end one twice, or record a negative
// duration. Test for it with errors.Is.
var ErrInvalidOp = errors.New("perfmon: invalid operation")

// Resolution is the unit a section's elapsed time is truncated to and
// reported in. The zero value is not a valid resolution; Begin treats it
// (and any other out-of-range value) as Milliseconds.
type Resolution int

const (
	Seconds Resolution = iota + 1
	Milliseconds
	Microseconds
	Nanoseconds
)

// Suffix returns the unit label used in rendered reports.
func (r Resolution) Suffix() string {
	switch r {
	case Seconds:
		return "s"
	case Microseconds:
		return "µs"
	case Nanoseconds:
		return "ns"
	default:
		return "ms"
	}
}

func (r Resolution) valid() bool {
	return r >= Seconds && r <= Nanoseconds
}

// convert truncates d toward zero into r's unit, duration-cast style.
func (r Resolution) convert(d time.Duration) int64 {
	switch r {
	case Seconds:
		return int64(d / time.Second)
	case Microseconds:
		return int64(d / time.Microsecond)
	case Nanoseconds:
		return int64(d)
	default:
		return int64(d / time.Millisecond)
	}
}

// Section is one named interval being timed. Sections are owned by a
// Registry and identified by the integer id Begin returned; they only
// move one way, from running to ended.
type Section struct {
	name    string
	res     Resolution
	timer   timer.Timer
	elapsed int64
	done    bool
}

func (s *Section) Name() string {
	return s.name
}

func (s *Section) Resolution() Resolution {
	return s.res
}

// Elapsed returns the recorded duration in the section's resolution units
// and whether the section has ended. A zero elapsed with ok=true is a real
// measurement, distinct from a section that is still running.
func (s *Section) Elapsed() (int64, bool) {
	return s.elapsed, s.done
}

// Result is the finished form of a section, handed to a Publisher the
// moment End records it.
type Result struct {
	RunID      string
	ID         int
	Name       string
	Resolution Resolution
	Elapsed    int64
}

// A Publisher receives sections as they end. Implementations must be safe
// for concurrent use; the registry calls Publish outside its lock.
type Publisher interface {
	Publish(res Result)
}

// Registry owns an ordered collection of sections. Ids are positions in
// insertion order, starting over from 0 after Reset. All methods are safe
// for concurrent use.
type Registry struct {
	mu       sync.Mutex
	runID    string
	sections []*Section
	printer  *message.Printer
	pub      Publisher
}

type Option func(*Registry)

// WithPrinter sets the printer used for grouping digits in rendered
// reports, replacing the default English-locale printer.
func WithPrinter(p *message.Printer) Option {
	return func(r *Registry) {
		if p != nil {
			r.printer = p
		}
	}
}

// WithPublisher attaches a publisher that receives every ended section.
func WithPublisher(p Publisher) Option {
	return func(r *Registry) {
		r.pub = p
	}
}

// New returns an empty registry. Digits are grouped per the English
// locale unless WithPrinter says otherwise, keeping report output
// deterministic regardless of host locale settings.
func New(opts ...Option) *Registry {
	r := &Registry{
		runID:   uuid.Must(uuid.NewRandom()).String(),
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunID identifies this registry instance in published events.
func (r *Registry) RunID() string {
	return r.runID
}

// Len returns the number of sections currently tracked.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sections)
}

// Sections returns a snapshot copy of all tracked sections in insertion
// order. Mutating the copies has no effect on the registry.
func (r *Registry) Sections() []Section {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Section, len(r.sections))
	for i, s := range r.sections {
		out[i] = *s
	}
	return out
}

// Begin starts timing a new section and returns its id. An empty name
// becomes DefaultName; an invalid resolution becomes Milliseconds. Begin
// always succeeds.
func (r *Registry) Begin(name string, res Resolution) int {
	return r.BeginAt(name, res, time.Now())
}

// BeginAt is Begin with a caller-supplied start instant, for recording a
// section whose timing began before its name was known - middlewares use
// it to fold the response status into the section name after the handler
// has run.
func (r *Registry) BeginAt(name string, res Resolution, start time.Time) int {
	if name == "" {
		name = DefaultName
	}
	if !res.valid() {
		res = Milliseconds
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := len(r.sections)
	r.sections = append(r.sections, &Section{
		name:  name,
		res:   res,
		timer: timer.New(start),
	})
	return id
}

// End records the elapsed time of the section with the given id,
// truncated to its resolution. Ending a section that doesn't exist, or
// ending one a second time, fails with ErrInvalidOp and leaves the
// registry untouched. On success the section's Result is handed to the
// registry's publisher, if any.
func (r *Registry) End(id int) error {
	r.mu.Lock()
	if id < 0 || id >= len(r.sections) {
		r.mu.Unlock()
		return fmt.Errorf("%w: no section with id %d", ErrInvalidOp, id)
	}
	s := r.sections[id]
	if s.done {
		r.mu.Unlock()
		return fmt.Errorf("%w: section %d already ended", ErrInvalidOp, id)
	}
	elapsed := s.res.convert(s.timer.Finish())
	if elapsed < 0 {
		// time.Since is monotonic, so this shouldn't happen
		r.mu.Unlock()
		return fmt.Errorf("%w: section %d measured a negative duration", ErrInvalidOp, id)
	}
	s.elapsed = elapsed
	s.done = true
	pub := r.pub
	res := Result{
		RunID:      r.runID,
		ID:         id,
		Name:       s.name,
		Resolution: s.res,
		Elapsed:    elapsed,
	}
	r.mu.Unlock()
	if pub != nil {
		pub.Publish(res)
	}
	return nil
}

// Reset drops every tracked section. Ids handed out before the reset are
// invalid afterwards; the next Begin returns 0 again.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sections = nil
}
