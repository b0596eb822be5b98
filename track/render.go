package track

import (
	"fmt"
	"io"
	"strings"
)

// DefaultTitle is used by Render when given an empty title.
const DefaultTitle = "Performance List"

const (
	ruleWidth    = 75
	stillRunning = "STILL RUNNING"
	noEvents     = "No Events Tracked"
)

var rule = strings.Repeat("-", ruleWidth)

// Render produces the report: a dashed rule framing a centered title,
// then one row per section in insertion order with the name on the left
// and the grouped elapsed value plus unit suffix right-aligned to the
// rule width. Sections still running show STILL RUNNING with no unit.
// An empty registry renders a single No Events Tracked line. Render
// never mutates the registry.
func (r *Registry) Render(title string) string {
	if title == "" {
		title = DefaultTitle
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%*s\n", ruleWidth/2+len(title)/2, title)
	b.WriteString(rule + "\n\n")

	if len(r.sections) == 0 {
		b.WriteString("\t" + noEvents + "\n")
	} else {
		for _, s := range r.sections {
			runtime := stillRunning
			if s.done {
				runtime = r.printer.Sprintf("%d", s.elapsed) + " " + s.res.Suffix()
			}
			fmt.Fprintf(&b, "%s%*s\n", s.name, ruleWidth-len(s.name), runtime)
		}
	}

	b.WriteString("\n" + rule + "\n\n")
	return b.String()
}

// Fprint writes the rendered report to w.
func (r *Registry) Fprint(w io.Writer, title string) error {
	_, err := io.WriteString(w, r.Render(title))
	return err
}
