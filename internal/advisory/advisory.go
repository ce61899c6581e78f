// Package advisory defines non-fatal data-quality notices produced while
// classifying, deriving, or validating font naming data.
//
// An Advisory is informational: it travels alongside a primary result and
// never replaces it. Fatal conditions are modeled as typed errors by the
// package that detects them, not as advisories.
package advisory

import (
	"fmt"
	"sort"
	"sync"
)

// Context identifies the processing phase that produced an advisory.
type Context string

const (
	// Classification covers ambiguous style-token matches.
	Classification Context = "classification"

	// AxisBounds covers axis and instance-coordinate range issues.
	AxisBounds Context = "axis-bounds"

	// Sanitization covers characters removed while building name values.
	Sanitization Context = "sanitization"

	// Policy covers naming-policy adjustments such as length truncation.
	Policy Context = "policy"
)

// Advisory is a single non-fatal notice. Path is the filename or instance
// name the notice refers to and may be empty.
type Advisory struct {
	Context Context
	Path    string
	Message string
}

// Newf builds an advisory with a formatted message.
func Newf(ctx Context, path, format string, args ...any) Advisory {
	return Advisory{Context: ctx, Path: path, Message: fmt.Sprintf(format, args...)}
}

func (a Advisory) String() string {
	if a.Path == "" {
		return fmt.Sprintf("[%s] %s", a.Context, a.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", a.Context, a.Path, a.Message)
}

// Tracker aggregates advisories across many derivation calls, for batch
// reporting. The zero value is ready to use. Safe for concurrent use.
type Tracker struct {
	mu   sync.Mutex
	list []Advisory
}

// Add records advisories. Nil and empty slices are no-ops.
func (t *Tracker) Add(advisories ...Advisory) {
	if len(advisories) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.list = append(t.list, advisories...)
}

// All returns a copy of every recorded advisory in insertion order.
func (t *Tracker) All() []Advisory {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Advisory, len(t.list))
	copy(out, t.list)
	return out
}

// Len reports the number of recorded advisories.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.list)
}

// Summary returns per-context counts.
func (t *Tracker) Summary() map[Context]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[Context]int)
	for _, a := range t.list {
		out[a.Context]++
	}
	return out
}

// Contexts returns the contexts present in the tracker, sorted for stable
// report output.
func (t *Tracker) Contexts() []Context {
	counts := t.Summary()
	out := make([]Context, 0, len(counts))
	for c := range counts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
