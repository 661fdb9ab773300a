package fsm

import (
	"bytes"
	"fmt"
	"log/slog"
)

// Tracer receives diagnostic callbacks during dispatch. Implementations must
// not call back into the machine. All callbacks run inline on the
// dispatching goroutine.
type Tracer interface {
	// Dispatched fires for every dispatch, before the transition is
	// applied. handled reports whether the current state declared a
	// handler for the event.
	Dispatched(machineID, state, event string, handled bool)

	// Transitioned fires after a state switch completes, enter hook
	// included. from and to are equal for self-transitions.
	Transitioned(machineID, from, to string)

	// Ignored fires when a null transition executes: either no handler
	// existed or the handler returned None.
	Ignored(machineID, state string)
}

// SlogTracer logs trace records through a slog.Logger. Transitions log at
// Info; dispatch and null-transition records at Debug.
type SlogTracer struct {
	log *slog.Logger
}

// NewSlogTracer wraps the given logger; nil selects slog.Default.
func NewSlogTracer(log *slog.Logger) *SlogTracer {
	if log == nil {
		log = slog.Default()
	}
	return &SlogTracer{log: log}
}

func (t *SlogTracer) Dispatched(machineID, state, event string, handled bool) {
	t.log.Debug("event dispatched",
		"machine", machineID,
		"state", state,
		"event", event,
		"handled", handled,
	)
}

func (t *SlogTracer) Transitioned(machineID, from, to string) {
	t.log.Info("transition",
		"machine", machineID,
		"from", from,
		"to", to,
	)
}

func (t *SlogTracer) Ignored(machineID, state string) {
	t.log.Debug("null transition fired",
		"machine", machineID,
		"state", state,
	)
}

// RecordedEdge is one observed transition, labeled with the event that
// triggered it and the number of times it fired.
type RecordedEdge struct {
	From  string
	To    string
	Event string
	Count int
}

// Recorder accumulates observed transitions and renders them as a Graphviz
// DOT graph. Useful in tests and for visualizing the part of a machine's
// topology a run actually exercised.
//
// A Recorder is as single-threaded as the machine it observes.
type Recorder struct {
	pending string // event label of the in-flight dispatch, consumed by Transitioned
	edges   []RecordedEdge
	index   map[RecordedEdge]int
	nodes   []string
	seen    map[string]bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		index: make(map[RecordedEdge]int),
		seen:  make(map[string]bool),
	}
}

func (r *Recorder) Dispatched(machineID, state, event string, handled bool) {
	r.pending = event
	r.touch(state)
}

func (r *Recorder) Transitioned(machineID, from, to string) {
	r.touch(from)
	r.touch(to)

	event := r.pending
	r.pending = ""
	if event == "" {
		// Goto switches state without a dispatch.
		event = "(forced)"
	}

	key := RecordedEdge{From: from, To: to, Event: event}
	if i, ok := r.index[key]; ok {
		r.edges[i].Count++
		return
	}
	r.index[key] = len(r.edges)
	key.Count = 1
	r.edges = append(r.edges, key)
}

func (r *Recorder) Ignored(machineID, state string) {}

// Edges returns the observed transitions in first-seen order.
func (r *Recorder) Edges() []RecordedEdge {
	out := make([]RecordedEdge, len(r.edges))
	copy(out, r.edges)
	return out
}

// DOT renders the observed states and transitions as Graphviz DOT source.
func (r *Recorder) DOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph fsm {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")
	buf.WriteString("  edge [fontsize=9];\n")

	for _, n := range r.nodes {
		fmt.Fprintf(&buf, "  %q;\n", n)
	}
	for _, e := range r.edges {
		label := e.Event
		if e.Count > 1 {
			label = fmt.Sprintf("%s (x%d)", e.Event, e.Count)
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func (r *Recorder) touch(state string) {
	if !r.seen[state] {
		r.seen[state] = true
		r.nodes = append(r.nodes, state)
	}
}
