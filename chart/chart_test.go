package chart_test

import (
	"strings"
	"testing"

	"github.com/Zoreno/fsm/chart"
)

const doorYAML = `
id: door
initial: Closed
states:
  Closed:
    on:
      Open: Open
  Open:
    on:
      Close: Closed
`

func TestParseDoorChart(t *testing.T) {
	c, err := chart.Parse([]byte(doorYAML))
	if err != nil {
		t.Fatal(err)
	}

	if c.ID != "door" || c.Initial != "Closed" {
		t.Fatalf("unexpected header: id=%q initial=%q", c.ID, c.Initial)
	}
	if len(c.States) != 2 {
		t.Fatalf("expected 2 states, got %d", len(c.States))
	}
	if got := c.States["Closed"].On["Open"]; got != "Open" {
		t.Errorf("Closed/Open target = %q, want Open", got)
	}
}

func TestStateNamesInitialFirst(t *testing.T) {
	c, err := chart.Parse([]byte(doorYAML))
	if err != nil {
		t.Fatal(err)
	}

	names := c.StateNames()
	if len(names) != 2 || names[0] != "Closed" || names[1] != "Open" {
		t.Errorf("StateNames = %v, want [Closed Open]", names)
	}
}

func TestUnvalidatedChartAccessors(t *testing.T) {
	empty := &chart.Chart{ID: "x"}
	if names := empty.StateNames(); len(names) != 0 {
		t.Errorf("StateNames on empty chart = %v, want none", names)
	}
	if edges := empty.Edges(); len(edges) != 0 {
		t.Errorf("Edges on empty chart = %v, want none", edges)
	}

	// Initial never declared: accessors still answer, Validate reports it.
	stray := &chart.Chart{
		ID:      "x",
		Initial: "Missing",
		States: map[string]*chart.State{
			"A": {On: map[string]string{"go": "A"}},
			"B": nil,
		},
	}
	if names := stray.StateNames(); len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("StateNames = %v, want [A B]", names)
	}
	edges := stray.Edges()
	if len(edges) != 1 || edges[0] != (chart.Edge{From: "A", To: "A", Event: "go"}) {
		t.Errorf("Edges = %v, want the A self-loop only", edges)
	}
	if err := stray.Validate(); err == nil {
		t.Error("expected validation error for undeclared initial")
	}
}

func TestEventsSortedUnion(t *testing.T) {
	c, err := chart.Parse([]byte(doorYAML))
	if err != nil {
		t.Fatal(err)
	}

	events := c.Events()
	if len(events) != 2 || events[0] != "Close" || events[1] != "Open" {
		t.Errorf("Events = %v, want [Close Open]", events)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing id",
			yaml: "initial: A\nstates:\n  A: {}\n",
			want: "chart ID is required",
		},
		{
			name: "missing initial",
			yaml: "id: x\nstates:\n  A: {}\n",
			want: "initial state is required",
		},
		{
			name: "no states",
			yaml: "id: x\ninitial: A\n",
			want: "states map is required",
		},
		{
			name: "unknown initial",
			yaml: "id: x\ninitial: B\nstates:\n  A: {}\n",
			want: `initial state "B" not found`,
		},
		{
			name: "unknown target",
			yaml: "id: x\ninitial: A\nstates:\n  A:\n    on:\n      go: B\n",
			want: `invalid transition target "B"`,
		},
		{
			name: "orphan state",
			yaml: "id: x\ninitial: A\nstates:\n  A: {}\n  B: {}\n",
			want: `orphaned state "B"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chart.Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q, want substring %q", err, tc.want)
			}
		})
	}
}

func TestEdgesDeterministic(t *testing.T) {
	c, err := chart.Parse([]byte(doorYAML))
	if err != nil {
		t.Fatal(err)
	}

	edges := c.Edges()
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %v", edges)
	}
	if edges[0] != (chart.Edge{From: "Closed", To: "Open", Event: "Open"}) {
		t.Errorf("unexpected first edge %+v", edges[0])
	}
	if edges[1] != (chart.Edge{From: "Open", To: "Closed", Event: "Close"}) {
		t.Errorf("unexpected second edge %+v", edges[1])
	}
}

func TestDOTExport(t *testing.T) {
	c, err := chart.Parse([]byte(doorYAML))
	if err != nil {
		t.Fatal(err)
	}

	dot := c.DOT("Closed")
	for _, want := range []string{
		`digraph "door" {`,
		`"Closed" [label="Closed" style="rounded,filled" fillcolor=lightgreen];`,
		`"Open" [label="Open"];`,
		`"Closed" -> "Open" [label="Open"];`,
		`"Open" -> "Closed" [label="Close"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestMermaidExport(t *testing.T) {
	c, err := chart.Parse([]byte(doorYAML))
	if err != nil {
		t.Fatal(err)
	}

	mermaid := c.Mermaid()
	for _, want := range []string{
		"stateDiagram-v2",
		"[*] --> Closed",
		"Closed --> Open: Open",
		"Open --> Closed: Close",
	} {
		if !strings.Contains(mermaid, want) {
			t.Errorf("Mermaid missing %q:\n%s", want, mermaid)
		}
	}
}

func TestJSONExport(t *testing.T) {
	c, err := chart.Parse([]byte(doorYAML))
	if err != nil {
		t.Fatal(err)
	}

	data, err := c.JSON()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"id": "door"`, `"initial": "Closed"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON missing %q:\n%s", want, data)
		}
	}
}
