package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DOT generates Graphviz DOT source for the chart. If active names a
// declared state it is highlighted as the current state.
func (c *Chart) DOT(active string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", c.ID)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")
	buf.WriteString("  edge [fontsize=9];\n")

	for _, name := range c.StateNames() {
		style := ""
		if name == active {
			style = ` style="rounded,filled" fillcolor=lightgreen`
		}
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", name, name, style)
	}
	for _, e := range c.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Event)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Mermaid generates a Mermaid state diagram for the chart.
func (c *Chart) Mermaid() string {
	var buf bytes.Buffer
	buf.WriteString("stateDiagram-v2\n")
	fmt.Fprintf(&buf, "    [*] --> %s\n", c.Initial)
	for _, e := range c.Edges() {
		fmt.Fprintf(&buf, "    %s --> %s: %s\n", e.From, e.To, e.Event)
	}
	return buf.String()
}

// JSON serializes the chart with indentation.
func (c *Chart) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
