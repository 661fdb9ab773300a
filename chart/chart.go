// Package chart provides a declarative document model for machine
// topologies: states, events, and the transitions between them.
//
// A chart is the build-time companion to a running fsm.Machine. It does not
// execute; it validates, exports to DOT/Mermaid/JSON for documentation, and
// feeds the fsmgen code generator, which turns it into typed state and event
// declarations.
package chart

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Chart defines a complete machine topology.
type Chart struct {
	ID      string            `yaml:"id" json:"id"`
	Initial string            `yaml:"initial" json:"initial"`
	States  map[string]*State `yaml:"states" json:"states"`
}

// State defines one state's outgoing transitions, keyed by event name.
type State struct {
	On map[string]string `yaml:"on,omitempty" json:"on,omitempty"`
}

// Parse decodes a YAML chart document and validates it.
func Parse(data []byte) (*Chart, error) {
	var c Chart
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads and parses a chart document from a file.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the chart configuration:
// - Non-empty ID and Initial
// - Initial exists in States
// - All transition targets exist in States
// - No orphaned states (all reachable from Initial via transitions)
func (c *Chart) Validate() error {
	if c.ID == "" {
		return errors.New("chart ID is required")
	}
	if c.Initial == "" {
		return errors.New("initial state is required")
	}
	if len(c.States) == 0 {
		return errors.New("states map is required and cannot be empty")
	}
	if _, ok := c.States[c.Initial]; !ok {
		return fmt.Errorf("initial state %q not found in states", c.Initial)
	}

	for name, state := range c.States {
		if state == nil {
			return fmt.Errorf("state %q has no definition", name)
		}
		for event, target := range state.On {
			if event == "" {
				return fmt.Errorf("state %q has a transition with an empty event name", name)
			}
			if _, exists := c.States[target]; !exists {
				return fmt.Errorf("invalid transition target %q (state %q, event %q)", target, name, event)
			}
		}
	}

	// Check no orphaned states via reachability from the initial state.
	visited := make(map[string]bool, len(c.States))
	c.markReachable(c.Initial, visited)
	for name := range c.States {
		if !visited[name] {
			return fmt.Errorf("orphaned state %q (not reachable from initial %q)", name, c.Initial)
		}
	}

	return nil
}

func (c *Chart) markReachable(name string, visited map[string]bool) {
	if visited[name] {
		return
	}
	visited[name] = true
	for _, target := range c.States[name].On {
		c.markReachable(target, visited)
	}
}

// StateNames returns all declared state names, initial first, the rest
// sorted. The order is deterministic so generated code is stable. An
// undeclared initial state is not listed; Validate reports it.
func (c *Chart) StateNames() []string {
	names := make([]string, 0, len(c.States))
	for name := range c.States {
		if name != c.Initial {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := c.States[c.Initial]; ok {
		names = append([]string{c.Initial}, names...)
	}
	return names
}

// Events returns the sorted union of all event names used in the chart.
func (c *Chart) Events() []string {
	seen := make(map[string]bool)
	var events []string
	for _, state := range c.States {
		for event := range state.On {
			if !seen[event] {
				seen[event] = true
				events = append(events, event)
			}
		}
	}
	sort.Strings(events)
	return events
}

// Edge is one declared transition.
type Edge struct {
	From  string
	To    string
	Event string
}

// Edges returns all declared transitions sorted by source state then event.
func (c *Chart) Edges() []Edge {
	var edges []Edge
	for _, from := range c.StateNames() {
		state := c.States[from]
		if state == nil {
			continue
		}
		events := make([]string, 0, len(state.On))
		for event := range state.On {
			events = append(events, event)
		}
		sort.Strings(events)
		for _, event := range events {
			edges = append(edges, Edge{From: from, To: state.On[event], Event: event})
		}
	}
	return edges
}
