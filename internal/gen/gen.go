// Package gen generates typed Go state and event declarations from a chart
// document. The output declares one event type per chart event, one state
// type per chart state with a handler method per declared transition, and a
// machine constructor. It replaces hand-written dispatch boilerplate with a
// declarative source of truth.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"github.com/Zoreno/fsm/chart"
)

type eventDecl struct {
	Name     string // chart event name
	TypeName string
	Method   string
}

type handlerDecl struct {
	Method    string
	EventType string
	Target    string // target state type name
}

type stateDecl struct {
	Name     string // chart state name
	TypeName string
	Handlers []handlerDecl
}

type fileData struct {
	ChartID      string
	Package      string
	MachineIdent string
	Initial      string
	Events       []eventDecl
	States       []stateDecl
}

// Generate renders gofmt-formatted Go source declaring the chart's events,
// states, handlers, and machine constructor in the given package.
func Generate(c *chart.Chart, pkg string) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if pkg == "" {
		return nil, fmt.Errorf("package name is required")
	}

	data := fileData{
		ChartID:      c.ID,
		Package:      pkg,
		MachineIdent: exportedIdent(c.ID),
		Initial:      c.Initial,
	}

	events := make(map[string]eventDecl)
	for _, name := range c.Events() {
		decl := eventDecl{
			Name:     name,
			TypeName: eventTypeName(name),
			Method:   "On" + exportedIdent(name),
		}
		events[name] = decl
		data.Events = append(data.Events, decl)
	}

	for _, name := range c.StateNames() {
		decl := stateDecl{
			Name:     name,
			TypeName: stateTypeName(name),
		}
		for _, edge := range c.Edges() {
			if edge.From != name {
				continue
			}
			ev := events[edge.Event]
			decl.Handlers = append(decl.Handlers, handlerDecl{
				Method:    ev.Method,
				EventType: ev.TypeName,
				Target:    stateTypeName(edge.To),
			})
		}
		data.States = append(data.States, decl)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt generated source: %w", err)
	}
	return src, nil
}

// exportedIdent turns a chart name into an exported Go identifier:
// "syn-ack" becomes "SynAck".
func exportedIdent(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func eventTypeName(name string) string {
	ident := exportedIdent(name)
	if !strings.HasSuffix(ident, "Event") {
		ident += "Event"
	}
	return ident
}

func stateTypeName(name string) string {
	ident := exportedIdent(name)
	if !strings.HasSuffix(ident, "State") {
		ident += "State"
	}
	return ident
}

var fileTemplate = template.Must(template.New("fsm").Parse(`// Code generated by fsmgen from chart "{{.ChartID}}". DO NOT EDIT.

package {{.Package}}

import "github.com/Zoreno/fsm"

// Events.
{{range .Events}}
// {{.TypeName}} is the "{{.Name}}" event.
type {{.TypeName}} struct{ fsm.BaseEvent }

func (e {{.TypeName}}) Resolve(s fsm.State) (fsm.Transition, bool) {
	if h, ok := s.(interface {
		{{.Method}}({{.TypeName}}) fsm.Transition
	}); ok {
		return h.{{.Method}}(e), true
	}
	return nil, false
}
{{end}}
// States.
{{range $s := .States}}
// {{$s.TypeName}} is the "{{$s.Name}}" state.
type {{$s.TypeName}} struct{ fsm.BaseState }

func ({{$s.TypeName}}) Name() string { return "{{$s.Name}}" }
{{range $h := $s.Handlers}}
func ({{$s.TypeName}}) {{$h.Method}}({{$h.EventType}}) fsm.Transition { return fsm.To[{{$h.Target}}]() }
{{end}}{{end}}
// New{{.MachineIdent}}Machine constructs the "{{.ChartID}}" machine in its initial state "{{.Initial}}".
func New{{.MachineIdent}}Machine() *fsm.Machine {
	return fsm.MustNew(
{{- range .States}}
		&{{.TypeName}}{},
{{- end}}
	)
}
`))
