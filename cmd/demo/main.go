// Command demo drives a door lock machine from stdin with transition
// tracing enabled. Type "open", "close", or "quit".
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Zoreno/fsm"
)

type OpenEvent struct{ fsm.BaseEvent }

func (e OpenEvent) Resolve(s fsm.State) (fsm.Transition, bool) {
	if h, ok := s.(interface {
		OnOpen(OpenEvent) fsm.Transition
	}); ok {
		return h.OnOpen(e), true
	}
	return nil, false
}

type CloseEvent struct{ fsm.BaseEvent }

func (e CloseEvent) Resolve(s fsm.State) (fsm.Transition, bool) {
	if h, ok := s.(interface {
		OnClose(CloseEvent) fsm.Transition
	}); ok {
		return h.OnClose(e), true
	}
	return nil, false
}

type ClosedState struct{ fsm.BaseState }

func (ClosedState) Name() string { return "Closed" }

func (ClosedState) OnOpen(OpenEvent) fsm.Transition { return fsm.To[OpenState]() }

type OpenState struct{ fsm.BaseState }

func (OpenState) Name() string { return "Open" }

func (OpenState) OnClose(CloseEvent) fsm.Transition { return fsm.To[ClosedState]() }

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	door := fsm.MustNew(&ClosedState{}, &OpenState{}).
		WithID("door-demo").
		WithTracer(fsm.NewSlogTracer(log))

	fmt.Println("door demo - commands: open, close, quit")
	fmt.Printf("current state: %s\n", door.CurrentStateName())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "open":
			door.Dispatch(OpenEvent{})
		case "close":
			door.Dispatch(CloseEvent{})
		case "quit":
			return
		case "":
		default:
			fmt.Println("unknown command")
			continue
		}
		fmt.Printf("current state: %s\n", door.CurrentStateName())
	}
}
