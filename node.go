package pulse

import "fmt"

type ModuleKind int

const (
	BroadcasterModule ModuleKind = iota
	FlipFlopModule
	ConjunctionModule
)

func (k ModuleKind) String() string {
	switch k {
	case BroadcasterModule:
		return "broadcaster"
	case FlipFlopModule:
		return "flip-flop"
	case ConjunctionModule:
		return "conjunction"
	}
	return "unknown"
}

// KindOf maps an external variant tag to its ModuleKind.
func KindOf(tag string) (ModuleKind, error) {
	switch tag {
	case "broadcaster":
		return BroadcasterModule, nil
	case "flip-flop":
		return FlipFlopModule, nil
	case "conjunction":
		return ConjunctionModule, nil
	}
	return 0, fmt.Errorf("unknown module kind %q", tag)
}

// Module is a named node of the network. Receive applies one incoming pulse
// and returns the events it emits, in destination-list order. State is a
// read-only snapshot of the module's internal state; it must be identical
// for structurally identical states regardless of map iteration order.
type Module interface {
	Kind() ModuleKind
	Name() string
	Destinations() []string
	Receive(p Pulse, source string) []Event
	State() string
}

// Definition is a fully-resolved module definition handed to NewNet.
// Destination names need not resolve to defined modules; a dangling name is
// a sink that absorbs pulses.
type Definition struct {
	Name         string
	Kind         ModuleKind
	Destinations []string
}

func (d Definition) module() Module {
	switch d.Kind {
	case FlipFlopModule:
		return &FlipFlop{name: d.Name, destinations: d.Destinations}
	case ConjunctionModule:
		return &Conjunction{
			name:         d.Name,
			destinations: d.Destinations,
			inputs:       make(map[string]Pulse),
		}
	}
	return &Broadcaster{name: d.Name, destinations: d.Destinations}
}

// emit fans p out to every destination in order, sourced from name.
func emit(name string, destinations []string, p Pulse) []Event {
	ee := make([]Event, len(destinations))
	for i, d := range destinations {
		ee[i] = Event{Source: name, Dest: d, Pulse: p}
	}
	return ee
}
