package pulse

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNoModules     = errors.New("net has no modules")
	ErrNoBroadcaster = errors.New("net has no broadcaster")
)

// Net owns every module of one network, keyed by name. It is built once from
// collaborator-supplied definitions; after NewNet returns, the topology and
// every conjunction's input set are immutable. Only pulse delivery mutates
// module state.
type Net struct {
	ID      string
	Name    string
	modules map[string]Module
	order   []string
}

// NewNet builds the name -> module map and wires every conjunction's input
// set by scanning all destination lists. Wiring runs to completion before
// any pulse can be delivered; a definition set without a broadcaster, or
// with repeated names, is a construction error.
func NewNet(name string, defs ...Definition) (*Net, error) {
	if len(defs) == 0 {
		return nil, ErrNoModules
	}
	net := &Net{
		ID:      uuid.New().String(),
		Name:    name,
		modules: make(map[string]Module, len(defs)),
		order:   make([]string, 0, len(defs)),
	}
	for _, d := range defs {
		if _, ok := net.modules[d.Name]; ok {
			return nil, fmt.Errorf("duplicate module %q", d.Name)
		}
		net.modules[d.Name] = d.module()
		net.order = append(net.order, d.Name)
	}
	entry, ok := net.modules[BroadcasterName]
	if !ok || entry.Kind() != BroadcasterModule {
		return nil, ErrNoBroadcaster
	}
	for _, name := range net.order {
		m := net.modules[name]
		for _, dest := range m.Destinations() {
			if c, ok := net.modules[dest].(*Conjunction); ok {
				c.addInput(name)
			}
		}
	}
	return net, nil
}

// Module returns the module with the given name, or nil.
func (n *Net) Module(name string) Module {
	return n.modules[name]
}

// Modules returns every module in definition order.
func (n *Net) Modules() []Module {
	mm := make([]Module, len(n.order))
	for i, name := range n.order {
		mm[i] = n.modules[name]
	}
	return mm
}

func (n *Net) Size() int { return len(n.modules) }

// Deliver routes one event to its addressed module and returns the events it
// emits in turn. A destination that names no module is a sink; the pulse is
// absorbed and no events are produced. This is not an error.
func (n *Net) Deliver(e Event) []Event {
	m, ok := n.modules[e.Dest]
	if !ok {
		return nil
	}
	return m.Receive(e.Pulse, e.Source)
}

// State returns a canonical encoding of every stateful module's internal
// state, sorted by module name. The broadcaster is stateless and excluded.
// Two structurally identical nets always produce equal keys.
func (n *Net) State() string {
	states := make([]string, 0, len(n.modules))
	for name, m := range n.modules {
		if m.Kind() == BroadcasterModule {
			continue
		}
		states = append(states, name+":"+m.State())
	}
	sort.Strings(states)
	return strings.Join(states, ";")
}

func (n *Net) String() string { return n.Name }
