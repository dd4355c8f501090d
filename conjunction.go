package pulse

import (
	"fmt"
	"sort"
	"strings"
)

var _ Module = (*Conjunction)(nil)

// Conjunction remembers the last pulse received from each of its inputs and
// emits Low only when every remembered input is High. The input set is fixed
// when the network is wired and never grows afterwards.
type Conjunction struct {
	name         string
	destinations []string
	inputs       map[string]Pulse
}

func (c *Conjunction) Kind() ModuleKind { return ConjunctionModule }

func (c *Conjunction) Name() string { return c.name }

func (c *Conjunction) Destinations() []string { return c.destinations }

// addInput registers source as an input, remembered as Low. Called by NewNet
// while wiring; the set is immutable once the net is built.
func (c *Conjunction) addInput(source string) {
	c.inputs[source] = Low
}

func (c *Conjunction) Receive(p Pulse, source string) []Event {
	if _, ok := c.inputs[source]; !ok {
		panic(fmt.Sprintf("conjunction %s received pulse from unregistered input %s", c.name, source))
	}
	c.inputs[source] = p
	out := Low
	for _, remembered := range c.inputs {
		if remembered == Low {
			out = High
			break
		}
	}
	return emit(c.name, c.destinations, out)
}

// State serializes the input memory sorted by input name, so structurally
// identical states always produce identical keys.
func (c *Conjunction) State() string {
	states := make([]string, 0, len(c.inputs))
	for name, p := range c.inputs {
		states = append(states, name+"="+p.String())
	}
	sort.Strings(states)
	return strings.Join(states, ",")
}

func (c *Conjunction) String() string { return c.name }
