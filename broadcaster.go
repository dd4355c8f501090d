package pulse

var _ Module = (*Broadcaster)(nil)

// BroadcasterName is the conventional name of the network's entry module.
const BroadcasterName = "broadcaster"

// Broadcaster echoes every incoming pulse to all of its destinations. It is
// stateless and there is exactly one per network.
type Broadcaster struct {
	name         string
	destinations []string
}

func (b *Broadcaster) Kind() ModuleKind { return BroadcasterModule }

func (b *Broadcaster) Name() string { return b.name }

func (b *Broadcaster) Destinations() []string { return b.destinations }

func (b *Broadcaster) Receive(p Pulse, _ string) []Event {
	return emit(b.name, b.destinations, p)
}

// State returns "": a stateless module contributes nothing to the system
// state key.
func (b *Broadcaster) State() string { return "" }

func (b *Broadcaster) String() string { return b.name }
