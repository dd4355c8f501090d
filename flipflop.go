package pulse

var _ Module = (*FlipFlop)(nil)

// FlipFlop is a two-state module. A High pulse is ignored. A Low pulse
// toggles it, and it emits High when it turns on, Low when it turns off.
type FlipFlop struct {
	name         string
	destinations []string
	on           bool
}

func (f *FlipFlop) Kind() ModuleKind { return FlipFlopModule }

func (f *FlipFlop) Name() string { return f.name }

func (f *FlipFlop) Destinations() []string { return f.destinations }

func (f *FlipFlop) Receive(p Pulse, _ string) []Event {
	if p == High {
		return nil
	}
	f.on = !f.on
	out := Low
	if f.on {
		out = High
	}
	return emit(f.name, f.destinations, out)
}

func (f *FlipFlop) State() string {
	if f.on {
		return "on"
	}
	return "off"
}

func (f *FlipFlop) String() string { return f.name }
