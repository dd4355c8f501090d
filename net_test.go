package pulse_test

import (
	"errors"
	"testing"

	"github.com/jt05610/pulse"
)

func cascadeDefs() []pulse.Definition {
	return []pulse.Definition{
		{Name: "broadcaster", Kind: pulse.BroadcasterModule, Destinations: []string{"a", "b", "c"}},
		{Name: "a", Kind: pulse.FlipFlopModule, Destinations: []string{"b"}},
		{Name: "b", Kind: pulse.FlipFlopModule, Destinations: []string{"c"}},
		{Name: "c", Kind: pulse.FlipFlopModule, Destinations: []string{"inv"}},
		{Name: "inv", Kind: pulse.ConjunctionModule, Destinations: []string{"a"}},
	}
}

func TestNewNet_ConstructionErrors(t *testing.T) {
	if _, err := pulse.NewNet("empty"); !errors.Is(err, pulse.ErrNoModules) {
		t.Errorf("empty definition list: got %v, want ErrNoModules", err)
	}
	_, err := pulse.NewNet("headless",
		pulse.Definition{Name: "a", Kind: pulse.FlipFlopModule, Destinations: []string{"b"}},
	)
	if !errors.Is(err, pulse.ErrNoBroadcaster) {
		t.Errorf("missing broadcaster: got %v, want ErrNoBroadcaster", err)
	}
	defs := cascadeDefs()
	defs = append(defs, pulse.Definition{Name: "a", Kind: pulse.FlipFlopModule})
	if _, err := pulse.NewNet("dup", defs...); err == nil {
		t.Error("duplicate module name should fail construction")
	}
}

func TestNewNet_WiresConjunctionInputs(t *testing.T) {
	net, err := pulse.NewNet("cascade", cascadeDefs()...)
	if err != nil {
		t.Fatal(err)
	}
	inv := net.Module("inv")
	if inv == nil || inv.Kind() != pulse.ConjunctionModule {
		t.Fatal("inv should be a conjunction")
	}
	// c is inv's only feeder, remembered as low before any pulse.
	if got, want := inv.State(), "c=low"; got != want {
		t.Errorf("inv state %q, want %q", got, want)
	}
}

func TestNet_DeliverToSink(t *testing.T) {
	net, err := pulse.NewNet("sink",
		pulse.Definition{Name: "broadcaster", Kind: pulse.BroadcasterModule, Destinations: []string{"nowhere"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	out := net.Deliver(pulse.Event{Source: "broadcaster", Dest: "nowhere", Pulse: pulse.Low})
	if len(out) != 0 {
		t.Errorf("sink produced %d events, want 0", len(out))
	}
}

func TestNet_StateCanonical(t *testing.T) {
	a, err := pulse.NewNet("one", cascadeDefs()...)
	if err != nil {
		t.Fatal(err)
	}
	defs := cascadeDefs()
	// Same modules defined in a different order must encode identically.
	defs[1], defs[3] = defs[3], defs[1]
	b, err := pulse.NewNet("two", defs...)
	if err != nil {
		t.Fatal(err)
	}
	if a.State() != b.State() {
		t.Errorf("state keys differ:\n%s\n%s", a.State(), b.State())
	}
	if got, want := a.State(), "a:off;b:off;c:off;inv:c=low"; got != want {
		t.Errorf("state %q, want %q", got, want)
	}
}

func TestNet_StateReflectsDelivery(t *testing.T) {
	net, err := pulse.NewNet("cascade", cascadeDefs()...)
	if err != nil {
		t.Fatal(err)
	}
	before := net.State()
	net.Deliver(pulse.Event{Source: "broadcaster", Dest: "a", Pulse: pulse.Low})
	after := net.State()
	if before == after {
		t.Error("toggling a flip-flop should change the state key")
	}
	net.Deliver(pulse.Event{Source: "broadcaster", Dest: "a", Pulse: pulse.Low})
	if net.State() != before {
		t.Error("two low pulses should restore the original state key")
	}
}
