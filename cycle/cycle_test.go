package cycle_test

import (
	"testing"

	"github.com/jt05610/pulse"
	"github.com/jt05610/pulse/cycle"
	"github.com/jt05610/pulse/examples"
	"github.com/jt05610/pulse/press"
)

func TestTotalPulses_Cascade(t *testing.T) {
	low, high := cycle.TotalPulses(examples.Cascade(), 1000)
	if low != 8000 || high != 4000 {
		t.Errorf("got (%d, %d), want (8000, 4000)", low, high)
	}
}

func TestTotalPulses_Counter(t *testing.T) {
	low, high := cycle.TotalPulses(examples.Counter(), 1000)
	if low != 4250 || high != 2750 {
		t.Errorf("got (%d, %d), want (4250, 2750)", low, high)
	}
}

func TestTotalPulses_ZeroPresses(t *testing.T) {
	net := press.New(examples.Counter())
	total := cycle.New(net).Total(0)
	if total != (press.Tally{}) {
		t.Errorf("zero presses tallied %s", total)
	}
	if net.Presses() != 0 {
		t.Error("zero presses should not touch the simulator")
	}
}

// Extrapolated totals must match brute-force simulation both below and above
// the cycle length (the counter net repeats every four presses).
func TestTotal_MatchesBruteForce(t *testing.T) {
	for _, presses := range []uint64{1, 2, 3, 4, 5, 7, 8, 9, 100, 1001} {
		var brute press.Tally
		bruteNet := press.New(examples.Counter())
		for i := uint64(0); i < presses; i++ {
			brute = brute.Add(bruteNet.Press())
		}
		got := cycle.New(press.New(examples.Counter())).Total(presses)
		if got != brute {
			t.Errorf("%d presses: extrapolated %s, brute force %s", presses, got, brute)
		}
	}
}

func TestTotalPulses_Deterministic(t *testing.T) {
	l1, h1 := cycle.TotalPulses(examples.Cascade(), 123456789)
	l2, h2 := cycle.TotalPulses(examples.Cascade(), 123456789)
	if l1 != l2 || h1 != h2 {
		t.Errorf("runs diverged: (%d, %d) vs (%d, %d)", l1, h1, l2, h2)
	}
}

// A large press count must extrapolate instead of simulating press by press,
// and the projection must stay exact in 64-bit arithmetic.
func TestTotal_LargePressCount(t *testing.T) {
	net := press.New(examples.Counter())
	const presses = 1_000_000_000_000
	total := cycle.New(net).Total(presses)
	// 17 low and 11 high per 4-press cycle.
	if want := (press.Tally{Low: 17 * presses / 4, High: 11 * presses / 4}); total != want {
		t.Errorf("got %s, want %s", total, want)
	}
	if net.Presses() > 8 {
		t.Errorf("simulated %d presses, expected the cycle to cut this to a handful", net.Presses())
	}
}

// A net with no stateful modules has an empty state key that repeats
// immediately: a one-press cycle.
func TestTotal_StatelessNet(t *testing.T) {
	net, err := pulse.NewNet("single",
		pulse.Definition{Name: "broadcaster", Kind: pulse.BroadcasterModule, Destinations: []string{"out"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	total := cycle.New(press.New(net)).Total(2)
	if total != (press.Tally{Low: 4}) {
		t.Errorf("got %s, want 4 low, 0 high", total)
	}
}
