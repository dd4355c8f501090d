package pulse_test

import (
	"testing"

	"github.com/jt05610/pulse"
)

func TestFIFO_Order(t *testing.T) {
	f := pulse.NewFIFO[int](4)
	f.Push(1, 2)
	f.Push(3)
	for want := 1; want <= 3; want++ {
		got, ok := f.Pop()
		if !ok {
			t.Fatalf("queue empty after %d pops", want-1)
		}
		if got != want {
			t.Errorf("popped %d, want %d", got, want)
		}
	}
	if _, ok := f.Pop(); ok {
		t.Error("pop on drained queue should report empty")
	}
}

func TestFIFO_PushWhileDraining(t *testing.T) {
	f := pulse.NewFIFO[string](0)
	f.Push("a")
	var seen []string
	for v, ok := f.Pop(); ok; v, ok = f.Pop() {
		seen = append(seen, v)
		if v == "a" {
			f.Push("b", "c")
		}
	}
	if len(seen) != 3 || seen[0] != "a" || seen[1] != "b" || seen[2] != "c" {
		t.Errorf("drain order %v, want [a b c]", seen)
	}
}
