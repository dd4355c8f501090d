// Package press simulates single button presses against a pulse network,
// draining the event queue to quiescence in strict FIFO order.
package press

import (
	"fmt"

	"github.com/jt05610/pulse"
	"go.uber.org/zap"
)

// ButtonName is the synthetic source of the pulse that starts a press.
const ButtonName = "button"

// Tally counts the pulses observed during one or more presses, the synthetic
// button pulse included.
type Tally struct {
	Low  uint64
	High uint64
}

func (t Tally) Add(o Tally) Tally {
	return Tally{Low: t.Low + o.Low, High: t.High + o.High}
}

func (t Tally) Total() uint64 { return t.Low + t.High }

func (t Tally) String() string {
	return fmt.Sprintf("%d low, %d high", t.Low, t.High)
}

// Net wraps a pulse.Net with the press operation. It is the only mutator of
// the underlying net, and presses run strictly one after another.
type Net struct {
	*pulse.Net
	logger  *zap.Logger
	presses uint64
}

type Option func(*Net)

// WithLogger enables per-event debug tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Net) {
		n.logger = logger
	}
}

func New(net *pulse.Net, opts ...Option) *Net {
	n := &Net{Net: net}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Press delivers one button pulse to the broadcaster and runs the network to
// quiescence. Every dequeued event is tallied by polarity; events emitted by
// a delivery are appended to the tail of the queue. The FIFO order is a
// correctness requirement: a conjunction's output depends on which inputs it
// has seen so far within the same press.
func (n *Net) Press() Tally {
	queue := pulse.NewFIFO[pulse.Event](n.Size())
	queue.Push(pulse.Event{Source: ButtonName, Dest: pulse.BroadcasterName, Pulse: pulse.Low})
	var tally Tally
	for e, ok := queue.Pop(); ok; e, ok = queue.Pop() {
		if e.Pulse == pulse.High {
			tally.High++
		} else {
			tally.Low++
		}
		if n.logger != nil {
			n.logger.Debug("pulse", zap.Stringer("event", e))
		}
		queue.Push(n.Deliver(e)...)
	}
	n.presses++
	return tally
}

// Presses returns how many presses have run against this net.
func (n *Net) Presses() uint64 { return n.presses }
