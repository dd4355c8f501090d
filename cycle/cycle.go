// Package cycle answers "how many pulses after N presses" without simulating
// every press. The per-module state space is finite, so the sequence of
// system states is eventually periodic; once a pre-press state repeats, the
// remaining presses are projected arithmetically from the recorded tallies.
package cycle

import (
	"github.com/google/uuid"
	"github.com/jt05610/pulse"
	"github.com/jt05610/pulse/press"
	"go.uber.org/zap"
)

// record pairs the system state observed before a press with the tally that
// press produced.
type record struct {
	state string
	tally press.Tally
}

// Runner drives repeated presses against one net, memoizing the state before
// each press. A Runner owns its net exclusively and answers one query: use a
// fresh Runner on a fresh net for each independent run.
type Runner struct {
	ID     string
	net    *press.Net
	logger *zap.Logger

	history []record
	index   map[string]int
}

type Option func(*Runner)

// WithLogger reports cycle detection at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

func New(net *press.Net, opts ...Option) *Runner {
	r := &Runner{
		ID:    uuid.New().String(),
		net:   net,
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Total returns the cumulative tally after exactly presses button presses.
// Presses are simulated one by one until the pre-press state matches one
// recorded earlier; the remainder is extrapolated from the detected cycle.
// A zero press count returns the zero tally without touching the net.
func (r *Runner) Total(presses uint64) press.Tally {
	var sum press.Tally
	for i := uint64(0); i < presses; i++ {
		state := r.net.State()
		if start, ok := r.index[state]; ok {
			return r.extrapolate(presses, start)
		}
		tally := r.net.Press()
		r.index[state] = len(r.history)
		r.history = append(r.history, record{state: state, tally: tally})
		sum = sum.Add(tally)
	}
	return sum
}

// extrapolate projects the total for presses button presses from a cycle
// covering history[start:]. Arithmetic stays in uint64; the tallies of a
// single cycle are small, so cycleSum*fullCycles is the only product that
// grows with the press count.
func (r *Runner) extrapolate(presses uint64, start int) press.Tally {
	var leading, cycleSum press.Tally
	for _, rec := range r.history[:start] {
		leading = leading.Add(rec.tally)
	}
	for _, rec := range r.history[start:] {
		cycleSum = cycleSum.Add(rec.tally)
	}
	length := uint64(len(r.history) - start)
	fullCycles := (presses - uint64(start)) / length
	remainder := (presses - uint64(start)) % length
	var trailing press.Tally
	for _, rec := range r.history[start:][:remainder] {
		trailing = trailing.Add(rec.tally)
	}
	if r.logger != nil {
		r.logger.Debug("cycle detected",
			zap.String("run", r.ID),
			zap.Int("start", start),
			zap.Uint64("length", length),
			zap.Uint64("full_cycles", fullCycles),
		)
	}
	return leading.Add(scale(cycleSum, fullCycles)).Add(trailing)
}

// scale multiplies a tally by n, panicking on overflow. Overflow here is an
// internal-invariant violation, not a recoverable condition.
func scale(t press.Tally, n uint64) press.Tally {
	scaled := press.Tally{Low: t.Low * n, High: t.High * n}
	if n != 0 && (scaled.Low/n != t.Low || scaled.High/n != t.High) {
		panic("tally overflow during extrapolation")
	}
	return scaled
}

// TotalPulses is the single entry point for callers: the cumulative low and
// high pulse counts after presses button presses of net.
func TotalPulses(net *pulse.Net, presses uint64) (low, high uint64) {
	total := New(press.New(net)).Total(presses)
	return total.Low, total.High
}
