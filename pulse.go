package pulse

// Pulse is a binary signal carried on a wire between two modules.
type Pulse int

const (
	Low Pulse = iota
	High
)

func (p Pulse) String() string {
	if p == High {
		return "high"
	}
	return "low"
}
