package pulse

import "fmt"

// Event is a pulse in flight from Source to Dest. Events only exist inside
// the queue while a press is draining.
type Event struct {
	Source string
	Dest   string
	Pulse  Pulse
}

func (e Event) String() string {
	return fmt.Sprintf("%s -%s-> %s", e.Source, e.Pulse, e.Dest)
}
