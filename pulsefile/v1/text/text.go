// Package text reads and writes the wire-list notation:
//
//	broadcaster -> a, b, c
//	%a -> b
//	&inv -> a
//
// % marks a flip-flop and & a conjunction; the broadcaster line carries no
// prefix.
package text

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jt05610/pulse"
	"github.com/jt05610/pulse/pulsefile"
)

var _ pulsefile.Service = (*Service)(nil)

type Service struct {
}

func parseLine(line string) (pulse.Definition, error) {
	parts := strings.Split(line, " -> ")
	if len(parts) != 2 {
		return pulse.Definition{}, fmt.Errorf("malformed line %q", line)
	}
	name, dests := parts[0], strings.Split(parts[1], ", ")
	switch {
	case name == pulse.BroadcasterName:
		return pulse.Definition{Name: name, Kind: pulse.BroadcasterModule, Destinations: dests}, nil
	case strings.HasPrefix(name, "%"):
		return pulse.Definition{Name: name[1:], Kind: pulse.FlipFlopModule, Destinations: dests}, nil
	case strings.HasPrefix(name, "&"):
		return pulse.Definition{Name: name[1:], Kind: pulse.ConjunctionModule, Destinations: dests}, nil
	}
	return pulse.Definition{}, fmt.Errorf("module %q has no kind prefix", name)
}

func (s *Service) Load(_ context.Context, r io.Reader) (*pulse.Net, error) {
	var defs []pulse.Definition
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		d, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// The notation carries no network name.
	return pulse.NewNet("pulse", defs...)
}

func prefix(k pulse.ModuleKind) string {
	switch k {
	case pulse.FlipFlopModule:
		return "%"
	case pulse.ConjunctionModule:
		return "&"
	}
	return ""
}

func (s *Service) Save(_ context.Context, w io.Writer, n *pulse.Net) error {
	for _, m := range n.Modules() {
		line := prefix(m.Kind()) + m.Name() + " -> " + strings.Join(m.Destinations(), ", ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Version() pulsefile.Version {
	return pulsefile.V1
}
