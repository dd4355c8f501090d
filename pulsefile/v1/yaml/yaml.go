// Package yaml reads and writes pulse network definitions as YAML:
//
//	name: counter
//	modules:
//	  - name: broadcaster
//	    kind: broadcaster
//	    destinations: [a]
//	  - name: a
//	    kind: flip-flop
//	    destinations: [inv, con]
package yaml

import (
	"context"
	"io"

	"github.com/jt05610/pulse"
	"github.com/jt05610/pulse/pulsefile"
	"gopkg.in/yaml.v3"
)

var _ pulsefile.Service = (*Service)(nil)

type Service struct {
}

// Pulsefile is the on-disk document.
type Pulsefile struct {
	Name    string         `yaml:"name"`
	Modules []ModuleRecord `yaml:"modules"`
}

type ModuleRecord struct {
	Name         string   `yaml:"name"`
	Kind         string   `yaml:"kind"`
	Destinations []string `yaml:"destinations"`
}

func (f *Pulsefile) Net() (*pulse.Net, error) {
	defs := make([]pulse.Definition, len(f.Modules))
	for i, m := range f.Modules {
		kind, err := pulse.KindOf(m.Kind)
		if err != nil {
			return nil, err
		}
		defs[i] = pulse.Definition{Name: m.Name, Kind: kind, Destinations: m.Destinations}
	}
	return pulse.NewNet(f.Name, defs...)
}

func (s *Service) Load(_ context.Context, r io.Reader) (*pulse.Net, error) {
	var f Pulsefile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	return f.Net()
}

func (s *Service) Save(_ context.Context, w io.Writer, n *pulse.Net) error {
	f := Pulsefile{Name: n.Name}
	for _, m := range n.Modules() {
		f.Modules = append(f.Modules, ModuleRecord{
			Name:         m.Name(),
			Kind:         m.Kind().String(),
			Destinations: m.Destinations(),
		})
	}
	enc := yaml.NewEncoder(w)
	defer func() {
		_ = enc.Close()
	}()
	return enc.Encode(&f)
}

func (s *Service) Version() pulsefile.Version {
	return pulsefile.V1
}
