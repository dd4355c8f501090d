// Package analysis inspects the wiring of a pulse network: adjacency,
// fan-in and fan-out, dangling sinks, and reachability from the broadcaster.
package analysis

import (
	"sort"

	"github.com/jt05610/pulse"
	"gonum.org/v1/gonum/mat"
)

type Net struct {
	*pulse.Net
}

// Names returns the sorted union of module names and sink destinations. The
// returned slice indexes the adjacency matrix.
func (net *Net) Names() []string {
	seen := make(map[string]bool)
	for _, m := range net.Modules() {
		seen[m.Name()] = true
		for _, d := range m.Destinations() {
			seen[d] = true
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AdjacencyMatrix returns the 0/1 wiring matrix over Names: entry (i, j)
// counts the wires from names[i] to names[j]. Duplicate destinations are
// legal and counted.
func (net *Net) AdjacencyMatrix() (*mat.Dense, []string) {
	names := net.Names()
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}
	d := mat.NewDense(len(names), len(names), nil)
	for _, m := range net.Modules() {
		i := index[m.Name()]
		for _, dest := range m.Destinations() {
			j := index[dest]
			d.Set(i, j, d.At(i, j)+1)
		}
	}
	return d, names
}

// FanIn counts the wires into the named module or sink.
func (net *Net) FanIn(name string) int {
	a, names := net.AdjacencyMatrix()
	for j, n := range names {
		if n != name {
			continue
		}
		col := mat.Col(nil, j, a)
		return int(mat.Sum(mat.NewVecDense(len(col), col)))
	}
	return 0
}

// FanOut counts the wires out of the named module.
func (net *Net) FanOut(name string) int {
	m := net.Module(name)
	if m == nil {
		return 0
	}
	return len(m.Destinations())
}

// Sinks returns destinations that name no module, sorted. Pulses delivered
// to them are absorbed.
func (net *Net) Sinks() []string {
	seen := make(map[string]bool)
	for _, m := range net.Modules() {
		for _, d := range m.Destinations() {
			if net.Module(d) == nil {
				seen[d] = true
			}
		}
	}
	sinks := make([]string, 0, len(seen))
	for s := range seen {
		sinks = append(sinks, s)
	}
	sort.Strings(sinks)
	return sinks
}

// Reachable returns the names reachable from the broadcaster, sinks
// included, sorted. The broadcaster itself is always reachable.
func (net *Net) Reachable() []string {
	visited := map[string]bool{pulse.BroadcasterName: true}
	frontier := []string{pulse.BroadcasterName}
	for len(frontier) > 0 {
		name := frontier[0]
		frontier = frontier[1:]
		m := net.Module(name)
		if m == nil {
			continue
		}
		for _, d := range m.Destinations() {
			if !visited[d] {
				visited[d] = true
				frontier = append(frontier, d)
			}
		}
	}
	names := make([]string, 0, len(visited))
	for n := range visited {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
