// Package pulsefile defines the interface for loading and saving pulse
// network definitions. The core never parses text itself; a Service hands it
// fully-resolved definitions.
package pulsefile

import (
	"context"
	"io"

	"github.com/jt05610/pulse"
)

type Service interface {
	Load(ctx context.Context, r io.Reader) (*pulse.Net, error)
	Save(ctx context.Context, w io.Writer, n *pulse.Net) error
	Version() Version
}

type Version string

const (
	V1 Version = "v1"
)
