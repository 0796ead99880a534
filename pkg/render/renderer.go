// Package render presents simulation snapshots. The core never draws;
// renderers consume the (position, orientation, active) transforms and
// the fuel scalar exposed by the engine.
package render

import (
	"github.com/opd-ai/go-salvage/pkg/engine"
)

// Renderer defines the interface for presenting a frame's state.
type Renderer interface {
	Render(snap engine.Snapshot) error
}
