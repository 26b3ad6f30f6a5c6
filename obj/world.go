package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/spellslinger/prefabs"
)

// World is the per-tick context handed to every entity.
type World struct {
	Input  *Input
	Clock  Clock
	Bounds cp.BB
	Debug  bool
}

func NewWorld(input *Input, clock Clock, spec prefabs.WorldSpec) *World {
	return &World{
		Input:  input,
		Clock:  clock,
		Bounds: spec.Bounds(),
	}
}
