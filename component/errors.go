package component

import "fmt"

// AnimationIndexError reports a cursor that no longer points inside its
// frame sequence.
type AnimationIndexError struct {
	Anim  string
	Index int
	Count int
}

func (e *AnimationIndexError) Error() string {
	return fmt.Sprintf("animation %s: frame index %d out of range [0,%d)", e.Anim, e.Index, e.Count)
}
