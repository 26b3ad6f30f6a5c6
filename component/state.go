package component

import "fmt"

// MotionState is the mutually exclusive mode that selects an actor's frame
// sequence and the physics rules applied to it.
type MotionState int

const (
	StateIdle MotionState = iota
	StateRun
	StateJump
	StateAttack
	StateDeath

	MotionStateCount int = iota
)

var motionStateNames = [MotionStateCount]string{
	StateIdle:   "idle",
	StateRun:    "run",
	StateJump:   "jump",
	StateAttack: "attack",
	StateDeath:  "death",
}

func (s MotionState) String() string {
	if !s.Valid() {
		return fmt.Sprintf("MotionState(%d)", int(s))
	}
	return motionStateNames[s]
}

func (s MotionState) Valid() bool {
	return s >= 0 && int(s) < MotionStateCount
}

// MotionStates lists every state in declaration order.
func MotionStates() []MotionState {
	out := make([]MotionState, MotionStateCount)
	for i := range out {
		out[i] = MotionState(i)
	}
	return out
}
