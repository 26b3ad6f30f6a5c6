package obj

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spellslinger/assets"
	"github.com/milk9111/spellslinger/component"
	"github.com/milk9111/spellslinger/prefabs"
)

var testFrameCounts = map[component.MotionState]int{
	component.StateIdle:   4,
	component.StateRun:    6,
	component.StateJump:   3,
	component.StateAttack: 8,
	component.StateDeath:  5,
}

func makeFrames(n, w, h int) []*ebiten.Image {
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		frames[i] = ebiten.NewImage(w, h)
	}
	return frames
}

func testLibrary(t *testing.T) *assets.Library {
	t.Helper()
	actor := make(map[component.MotionState][]*ebiten.Image)
	for s, n := range testFrameCounts {
		actor[s] = makeFrames(n, 64, 80)
	}
	lib, err := assets.NewLibrary(actor, makeFrames(5, 16, 32))
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	return lib
}

func testWorld() (*World, *TickClock) {
	clock := NewTickClock(60)
	return NewWorld(NewInput(), clock, prefabs.DefaultWorldSpec()), clock
}

func newTestActor(t *testing.T, x, y float64) *Actor {
	t.Helper()
	a, err := NewActor(x, y, testLibrary(t), prefabs.DefaultActorSpec(), prefabs.DefaultProjectileSpec())
	if err != nil {
		t.Fatalf("NewActor: %v", err)
	}
	return a
}

// tick runs one frame of the actor the way the game loop does.
func tick(t *testing.T, a *Actor, w *World) {
	t.Helper()
	a.HandleInput(w)
	if err := a.Update(w); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

// ticksToWrap counts how many cursor steps it takes to run off the end of a
// frameCount-long sequence, using the same float arithmetic as the cursor.
func ticksToWrap(step float64, frameCount int) int {
	pos, n := 0.0, 0
	for pos < float64(frameCount) {
		pos += step
		n++
	}
	return n
}
