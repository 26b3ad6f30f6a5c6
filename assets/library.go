package assets

import (
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spellslinger/component"
	"github.com/milk9111/spellslinger/prefabs"
)

// Library holds every frame sequence the game needs. It is built once at
// startup and shared read-only by all entities.
type Library struct {
	actor      [component.MotionStateCount][]*ebiten.Image
	projectile []*ebiten.Image
}

// LoadLibrary loads one frame sequence per motion state plus the projectile
// frames. Any missing or empty directory fails the whole load.
func LoadLibrary(fsys fs.FS, actor prefabs.ActorSpec, bolt prefabs.ProjectileSpec) (*Library, error) {
	lib := &Library{}
	for _, s := range component.MotionStates() {
		dir, ok := actor.Animations[s.String()]
		if !ok || dir == "" {
			return nil, &LoadError{Dir: s.String(), Err: fmt.Errorf("no directory configured for %s %q", actor.Name, s)}
		}
		frames, err := LoadFrames(fsys, dir)
		if err != nil {
			return nil, err
		}
		lib.actor[s] = frames
	}

	frames, err := LoadFrames(fsys, bolt.Frames)
	if err != nil {
		return nil, err
	}
	lib.projectile = frames
	return lib, nil
}

// NewLibrary builds a library from frames already in memory. Every state
// must be present.
func NewLibrary(actor map[component.MotionState][]*ebiten.Image, projectile []*ebiten.Image) (*Library, error) {
	lib := &Library{projectile: projectile}
	for _, s := range component.MotionStates() {
		frames := actor[s]
		if len(frames) == 0 {
			return nil, &LoadError{Dir: s.String(), Err: ErrNoFrames}
		}
		lib.actor[s] = frames
	}
	if len(projectile) == 0 {
		return nil, &LoadError{Dir: "projectile", Err: ErrNoFrames}
	}
	return lib, nil
}

// Actor returns the frames for state s.
func (l *Library) Actor(s component.MotionState) []*ebiten.Image {
	if l == nil || !s.Valid() {
		return nil
	}
	return l.actor[s]
}

// Projectile returns the projectile frames.
func (l *Library) Projectile() []*ebiten.Image {
	if l == nil {
		return nil
	}
	return l.projectile
}
