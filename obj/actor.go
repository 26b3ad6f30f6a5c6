package obj

import (
	"errors"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/spellslinger/assets"
	"github.com/milk9111/spellslinger/common"
	"github.com/milk9111/spellslinger/component"
	"github.com/milk9111/spellslinger/prefabs"
	"golang.org/x/image/colornames"
)

// Actor is the player-controlled wizard. The game loop calls HandleInput,
// Update and Draw once per tick.
type Actor struct {
	pos         cp.Vector
	facingRight bool

	state     component.MotionState
	cursor    component.Cursor
	attacking bool

	jumping   bool
	jumpCount int

	health component.Health

	spec prefabs.ActorSpec
	bolt prefabs.ProjectileSpec
	lib  *assets.Library

	frame *ebiten.Image
	rect  common.Rect
}

func NewActor(x, y float64, lib *assets.Library, spec prefabs.ActorSpec, bolt prefabs.ProjectileSpec) (*Actor, error) {
	if lib == nil {
		return nil, errors.New("obj: actor needs an asset library")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	a := &Actor{
		pos:         cp.Vector{X: x, Y: y},
		facingRight: true,
		state:       component.StateIdle,
		cursor:      component.NewCursor(spec.AnimStep),
		jumpCount:   spec.JumpCount,
		health:      component.NewHealth(spec.MaxHealth),
		spec:        spec,
		bolt:        bolt,
		lib:         lib,
	}
	frame, err := a.cursor.Frame(a.state.String(), lib.Actor(a.state))
	if err != nil {
		return nil, err
	}
	a.setFrame(frame)
	return a, nil
}

func (a *Actor) Position() cp.Vector          { return a.pos }
func (a *Actor) FacingRight() bool            { return a.facingRight }
func (a *Actor) State() component.MotionState { return a.state }
func (a *Actor) Attacking() bool              { return a.attacking }
func (a *Actor) Jumping() bool                { return a.jumping }
func (a *Actor) JumpCount() int               { return a.jumpCount }
func (a *Actor) Cursor() component.Cursor     { return a.cursor }
func (a *Actor) Rect() common.Rect            { return a.rect }
func (a *Actor) Health() component.Health     { return a.health }

// HandleInput applies movement, the jump trigger and jump physics. Nothing
// here runs while an attack animation is playing.
func (a *Actor) HandleInput(w *World) {
	in := w.Input

	if in.MouseLeft && !a.attacking {
		a.beginAttack(w)
	}
	if a.attacking {
		return
	}

	switch {
	case in.Left:
		a.pos.X -= a.spec.Speed
		a.facingRight = false
		a.setState(w, component.StateRun)
	case in.Right:
		a.pos.X += a.spec.Speed
		a.facingRight = true
		a.setState(w, component.StateRun)
	default:
		a.setState(w, component.StateIdle)
	}

	// jumpCount is not reset here; landing or finishing the arc restores it.
	if !a.jumping && in.Up {
		a.jumping = true
	}
	if a.jumping {
		a.stepJump()
	}
	if a.jumping {
		a.setState(w, component.StateJump)
	}
}

// stepJump moves one tick along the jump arc: up while jumpCount > 0, down
// once it goes negative.
func (a *Actor) stepJump() {
	if a.jumpCount >= -a.spec.JumpCount {
		n := float64(a.jumpCount)
		a.pos.Y -= n * n * a.spec.JumpScale * float64(common.Sign(a.jumpCount))
		a.jumpCount--
		return
	}
	a.jumping = false
	a.jumpCount = a.spec.JumpCount
}

// Update advances the animation and then clamps the actor to the ground.
func (a *Actor) Update(w *World) error {
	if err := a.updateAnimation(w); err != nil {
		return err
	}

	if a.pos.Y >= a.spec.GroundY {
		a.pos.Y = a.spec.GroundY
		a.jumping = false
		a.jumpCount = a.spec.JumpCount
	}
	return nil
}

func (a *Actor) updateAnimation(w *World) error {
	if a.attacking {
		// attacks face the cursor, not the last movement direction
		a.facingRight = w.Input.MouseX >= a.pos.X
		if a.cursor.Advance(len(a.lib.Actor(component.StateAttack))) {
			a.attacking = false
		}
	} else {
		a.cursor.Advance(len(a.lib.Actor(a.state)))
	}

	frame, err := a.cursor.Frame(a.state.String(), a.lib.Actor(a.state))
	if err != nil {
		return err
	}
	a.setFrame(frame)
	return nil
}

func (a *Actor) setFrame(frame *ebiten.Image) {
	a.frame = frame
	b := frame.Bounds()
	a.rect = common.RectCentered(a.pos.X, a.pos.Y, float64(b.Dx()), float64(b.Dy()))
}

// HandleAttack starts the attack animation and returns a bolt aimed from the
// actor's position at (targetX, targetY). The caller owns the bolt.
func (a *Actor) HandleAttack(w *World, targetX, targetY float64) *Projectile {
	a.beginAttack(w)
	return NewProjectile(a.pos, cp.Vector{X: targetX, Y: targetY}, a.lib.Projectile(), a.bolt, w.Clock.Now())
}

// beginAttack enters the attack state unless one is already playing.
func (a *Actor) beginAttack(w *World) {
	if a.attacking {
		return
	}
	a.attacking = true
	a.setState(w, component.StateAttack)
	a.cursor.Reset()
}

func (a *Actor) setState(w *World, s component.MotionState) {
	if a.state == s {
		return
	}
	if w != nil && w.Debug {
		log.Printf("%s: %s -> %s", a.spec.Name, a.state, s)
	}
	a.state = s
}

// ApplySpec swaps in new tuning values. Frame directories are only read at
// startup, so changes to Animations have no effect here.
func (a *Actor) ApplySpec(spec prefabs.ActorSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if !a.jumping {
		a.jumpCount = spec.JumpCount
	}
	a.cursor.Step = spec.AnimStep
	a.health.Max = spec.MaxHealth
	if a.health.Current > a.health.Max {
		a.health.Current = a.health.Max
	}
	a.spec = spec
	return nil
}

// SetProjectileSpec changes the tuning of bolts fired from now on.
func (a *Actor) SetProjectileSpec(bolt prefabs.ProjectileSpec) {
	a.bolt = bolt
}

// Hitbox is the debug box drawn around the actor: a fraction of the sprite
// rect, centered on it.
func (a *Actor) Hitbox() common.Rect {
	w := math.Floor(a.rect.Width / a.spec.Hitbox.WidthDivisor)
	h := math.Floor(a.rect.Height / a.spec.Hitbox.HeightDivisor)
	cx, cy := a.rect.Center()
	return common.Rect{
		X:      cx - math.Floor(w/2),
		Y:      cy - math.Floor(h/2),
		Width:  w,
		Height: h,
	}
}

func (a *Actor) hitboxColor() color.Color {
	if c := a.spec.Hitbox.Color; c != nil && c.Color != nil {
		return c.Color
	}
	return colornames.Red
}

func (a *Actor) Draw(screen *ebiten.Image) {
	if a.frame == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if !a.facingRight {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(a.frame.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(math.Round(a.rect.X), math.Round(a.rect.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(a.frame, op)

	hb := a.Hitbox()
	stroke := a.spec.Hitbox.StrokeWidth
	if stroke <= 0 {
		stroke = 2
	}
	vector.StrokeRect(screen, float32(hb.X), float32(hb.Y), float32(hb.Width), float32(hb.Height), stroke, a.hitboxColor(), false)
}
