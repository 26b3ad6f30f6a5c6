package obj

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/spellslinger/common"
	"github.com/milk9111/spellslinger/component"
	"github.com/milk9111/spellslinger/prefabs"
)

// Projectile is a bolt that waits out its fire delay at the origin and then
// flies in a straight line until it leaves the world.
type Projectile struct {
	origin   cp.Vector
	target   cp.Vector
	pos      cp.Vector
	angle    float64
	velocity cp.Vector

	start   time.Duration
	delay   time.Duration
	started bool
	removed bool

	cursor component.Cursor
	frames []*ebiten.Image
	frame  *ebiten.Image
	rect   common.Rect

	spec prefabs.ProjectileSpec
}

// NewProjectile creates a bolt at origin aimed at target. now is the clock
// reading the fire delay is measured from.
func NewProjectile(origin, target cp.Vector, frames []*ebiten.Image, spec prefabs.ProjectileSpec, now time.Duration) *Projectile {
	angle := math.Atan2(target.Y-origin.Y, target.X-origin.X)
	p := &Projectile{
		origin:   origin,
		target:   target,
		pos:      origin,
		angle:    angle,
		velocity: cp.ForAngle(angle).Mult(spec.Speed),
		start:    now,
		delay:    spec.Delay(),
		cursor:   component.NewCursor(spec.AnimStep),
		frames:   frames,
		spec:     spec,
	}
	if len(frames) > 0 {
		p.frame = frames[0]
		b := p.frame.Bounds()
		p.rect = common.RectCentered(origin.X, origin.Y, float64(b.Dx()), float64(b.Dy()))
	} else {
		p.rect = common.RectCentered(origin.X, origin.Y, spec.Width, spec.Height)
	}
	return p
}

func (p *Projectile) Position() cp.Vector { return p.pos }
func (p *Projectile) Origin() cp.Vector   { return p.origin }
func (p *Projectile) Target() cp.Vector   { return p.target }
func (p *Projectile) Angle() float64      { return p.angle }
func (p *Projectile) Velocity() cp.Vector { return p.velocity }
func (p *Projectile) Started() bool       { return p.started }
func (p *Projectile) Removed() bool       { return p.removed }
func (p *Projectile) Rect() common.Rect   { return p.rect }

// Visible reports whether Draw renders anything.
func (p *Projectile) Visible() bool { return p.started && !p.removed }

// RotationDegrees is the counter-clockwise rotation applied to the sprite so
// that it lines up with the direction of travel.
func (p *Projectile) RotationDegrees() float64 {
	return -p.angle*180/math.Pi + 90
}

func (p *Projectile) Update(w *World) error {
	if p.removed {
		return nil
	}
	if !p.started && w.Clock.Now()-p.start >= p.delay {
		p.started = true
	}
	if !p.started {
		return nil
	}

	p.pos = p.pos.Add(p.velocity)

	p.cursor.Advance(len(p.frames))
	frame, err := p.cursor.Frame(p.spec.Name, p.frames)
	if err != nil {
		return err
	}
	p.frame = frame
	b := frame.Bounds()
	rw, rh := common.RotatedBounds(float64(b.Dx()), float64(b.Dy()), p.RotationDegrees())
	p.rect = common.RectCentered(p.pos.X, p.pos.Y, rw, rh)

	if !w.Bounds.ContainsVect(p.pos) {
		p.removed = true
	}
	return nil
}

func (p *Projectile) Draw(screen *ebiten.Image) {
	if !p.Visible() || p.frame == nil {
		return
	}
	b := p.frame.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	// ebiten rotates clockwise in screen space
	op.GeoM.Rotate(-p.RotationDegrees() * math.Pi / 180)
	op.GeoM.Translate(math.Round(p.pos.X), math.Round(p.pos.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(p.frame, op)
}

// ProjectileSet is the loop-side collection of live bolts. Removed bolts are
// dropped during Update.
type ProjectileSet struct {
	items []*Projectile
}

func (s *ProjectileSet) Add(p *Projectile) {
	if p == nil {
		return
	}
	s.items = append(s.items, p)
}

func (s *ProjectileSet) Len() int { return len(s.items) }

func (s *ProjectileSet) Each(fn func(p *Projectile)) {
	for _, p := range s.items {
		fn(p)
	}
}

// Update advances every bolt and compacts the removed ones out in place.
func (s *ProjectileSet) Update(w *World) error {
	writeIdx := 0
	for i, p := range s.items {
		if err := p.Update(w); err != nil {
			// keep the bolts not yet visited
			n := writeIdx + copy(s.items[writeIdx:], s.items[i:])
			clear(s.items[n:])
			s.items = s.items[:n]
			return fmt.Errorf("obj: update projectile %d: %w", i, err)
		}
		if p.Removed() {
			if w.Debug {
				log.Printf("%s removed at (%.1f, %.1f)", p.spec.Name, p.pos.X, p.pos.Y)
			}
			continue
		}
		s.items[writeIdx] = p
		writeIdx++
	}
	clear(s.items[writeIdx:])
	s.items = s.items[:writeIdx]
	return nil
}

func (s *ProjectileSet) Draw(screen *ebiten.Image) {
	for _, p := range s.items {
		p.Draw(screen)
	}
}
