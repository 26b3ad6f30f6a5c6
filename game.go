package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/spellslinger/assets"
	"github.com/milk9111/spellslinger/common"
	"github.com/milk9111/spellslinger/obj"
	"github.com/milk9111/spellslinger/prefabs"
	"golang.org/x/image/colornames"
)

const (
	spawnX = 100
	spawnY = common.GroundY
)

type Game struct {
	frames int
	paused bool
	quit   bool

	input  *obj.Input
	clock  *obj.TickClock
	world  *obj.World
	player *obj.Actor
	bolts  obj.ProjectileSet

	worldSpec prefabs.WorldSpec
	watcher   *prefabs.Watcher
	pauseUI   *ebitenui.UI
}

func NewGame(lib *assets.Library, actor prefabs.ActorSpec, bolt prefabs.ProjectileSpec, world prefabs.WorldSpec, debug bool) (*Game, error) {
	player, err := obj.NewActor(spawnX, spawnY, lib, actor, bolt)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	input := obj.NewInput()
	clock := obj.NewTickClock(common.TPS)
	w := obj.NewWorld(input, clock, world)
	w.Debug = debug

	return &Game{
		input:     input,
		clock:     clock,
		world:     w,
		player:    player,
		worldSpec: world,
	}, nil
}

// WatchPrefabs hot-reloads tuning values whenever a prefab file changes.
func (g *Game) WatchPrefabs(w *prefabs.Watcher) {
	g.watcher = w
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()

	if g.watcher != nil {
		g.reloadPrefabs()
	}

	if err := g.step(); err != nil {
		return err
	}
	if g.paused {
		if g.pauseUI == nil {
			g.pauseUI = NewPauseUI(g)
		}
		g.pauseUI.Update()
	}
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// step runs one simulation tick against the current input snapshot.
func (g *Game) step() error {
	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	g.clock.Tick()

	if g.input.AttackPressed && !g.player.Attacking() {
		bolt := g.player.HandleAttack(g.world, g.input.MouseX, g.input.MouseY)
		g.bolts.Add(bolt)
		if g.world.Debug {
			log.Printf("bolt fired at (%.0f, %.0f), angle %.1f", g.input.MouseX, g.input.MouseY, bolt.RotationDegrees())
		}
	}

	g.player.HandleInput(g.world)
	if err := g.player.Update(g.world); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return g.bolts.Update(g.world)
}

func (g *Game) reloadPrefabs() {
	for _, name := range g.watcher.Drain() {
		var err error
		switch name {
		case prefabs.ActorFile:
			var spec prefabs.ActorSpec
			if spec, err = prefabs.LoadActorSpec(); err == nil {
				err = g.player.ApplySpec(spec)
			}
		case prefabs.ProjectileFile:
			var spec prefabs.ProjectileSpec
			if spec, err = prefabs.LoadProjectileSpec(); err == nil {
				g.player.SetProjectileSpec(spec)
			}
		case prefabs.WorldFile:
			var spec prefabs.WorldSpec
			if spec, err = prefabs.LoadWorldSpec(); err == nil {
				g.worldSpec = spec
				g.world.Bounds = spec.Bounds()
				// rebuilt at the new size on the next pause
				g.pauseUI = nil
			}
		default:
			continue
		}
		if err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			continue
		}
		log.Printf("prefabs: reloaded %s", name)
	}

	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefabs: watch: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	g.player.Draw(screen)
	g.bolts.Draw(screen)

	msg := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())
	if g.world.Debug {
		pos := g.player.Position()
		msg += fmt.Sprintf("\nState: %s (%.0f, %.0f) jumping: %v bolts: %d hp: %d/%d",
			g.player.State(), pos.X, pos.Y, g.player.Jumping(), g.bolts.Len(),
			g.player.Health().Current, g.player.Health().Max)
	}
	ebitenutil.DebugPrint(screen, msg)

	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.worldSpec.Width, g.worldSpec.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
