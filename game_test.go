package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spellslinger/assets"
	"github.com/milk9111/spellslinger/component"
	"github.com/milk9111/spellslinger/prefabs"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	actor := make(map[component.MotionState][]*ebiten.Image)
	for _, s := range component.MotionStates() {
		actor[s] = []*ebiten.Image{ebiten.NewImage(32, 48), ebiten.NewImage(32, 48)}
	}
	lib, err := assets.NewLibrary(actor, []*ebiten.Image{ebiten.NewImage(8, 8)})
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	g, err := NewGame(lib, prefabs.DefaultActorSpec(), prefabs.DefaultProjectileSpec(), prefabs.DefaultWorldSpec(), false)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestGameClickFiresOneBolt(t *testing.T) {
	g := newTestGame(t)

	g.input.AttackPressed = true
	g.input.MouseLeft = true
	g.input.MouseX, g.input.MouseY = 1400, 790
	if err := g.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g.bolts.Len() != 1 {
		t.Fatalf("bolts = %d, want 1", g.bolts.Len())
	}
	if !g.player.Attacking() {
		t.Fatalf("player should be attacking")
	}

	// a click during the attack does not fire again
	if err := g.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g.bolts.Len() != 1 {
		t.Fatalf("bolts = %d, want 1 while attacking", g.bolts.Len())
	}

	g.input.AttackPressed = false
	g.input.MouseLeft = false
	for i := 0; i < 600 && g.bolts.Len() > 0; i++ {
		if err := g.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if g.bolts.Len() != 0 {
		t.Fatalf("bolt should leave the world and be dropped")
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)

	g.input.PausePressed = true
	if err := g.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	g.input.PausePressed = false
	if !g.paused {
		t.Fatalf("game should be paused")
	}

	now := g.clock.Now()
	g.input.Right = true
	for i := 0; i < 10; i++ {
		if err := g.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if g.clock.Now() != now {
		t.Fatalf("clock advanced while paused")
	}
	if g.player.Position().X != spawnX {
		t.Fatalf("player moved while paused: x=%v", g.player.Position().X)
	}

	g.input.PausePressed = true
	if err := g.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g.paused || g.player.Position().X != spawnX+5 {
		t.Fatalf("unpause should resume on the same tick: paused=%v x=%v", g.paused, g.player.Position().X)
	}
}

func TestGameReloadsActorSpec(t *testing.T) {
	dir := t.TempDir()
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = "prefabs" })

	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	g := newTestGame(t)
	g.WatchPrefabs(w)

	data, err := prefabs.Load(prefabs.ActorFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tuned := strings.Replace(string(data), "speed: 5\n", "speed: 9\n", 1)
	if err := os.WriteFile(filepath.Join(dir, prefabs.ActorFile), []byte(tuned), 0o644); err != nil {
		t.Fatal(err)
	}

	g.input.Right = true
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		g.reloadPrefabs()
		before := g.player.Position().X
		if err := g.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
		if g.player.Position().X-before == 9 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("speed change was never picked up")
}

func TestGameWorldReloadResizesPauseMenu(t *testing.T) {
	dir := t.TempDir()
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = "prefabs" })

	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	g := newTestGame(t)
	g.WatchPrefabs(w)
	g.pauseUI = &ebitenui.UI{}

	if mw, mh := pauseMenuSize(g.worldSpec); mw != 375 || mh != 225 {
		t.Fatalf("menu size = %dx%d, want 375x225", mw, mh)
	}

	if err := os.WriteFile(filepath.Join(dir, prefabs.WorldFile), []byte("width: 1000\nheight: 600\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) && g.worldSpec.Width != 1000 {
		g.reloadPrefabs()
		time.Sleep(10 * time.Millisecond)
	}
	if g.worldSpec.Width != 1000 || g.worldSpec.Height != 600 {
		t.Fatalf("world change was never picked up: %+v", g.worldSpec)
	}
	if g.world.Bounds.R != 1000 || g.world.Bounds.T != 600 {
		t.Fatalf("bounds = %+v, want 1000x600", g.world.Bounds)
	}
	if g.pauseUI != nil {
		t.Fatalf("pause menu should be rebuilt after a world reload")
	}
	if mw, mh := pauseMenuSize(g.worldSpec); mw != 250 || mh != 150 {
		t.Fatalf("menu size = %dx%d, want 250x150", mw, mh)
	}
}
