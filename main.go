package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spellslinger/assets"
	"github.com/milk9111/spellslinger/common"
	"github.com/milk9111/spellslinger/prefabs"
)

func main() {
	assetDir := flag.String("assets", "assets", "directory holding the animation frame folders")
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for prefab overrides")
	debug := flag.Bool("debug", false, "enable debug mode (logging, HUD, prefab hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	prefabs.Dir = *prefabDir

	actorSpec, err := prefabs.LoadActorSpec()
	if err != nil {
		log.Fatal(err)
	}
	boltSpec, err := prefabs.LoadProjectileSpec()
	if err != nil {
		log.Fatal(err)
	}
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Fatal(err)
	}

	lib, err := assets.LoadLibrary(os.DirFS(*assetDir), actorSpec, boltSpec)
	if err != nil {
		log.Fatalf("load animations from %s: %v", *assetDir, err)
	}

	game, err := NewGame(lib, actorSpec, boltSpec, worldSpec, *debug)
	if err != nil {
		log.Fatal(err)
	}

	if *debug {
		w, err := prefabs.NewWatcher(*prefabDir)
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			defer w.Close()
			game.WatchPrefabs(w)
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(int(worldSpec.Width), int(worldSpec.Height))
	ebiten.SetWindowTitle("spellslinger")
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
