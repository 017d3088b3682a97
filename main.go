package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/streetrunner/prefabs"
	"github.com/milk9111/streetrunner/sim"
)

func main() {
	seed := flag.Uint64("seed", 1, "random seed for beam timing and placement")
	debug := flag.Bool("debug", false, "log beam transitions")
	headless := flag.Bool("headless", false, "step the simulation without opening a window")
	frames := flag.Int("frames", 60*60, "frames to simulate in headless mode")
	hold := flag.String("hold", "", "comma separated keys held for the whole headless run, e.g. w,d")
	watch := flag.Bool("watch", false, "reload prefabs from ./prefabs when they change")
	flag.Parse()

	cfg := sim.LoadConfig(*seed)

	if *headless {
		keys := newHeldKeys(strings.Split(*hold, ","))
		runHeadless(sim.NewSession(cfg, keys), *frames, *debug)
		return
	}

	var watcher *prefabs.Watcher
	if *watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("streetrunner")

	game := NewGame(cfg, watcher, *debug)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
