package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/streetrunner/events"
	"github.com/milk9111/streetrunner/prefabs"
	"github.com/milk9111/streetrunner/sim"
	"github.com/milk9111/streetrunner/world"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	session *sim.Session
	cfg     sim.Config
	watcher *prefabs.Watcher
	debug   bool
	frames  int
}

func NewGame(cfg sim.Config, watcher *prefabs.Watcher, debug bool) *Game {
	g := &Game{
		session: sim.NewSession(cfg, newKeyboard()),
		cfg:     cfg,
		watcher: watcher,
		debug:   debug,
	}
	g.subscribe()
	return g
}

// subscribe attaches the game's own listeners. The bus is cleared on every
// restart, so this runs again after each one.
func (g *Game) subscribe() {
	if !g.debug {
		return
	}
	logBeams(g.session.Bus)
}

func (g *Game) Update() error {
	g.frames++
	g.reloadPrefabs()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Restart()
		g.subscribe()
	}
	g.toggleEffect(ebiten.KeyM, world.EffectInManhole)
	g.toggleEffect(ebiten.KeyC, world.EffectOnCrossing)

	g.session.Update(1 / float64(ebiten.TPS()))
	return nil
}

// toggleEffect flips an effect for manual testing; in a full game these are
// owned by manholes and crossings.
func (g *Game) toggleEffect(key ebiten.Key, e world.Effect) {
	if !g.debug || !inpututil.IsKeyJustPressed(key) {
		return
	}
	p := g.session.Store.Player
	if p.HasActiveEffect(e) {
		p.RemoveEffect(e)
	} else {
		p.AddEffect(e)
	}
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefabs: watch: %v", err)
	default:
	}
	changed := g.watcher.Changed()
	if len(changed) == 0 {
		return
	}
	for _, name := range changed {
		if err := g.cfg.Reload(name); err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			continue
		}
		log.Printf("prefabs: reloaded %s", name)
	}
	g.session.Apply(g.cfg)
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.session)
	ebitenutil.DebugPrint(screen, g.status())
}

func (g *Game) status() string {
	s := g.session
	p := s.Store.Player
	var beam string
	if road, ok := s.Spawner.Active(); ok {
		beam = fmt.Sprintf("on %s (%.1fs)", road, s.Spawner.Beam().Remaining)
	} else {
		beam = fmt.Sprintf("idle (next in %.1fs)", s.Spawner.SpawnIn())
	}
	return fmt.Sprintf("FPS: %.1f  t=%.1fs  roads=%d  beam %s\nplayer x=%.1f z=%.1f cam=%.1f effects=%v",
		ebiten.ActualFPS(), s.Elapsed(), len(s.Store.Roads()), beam,
		p.Position.X, p.Position.Z, p.CameraDistance, p.Effects())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func logBeams(bus *events.Bus) {
	bus.On(events.TopicBeamShown, events.Handle(func(b events.BeamTransition) {
		log.Printf("beam: on %s at (%.1f, %.1f)", b.RoadID, b.Position.X, b.Position.Z)
	}))
	bus.On(events.TopicBeamHidden, events.Handle(func(b events.BeamTransition) {
		log.Printf("beam: off %s", b.RoadID)
	}))
}
