package sim

import (
	"log"
	"math/rand/v2"

	"github.com/milk9111/streetrunner/course"
	"github.com/milk9111/streetrunner/events"
	"github.com/milk9111/streetrunner/hazard"
	"github.com/milk9111/streetrunner/player"
	"github.com/milk9111/streetrunner/prefabs"
	"github.com/milk9111/streetrunner/scene"
	"github.com/milk9111/streetrunner/world"
)

// Config carries everything a session needs to build its managers.
type Config struct {
	Seed   uint64
	Beam   hazard.Config
	Player player.Config
	Course course.Config
}

func DefaultConfig() Config {
	return Config{
		Beam:   hazard.DefaultConfig(),
		Player: player.DefaultConfig(),
		Course: course.DefaultConfig(),
	}
}

// LoadConfig reads every prefab. A prefab that fails to load is logged and
// its defaults are used.
func LoadConfig(seed uint64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	for _, name := range []string{prefabs.LightBeamFile, prefabs.PlayerFile, prefabs.CourseFile} {
		if err := cfg.Reload(name); err != nil {
			log.Printf("sim: using defaults: %v", err)
		}
	}
	return cfg
}

// Reload refreshes the part of cfg backed by the named prefab file.
func (c *Config) Reload(name string) error {
	switch name {
	case prefabs.LightBeamFile:
		spec, err := prefabs.LoadLightBeamSpec()
		if err != nil {
			return err
		}
		c.Beam = hazard.ConfigFromSpec(spec)
	case prefabs.PlayerFile:
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			return err
		}
		c.Player = player.ConfigFromSpec(spec)
	case prefabs.CourseFile:
		spec, err := prefabs.LoadCourseSpec()
		if err != nil {
			return err
		}
		c.Course = course.ConfigFromSpec(spec)
	}
	return nil
}

// Session is one run of the game. All of its state is owned by the goroutine
// that calls Update.
type Session struct {
	cfg  Config
	keys player.KeyState
	rng  *rand.Rand

	Bus        *events.Bus
	Store      *world.Store
	Graph      *scene.Set
	Course     *course.Course
	Spawner    *hazard.Spawner
	Controller *player.Controller

	scheduler *Scheduler
	elapsed   float64
	restarts  int
}

func NewSession(cfg Config, keys player.KeyState) *Session {
	s := &Session{
		cfg:   cfg,
		keys:  keys,
		rng:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		Bus:   events.NewBus(),
		Graph: scene.NewSet(),
	}
	s.build(nil)
	return s
}

// build wires a fresh world around p, or around a new player when p is nil.
func (s *Session) build(p *world.Player) {
	s.Store = world.NewStore(s.Bus, p, world.Bounds{})
	s.Controller = player.NewController(s.cfg.Player, s.Store, s.Graph, s.keys)
	if s.Store.Player == nil {
		s.Store.Player = s.Controller.NewPlayer()
	}
	s.Graph.Add(s.Store.Player.Node)

	s.Spawner = hazard.NewSpawner(s.cfg.Beam, s.Store, s.Graph, s.Bus, s.rng)
	s.Course = course.New(s.cfg.Course, s.Store, s.Bus)
	s.Course.Start()

	s.scheduler = NewScheduler(s.Course, s.Spawner, s.Controller)
	s.elapsed = 0
}

func (s *Session) Update(dt float64) {
	s.elapsed += dt
	s.scheduler.Update(dt)
}

// Restart tears the session down and builds a fresh world. Every bus
// subscription is dropped, including ones registered by callers.
func (s *Session) Restart() {
	s.Controller.Reset()
	fresh := s.Store.Player
	s.Spawner.Close()
	s.Bus.Clear()
	s.restarts++
	s.build(fresh)
}

// Apply pushes new tuning into the running managers.
func (s *Session) Apply(cfg Config) {
	s.cfg.Beam = cfg.Beam
	s.cfg.Player = cfg.Player
	s.cfg.Course = cfg.Course
	s.Spawner.SetConfig(cfg.Beam)
	s.Controller.SetConfig(cfg.Player)
	s.Course.SetConfig(cfg.Course)
}

func (s *Session) Config() Config { return s.cfg }

func (s *Session) Elapsed() float64 { return s.elapsed }

func (s *Session) Restarts() int { return s.restarts }
