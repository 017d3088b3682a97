package course

import (
	"fmt"
	"log"

	"github.com/milk9111/streetrunner/events"
	"github.com/milk9111/streetrunner/prefabs"
	"github.com/milk9111/streetrunner/world"
)

type Config struct {
	RoadDepth    float64
	ViewDistance float64
	// ScrollSpeed is how fast the camera advances, in units per second.
	ScrollSpeed float64
	// BackMargin places ZMin this far behind the camera.
	BackMargin float64
	// RetireMargin is how far behind the camera a road's far edge must be
	// before the road is removed.
	RetireMargin float64
	XMinPlayer   float64
	XMaxPlayer   float64
	LightScript  string
}

func DefaultConfig() Config {
	return Config{
		RoadDepth:    20,
		ViewDistance: 120,
		ScrollSpeed:  4,
		BackMargin:   2,
		RetireMargin: 10,
		XMinPlayer:   -9,
		XMaxPlayer:   9,
		LightScript:  "street_lights.tengo",
	}
}

func ConfigFromSpec(spec *prefabs.CourseSpec) Config {
	cfg := DefaultConfig()
	if spec == nil {
		return cfg
	}
	if spec.RoadDepth > 0 {
		cfg.RoadDepth = spec.RoadDepth
	}
	if spec.ViewDistance > 0 {
		cfg.ViewDistance = spec.ViewDistance
	}
	if spec.ScrollSpeed > 0 {
		cfg.ScrollSpeed = spec.ScrollSpeed
	}
	if spec.BackMargin > 0 {
		cfg.BackMargin = spec.BackMargin
	}
	if spec.RetireMargin > 0 {
		cfg.RetireMargin = spec.RetireMargin
	}
	if spec.XMinPlayer != 0 {
		cfg.XMinPlayer = spec.XMinPlayer
	}
	if spec.XMaxPlayer != 0 {
		cfg.XMaxPlayer = spec.XMaxPlayer
	}
	if cfg.XMinPlayer > cfg.XMaxPlayer {
		def := DefaultConfig()
		log.Printf("course: x bounds [%v, %v] are inverted, using [%v, %v]",
			cfg.XMinPlayer, cfg.XMaxPlayer, def.XMinPlayer, def.XMaxPlayer)
		cfg.XMinPlayer = def.XMinPlayer
		cfg.XMaxPlayer = def.XMaxPlayer
	}
	if spec.LightScript != "" {
		cfg.LightScript = spec.LightScript
	}
	return cfg
}

// Course scrolls the camera forward, keeps roads generated ahead of it and
// retires roads left behind. New roads announce their street lights on the
// bus; retired roads go through world.Store.RemoveRoad.
type Course struct {
	cfg    Config
	store  *world.Store
	bus    *events.Bus
	layout *lightLayout

	cameraZ   float64
	nextIndex int
}

// New creates a course with the camera at the player's position. A script
// that fails to load is logged and roads are generated without lights.
func New(cfg Config, store *world.Store, bus *events.Bus) *Course {
	c := &Course{
		cfg:   cfg,
		store: store,
		bus:   bus,
	}
	if store.Player != nil {
		c.cameraZ = store.Player.Position.Z
	}
	c.loadLayout()
	return c
}

// Start lays out the initial roads. Subscribers to the street light topic
// must be registered first.
func (c *Course) Start() {
	c.applyBounds()
	c.fill()
}

func (c *Course) SetConfig(cfg Config) {
	if c == nil {
		return
	}
	c.cfg = cfg
	c.loadLayout()
	c.applyBounds()
}

func (c *Course) CameraZ() float64 {
	if c == nil {
		return 0
	}
	return c.cameraZ
}

func (c *Course) Update(dt float64) {
	if c == nil {
		return
	}
	c.cameraZ -= c.cfg.ScrollSpeed * dt
	c.applyBounds()
	c.retire()
	c.fill()
}

func (c *Course) loadLayout() {
	layout, err := loadLightLayout(c.cfg.LightScript)
	if err != nil {
		log.Printf("course: street lights disabled: %v", err)
		c.layout = nil
		return
	}
	c.layout = layout
}

func (c *Course) applyBounds() {
	c.store.Bounds.XMinPlayer = c.cfg.XMinPlayer
	c.store.Bounds.XMaxPlayer = c.cfg.XMaxPlayer
	c.store.Bounds.ZMin = c.cameraZ + c.cfg.BackMargin

	p := c.store.Player
	if p == nil {
		return
	}
	// The trailing edge of the screen pushes the player along.
	if p.Position.Z > c.store.Bounds.ZMin {
		p.Position.Z = c.store.Bounds.ZMin
		p.SyncNode()
	}
	p.CameraDistance = c.cameraZ - p.Position.Z
}

func (c *Course) retire() {
	for {
		roads := c.store.Roads()
		if len(roads) == 0 {
			return
		}
		first := roads[0]
		if first.FarZ() <= c.cameraZ+c.cfg.RetireMargin {
			return
		}
		c.store.RemoveRoad(first.ID)
	}
}

func (c *Course) fill() {
	if c.cfg.RoadDepth <= 0 {
		return
	}
	horizon := c.cameraZ - c.cfg.ViewDistance
	for {
		z := c.cameraZ + c.cfg.BackMargin
		if roads := c.store.Roads(); len(roads) > 0 {
			z = roads[len(roads)-1].FarZ()
		}
		if z <= horizon {
			return
		}
		c.addRoad(z)
	}
}

func (c *Course) addRoad(z float64) {
	road := &world.Road{
		ID:    fmt.Sprintf("road-%d", c.nextIndex),
		Index: c.nextIndex,
		Z:     z,
		Depth: c.cfg.RoadDepth,
	}
	c.nextIndex++
	c.store.AddRoad(road)

	positions, err := c.layout.positions(road, c.cfg.XMinPlayer, c.cfg.XMaxPlayer)
	if err != nil {
		log.Printf("course: %s has no street lights: %v", road.ID, err)
		return
	}
	if len(positions) == 0 {
		return
	}
	c.bus.Emit(events.TopicStreetLightPositions, events.StreetLightPositions{
		RoadID:    road.ID,
		Positions: positions,
	})
}
