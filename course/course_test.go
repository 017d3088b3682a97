package course

import (
	"math"
	"testing"

	"github.com/milk9111/streetrunner/common"
	"github.com/milk9111/streetrunner/events"
	"github.com/milk9111/streetrunner/prefabs"
	"github.com/milk9111/streetrunner/world"
)

type recorder struct {
	lights  map[string][]common.Vec3
	removed []string
}

func newCourse(t *testing.T, cfg Config) (*Course, *world.Store, *recorder) {
	t.Helper()
	bus := events.NewBus()
	store := world.NewStore(bus, world.NewPlayer(common.Vec3{}), world.Bounds{})
	rec := &recorder{lights: map[string][]common.Vec3{}}
	bus.On(events.TopicStreetLightPositions, events.Handle(func(p events.StreetLightPositions) {
		rec.lights[p.RoadID] = p.Positions
	}))
	bus.On(events.TopicRoadRemoved, events.Handle(func(r *world.Road) {
		if _, ok := store.RoadByID(r.ID); !ok {
			t.Fatalf("road %s announced after it was dropped", r.ID)
		}
		rec.removed = append(rec.removed, r.ID)
	}))
	c := New(cfg, store, bus)
	c.Start()
	return c, store, rec
}

func TestStartFillsViewWithLitRoads(t *testing.T) {
	cfg := DefaultConfig()
	_, store, rec := newCourse(t, cfg)

	roads := store.Roads()
	if len(roads) != 7 {
		t.Fatalf("expected 7 roads to cover the view, got %d", len(roads))
	}
	for i, r := range roads {
		if r.Index != i || r.Depth != cfg.RoadDepth {
			t.Fatalf("unexpected road %+v at %d", r, i)
		}
		if i > 0 && r.Z != roads[i-1].FarZ() {
			t.Fatalf("road %s does not continue from the previous road", r.ID)
		}
		lights := rec.lights[r.ID]
		if len(lights) != 2 {
			t.Fatalf("expected 2 street lights on %s, got %d", r.ID, len(lights))
		}
		for _, p := range lights {
			if p.Z > r.Z || p.Z <= r.FarZ() {
				t.Fatalf("light %+v outside road %s", p, r.ID)
			}
			if p.X >= cfg.XMinPlayer && p.X <= cfg.XMaxPlayer {
				t.Fatalf("light %+v should stand on the curb", p)
			}
		}
	}
	if store.RoadIndexFor(0) != 0 {
		t.Fatalf("player should start on the first road")
	}
	if store.Bounds.XMinPlayer != cfg.XMinPlayer || store.Bounds.ZMin != cfg.BackMargin {
		t.Fatalf("unexpected bounds %+v", store.Bounds)
	}
}

func TestScrollRetiresAndExtends(t *testing.T) {
	c, store, rec := newCourse(t, DefaultConfig())

	for i := 0; i < 100; i++ {
		c.Update(0.1)
	}

	if math.Abs(c.CameraZ()+40) > 1e-6 {
		t.Fatalf("camera should have scrolled 40 units, at %v", c.CameraZ())
	}
	if len(rec.removed) != 1 || rec.removed[0] != "road-0" {
		t.Fatalf("expected road-0 retired, got %v", rec.removed)
	}
	last := store.Roads()[len(store.Roads())-1]
	if last.FarZ() > c.CameraZ()-DefaultConfig().ViewDistance {
		t.Fatalf("roads should reach the horizon, last ends at %v", last.FarZ())
	}
	if _, ok := rec.lights[last.ID]; !ok {
		t.Fatalf("new road %s should announce street lights", last.ID)
	}
}

func TestScrollPushesPlayer(t *testing.T) {
	c, store, _ := newCourse(t, DefaultConfig())

	c.Update(5)

	p := store.Player
	if p.Position.Z != store.Bounds.ZMin {
		t.Fatalf("player should be pushed to zMin %v, at %v", store.Bounds.ZMin, p.Position.Z)
	}
	if p.CameraDistance != c.CameraZ()-p.Position.Z {
		t.Fatalf("camera distance not updated: %v", p.CameraDistance)
	}
}

func TestMissingScriptStillBuildsRoads(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LightScript = "does_not_exist.tengo"
	_, store, rec := newCourse(t, cfg)

	if len(store.Roads()) == 0 {
		t.Fatalf("roads should be generated without a light script")
	}
	if len(rec.lights) != 0 {
		t.Fatalf("no lights expected, got %d roads with lights", len(rec.lights))
	}
}

func TestLayoutRejectsMalformedOutput(t *testing.T) {
	layout, err := compileLightLayout("bad", []byte(`positions := [[1, 2]]`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := layout.positions(&world.Road{Depth: 10}, -1, 1); err == nil {
		t.Fatalf("expected error for a pair instead of a triple")
	}

	layout, err = compileLightLayout("ints", []byte(`positions := [[road_index, 0, road_z]]`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, err := layout.positions(&world.Road{Index: 3, Z: -20, Depth: 10}, -1, 1)
	if err != nil {
		t.Fatalf("positions: %v", err)
	}
	if len(got) != 1 || got[0] != (common.Vec3{X: 3, Z: -20}) {
		t.Fatalf("unexpected positions %+v", got)
	}
}

func TestConfigFromSpec(t *testing.T) {
	cfg := ConfigFromSpec(&prefabs.CourseSpec{RoadDepth: 30, XMinPlayer: -4, XMaxPlayer: 4})
	if cfg.RoadDepth != 30 || cfg.XMinPlayer != -4 || cfg.XMaxPlayer != 4 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.ScrollSpeed != DefaultConfig().ScrollSpeed || cfg.LightScript == "" {
		t.Fatalf("zero fields should keep defaults %+v", cfg)
	}
}

func TestConfigFromSpecKeepsBoundsOrdered(t *testing.T) {
	def := DefaultConfig()
	cases := []struct {
		name     string
		spec     prefabs.CourseSpec
		min, max float64
	}{
		{"only_min", prefabs.CourseSpec{XMinPlayer: 2}, 2, def.XMaxPlayer},
		{"only_max", prefabs.CourseSpec{XMaxPlayer: 3}, def.XMinPlayer, 3},
		{"min_past_default_max", prefabs.CourseSpec{XMinPlayer: 20}, def.XMinPlayer, def.XMaxPlayer},
		{"inverted_pair", prefabs.CourseSpec{XMinPlayer: 5, XMaxPlayer: -5}, def.XMinPlayer, def.XMaxPlayer},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := ConfigFromSpec(&c.spec)
			if cfg.XMinPlayer != c.min || cfg.XMaxPlayer != c.max {
				t.Fatalf("expected [%v, %v], got [%v, %v]", c.min, c.max, cfg.XMinPlayer, cfg.XMaxPlayer)
			}
			if cfg.XMinPlayer > cfg.XMaxPlayer {
				t.Fatalf("inverted bounds [%v, %v]", cfg.XMinPlayer, cfg.XMaxPlayer)
			}
		})
	}
}
