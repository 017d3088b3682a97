package player

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/streetrunner/common"
	"github.com/milk9111/streetrunner/events"
	"github.com/milk9111/streetrunner/prefabs"
	"github.com/milk9111/streetrunner/scene"
	"github.com/milk9111/streetrunner/world"
)

type heldKeys map[string]bool

func (k heldKeys) IsKeyPressed(code string) bool { return k[code] }

func newTestController(keys heldKeys) (*Controller, *world.Store, *scene.Set) {
	store := world.NewStore(events.NewBus(), world.NewPlayer(common.Vec3{}), world.Bounds{
		XMinPlayer: -9,
		XMaxPlayer: 9,
		ZMin:       5,
	})
	graph := scene.NewSet()
	graph.Add(store.Player.Node)
	return NewController(DefaultConfig(), store, graph, keys), store, graph
}

func TestDirectionalMovement(t *testing.T) {
	cases := []struct {
		name string
		keys heldKeys
		want common.Vec3
	}{
		{"left", heldKeys{"a": true}, common.Vec3{X: -1.5}},
		{"right", heldKeys{"d": true}, common.Vec3{X: 1.5}},
		{"forward", heldKeys{"w": true}, common.Vec3{Z: -1.5}},
		{"backward", heldKeys{"s": true}, common.Vec3{Z: 1.5}},
		{"left_and_right_cancel", heldKeys{"a": true, "d": true}, common.Vec3{}},
		{"diagonal", heldKeys{"d": true, "w": true}, common.Vec3{X: 1.5, Z: -1.5}},
		{"nothing", heldKeys{}, common.Vec3{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl, store, _ := newTestController(c.keys)
			ctrl.Update(0.1)
			if got := store.Player.Position; got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
			if store.Player.Node.Position != c.want {
				t.Fatalf("scene node not synced: %+v", store.Player.Node.Position)
			}
		})
	}
}

func TestInManholeBlocksMovement(t *testing.T) {
	ctrl, store, _ := newTestController(heldKeys{"a": true, "d": true, "w": true, "s": true})
	store.Player.Position = common.Vec3{X: 1, Z: -3}
	store.Player.AddEffect(world.EffectInManhole)
	store.Player.AddEffect(world.EffectOnCrossing)

	for i := 0; i < 10; i++ {
		ctrl.Update(0.5)
	}

	if store.Player.Position != (common.Vec3{X: 1, Z: -3}) {
		t.Fatalf("player moved while in a manhole: %+v", store.Player.Position)
	}
}

func TestOnCrossingAddsSpeed(t *testing.T) {
	ctrl, store, _ := newTestController(heldKeys{"d": true})
	store.Bounds.XMaxPlayer = 100
	store.Player.AddEffect(world.EffectOnCrossing)

	ctrl.Update(1)

	cfg := DefaultConfig()
	if want := cfg.MoveSpeedNormal + cfg.MoveSpeedCrossingAdd; store.Player.Position.X != want {
		t.Fatalf("expected x=%v, got %v", want, store.Player.Position.X)
	}
}

func TestOnCrossingStillClamped(t *testing.T) {
	ctrl, store, _ := newTestController(heldKeys{"d": true})
	store.Player.AddEffect(world.EffectOnCrossing)

	ctrl.Update(1)

	if store.Player.Position.X != 9 {
		t.Fatalf("expected clamp at xMaxPlayer, got %v", store.Player.Position.X)
	}
}

func TestForwardStopsAtCameraCeiling(t *testing.T) {
	ctrl, store, _ := newTestController(heldKeys{"w": true})
	store.Player.CameraDistance = 24

	ctrl.Update(1)
	if store.Player.Position.Z != 0 {
		t.Fatalf("forward movement past the camera ceiling, z=%v", store.Player.Position.Z)
	}

	store.Player.CameraDistance = 23.9
	ctrl.Update(1)
	if store.Player.Position.Z != -15 {
		t.Fatalf("expected z=-15, got %v", store.Player.Position.Z)
	}
}

func TestBoundsHoldUnderAdversarialInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	keys := heldKeys{}
	ctrl, store, _ := newTestController(keys)

	for i := 0; i < 2000; i++ {
		for _, k := range []string{"a", "d", "w", "s"} {
			keys[k] = rng.IntN(2) == 0
		}
		if rng.IntN(2) == 0 {
			store.Player.AddEffect(world.EffectOnCrossing)
		} else {
			store.Player.RemoveEffect(world.EffectOnCrossing)
		}
		dt := rng.Float64()
		if i%50 == 0 {
			dt = 1e6
		}
		ctrl.Update(dt)

		p := store.Player.Position
		if p.X < store.Bounds.XMinPlayer || p.X > store.Bounds.XMaxPlayer {
			t.Fatalf("step %d: x=%v outside [%v, %v]", i, p.X, store.Bounds.XMinPlayer, store.Bounds.XMaxPlayer)
		}
		if p.Z > store.Bounds.ZMin {
			t.Fatalf("step %d: z=%v beyond zMin %v", i, p.Z, store.Bounds.ZMin)
		}
	}
}

func TestCustomKeyBindings(t *testing.T) {
	ctrl, store, _ := newTestController(heldKeys{"arrowleft": true, "a": true})
	ctrl.SetConfig(ConfigFromSpec(&prefabs.PlayerSpec{Keys: prefabs.KeyBindingSpec{Left: "arrowleft", Right: "arrowright"}}))

	ctrl.Update(0.1)

	if store.Player.Position.X != -1.5 {
		t.Fatalf("expected rebound left key to move once, got x=%v", store.Player.Position.X)
	}
}

func TestReset(t *testing.T) {
	ctrl, store, graph := newTestController(heldKeys{})
	old := store.Player
	old.Position = common.Vec3{X: 4, Z: -30}
	old.AddEffect(world.EffectInManhole)

	ctrl.Reset()

	if !old.Node.Disposed {
		t.Fatalf("old player node should be disposed")
	}
	if graph.Contains(old.Node) {
		t.Fatalf("old player node should be removed from the scene")
	}
	if store.Player == old || store.Player.Position != (common.Vec3{}) || store.Player.HasActiveEffect(world.EffectInManhole) {
		t.Fatalf("expected a fresh player, got %+v", store.Player)
	}
}

func TestResetWithoutPlayer(t *testing.T) {
	ctrl, store, _ := newTestController(heldKeys{"d": true})
	store.Player = nil

	ctrl.Update(1)
	ctrl.Reset()

	if store.Player == nil {
		t.Fatalf("reset should create a player")
	}
}
