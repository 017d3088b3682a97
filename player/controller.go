package player

import (
	"math"

	"github.com/milk9111/streetrunner/common"
	"github.com/milk9111/streetrunner/prefabs"
	"github.com/milk9111/streetrunner/scene"
	"github.com/milk9111/streetrunner/world"
)

// KeyState answers whether a key is currently held. Codes are lowercase key
// names such as "a" or "arrowleft".
type KeyState interface {
	IsKeyPressed(code string) bool
}

type Keys struct {
	Left     string
	Right    string
	Forward  string
	Backward string
}

type Config struct {
	MoveSpeedNormal      float64
	MoveSpeedCrossingAdd float64
	// MaxUpperMovement is compared against the player's camera distance to
	// stop forward movement before the player leaves the screen.
	MaxUpperMovement float64
	Spawn            common.Vec3
	Keys             Keys
}

func DefaultConfig() Config {
	return Config{
		MoveSpeedNormal:      15,
		MoveSpeedCrossingAdd: 15,
		MaxUpperMovement:     24,
		Keys:                 Keys{Left: "a", Right: "d", Forward: "w", Backward: "s"},
	}
}

func ConfigFromSpec(spec *prefabs.PlayerSpec) Config {
	cfg := DefaultConfig()
	if spec == nil {
		return cfg
	}
	if spec.MoveSpeedNormal > 0 {
		cfg.MoveSpeedNormal = spec.MoveSpeedNormal
	}
	if spec.MoveSpeedCrossingAdd > 0 {
		cfg.MoveSpeedCrossingAdd = spec.MoveSpeedCrossingAdd
	}
	if spec.MaxUpperMovement > 0 {
		cfg.MaxUpperMovement = spec.MaxUpperMovement
	}
	cfg.Spawn = common.Vec3{X: spec.Transform.X, Y: spec.Transform.Y, Z: spec.Transform.Z}
	if spec.Keys.Left != "" {
		cfg.Keys.Left = spec.Keys.Left
	}
	if spec.Keys.Right != "" {
		cfg.Keys.Right = spec.Keys.Right
	}
	if spec.Keys.Forward != "" {
		cfg.Keys.Forward = spec.Keys.Forward
	}
	if spec.Keys.Backward != "" {
		cfg.Keys.Backward = spec.Keys.Backward
	}
	return cfg
}

// Controller moves the player from keyboard input, subject to the player's
// active effects and the world bounds.
type Controller struct {
	cfg   Config
	store *world.Store
	graph scene.Graph
	keys  KeyState
}

func NewController(cfg Config, store *world.Store, graph scene.Graph, keys KeyState) *Controller {
	return &Controller{
		cfg:   cfg,
		store: store,
		graph: graph,
		keys:  keys,
	}
}

func (c *Controller) SetConfig(cfg Config) {
	if c == nil {
		return
	}
	c.cfg = cfg
}

// NewPlayer builds a player at the configured spawn point.
func (c *Controller) NewPlayer() *world.Player {
	return world.NewPlayer(c.cfg.Spawn)
}

// Reset releases the current player's node and replaces the player with a
// fresh one.
func (c *Controller) Reset() {
	if c == nil || c.store == nil {
		return
	}
	if old := c.store.Player; old != nil && old.Node != nil {
		scene.Dispose(old.Node)
		if c.graph != nil {
			c.graph.Remove(old.Node)
		}
	}
	c.store.Player = c.NewPlayer()
}

func (c *Controller) Update(dt float64) {
	if c == nil || c.store == nil || c.store.Player == nil {
		return
	}
	if !c.canMove() {
		return
	}
	c.inputMovement(dt, c.moveSpeed())
	c.store.Player.SyncNode()
}

func (c *Controller) canMove() bool {
	return !c.store.Player.HasActiveEffect(world.EffectInManhole)
}

func (c *Controller) moveSpeed() float64 {
	speed := c.cfg.MoveSpeedNormal
	if c.store.Player.HasActiveEffect(world.EffectOnCrossing) {
		speed += c.cfg.MoveSpeedCrossingAdd
	}
	return speed
}

func (c *Controller) pressed(code string) bool {
	return c.keys != nil && code != "" && c.keys.IsKeyPressed(code)
}

func (c *Controller) inputMovement(dt, speed float64) {
	p := c.store.Player
	b := c.store.Bounds
	step := speed * dt

	if c.pressed(c.cfg.Keys.Left) {
		p.Position.X = math.Max(p.Position.X-step, b.XMinPlayer)
	}
	if c.pressed(c.cfg.Keys.Right) {
		p.Position.X = math.Min(p.Position.X+step, b.XMaxPlayer)
	}
	if c.pressed(c.cfg.Keys.Forward) {
		if p.CameraDistance < c.cfg.MaxUpperMovement {
			p.Position.Z -= step
		}
	}
	if c.pressed(c.cfg.Keys.Backward) {
		p.Position.Z = math.Min(p.Position.Z+step, b.ZMin)
	}
}
