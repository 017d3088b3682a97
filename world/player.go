package world

import (
	"github.com/milk9111/streetrunner/common"
	"github.com/milk9111/streetrunner/scene"
)

// Effect is a named status on the player. Effects are presence flags; their
// owners add and remove them.
type Effect string

const (
	EffectInManhole  Effect = "in-manhole"
	EffectOnCrossing Effect = "on-crossing"
)

// Player is the controllable actor.
type Player struct {
	Position common.Vec3
	// CameraDistance is how far ahead of the camera the player is. Forward
	// movement stops once it reaches the controller's ceiling.
	CameraDistance float64
	Node           *scene.Marker

	effects map[Effect]struct{}
}

// NewPlayer builds a player at pos with a scene marker.
func NewPlayer(pos common.Vec3) *Player {
	return &Player{
		Position: pos,
		Node:     &scene.Marker{Name: "player", Position: pos},
	}
}

func (p *Player) AddEffect(e Effect) {
	if p == nil {
		return
	}
	if p.effects == nil {
		p.effects = make(map[Effect]struct{})
	}
	p.effects[e] = struct{}{}
}

func (p *Player) RemoveEffect(e Effect) {
	if p == nil {
		return
	}
	delete(p.effects, e)
}

func (p *Player) HasActiveEffect(e Effect) bool {
	if p == nil {
		return false
	}
	_, ok := p.effects[e]
	return ok
}

// Effects returns the active effects in no particular order.
func (p *Player) Effects() []Effect {
	if p == nil {
		return nil
	}
	out := make([]Effect, 0, len(p.effects))
	for e := range p.effects {
		out = append(out, e)
	}
	return out
}

// SyncNode copies the simulated position onto the scene marker.
func (p *Player) SyncNode() {
	if p == nil || p.Node == nil {
		return
	}
	p.Node.Position = p.Position
}
