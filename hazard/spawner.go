package hazard

import (
	"log"

	"github.com/milk9111/streetrunner/common"
	"github.com/milk9111/streetrunner/events"
	"github.com/milk9111/streetrunner/scene"
	"github.com/milk9111/streetrunner/world"
)

// Rand is the random source used for spawn timing and placement.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Beam is the active light beam hazard.
type Beam struct {
	RoadID    string
	Remaining float64
	Light     *scene.SpotLight
}

func (b *Beam) nodes() []scene.Node {
	return []scene.Node{b.Light, b.Light.Target}
}

// Spawner cycles a single light beam between idle and active. While idle it
// waits a random time, then lights a street light on the player's road or the
// next one. Removing the road a beam is on puts it out immediately.
type Spawner struct {
	cfg   Config
	store *world.Store
	graph scene.Graph
	bus   *events.Bus
	rng   Rand

	spawnTimer float64
	spawnAt    float64
	beam       *Beam
	positions  map[string][]common.Vec3

	subs []*events.Subscription
}

func NewSpawner(cfg Config, store *world.Store, graph scene.Graph, bus *events.Bus, rng Rand) *Spawner {
	s := &Spawner{
		cfg:       cfg,
		store:     store,
		graph:     graph,
		bus:       bus,
		rng:       rng,
		positions: make(map[string][]common.Vec3),
	}
	if graph == nil {
		log.Printf("hazard: no scene graph; beams will not be drawn")
	}
	s.subs = append(s.subs,
		bus.On(events.TopicStreetLightPositions, events.Handle(s.onStreetLightPositions)),
		bus.On(events.TopicRoadRemoved, events.Handle(s.onRoadRemoved)),
	)
	s.resampleSpawn()
	return s
}

// Close detaches the spawner from the bus and puts out any active beam.
func (s *Spawner) Close() {
	if s == nil {
		return
	}
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
	s.subs = nil
	s.removeBeam()
}

// SetConfig swaps the tuning. A new spawn range applies from the next
// resample; an active beam keeps its remaining lifetime.
func (s *Spawner) SetConfig(cfg Config) {
	if s == nil {
		return
	}
	s.cfg = cfg
}

func (s *Spawner) Update(dt float64) {
	if s == nil {
		return
	}
	if s.beam != nil {
		s.trackBeam(dt)
	} else {
		s.trackSpawn(dt)
	}
}

// Active reports the road id of the active beam.
func (s *Spawner) Active() (string, bool) {
	if s == nil || s.beam == nil {
		return "", false
	}
	return s.beam.RoadID, true
}

func (s *Spawner) Beam() *Beam {
	if s == nil {
		return nil
	}
	return s.beam
}

// SpawnIn reports the idle time left before the next beam.
func (s *Spawner) SpawnIn() float64 {
	if s == nil || s.beam != nil {
		return 0
	}
	return s.spawnAt - s.spawnTimer
}

// Positions returns the street light positions registered for a road.
func (s *Spawner) Positions(roadID string) []common.Vec3 {
	if s == nil {
		return nil
	}
	return s.positions[roadID]
}

func (s *Spawner) trackBeam(dt float64) {
	s.beam.Remaining -= dt
	if s.beam.Remaining <= 0 {
		s.removeBeam()
	}
}

func (s *Spawner) trackSpawn(dt float64) {
	s.spawnTimer += dt
	if s.spawnTimer >= s.spawnAt {
		s.createBeam()
	}
}

func (s *Spawner) createBeam() {
	road := s.randomRoad()
	if road == nil {
		// Nothing to light yet; try again next tick.
		return
	}

	pos := s.randomLightPosition(road.ID)
	light := &scene.SpotLight{
		Name:      "light-beam",
		Position:  pos.WithY(s.cfg.Height),
		Intensity: s.cfg.Intensity,
		Distance:  s.cfg.Distance,
		Angle:     s.cfg.Angle,
		Penumbra:  s.cfg.Penumbra,
		Target:    &scene.Target{Name: "light-beam-target", Position: pos.WithY(0)},
	}
	s.beam = &Beam{
		RoadID:    road.ID,
		Remaining: s.cfg.Lifetime(),
		Light:     light,
	}
	if s.graph != nil {
		s.graph.Add(s.beam.nodes()...)
	}
	s.bus.Emit(events.TopicBeamShown, events.BeamTransition{
		RoadID:   road.ID,
		Position: pos,
		Duration: s.cfg.FlickerOnDuration,
	})
}

func (s *Spawner) removeBeam() {
	if s.beam == nil {
		return
	}
	beam := s.beam
	s.beam = nil

	if s.graph != nil {
		s.graph.Remove(beam.nodes()...)
	}
	s.resampleSpawn()

	s.bus.Emit(events.TopicBeamHidden, events.BeamTransition{
		RoadID:   beam.RoadID,
		Position: beam.Light.Target.Position,
		Duration: s.cfg.FinishDuration,
	})
}

func (s *Spawner) resampleSpawn() {
	s.spawnAt = common.RandomRange(s.rng.Float64(), s.cfg.SpawnMin, s.cfg.SpawnMax)
	s.spawnTimer = 0
}

// randomRoad picks the player's road or the one after it with equal odds.
// Past the last road it stays on the last road.
func (s *Spawner) randomRoad() *world.Road {
	roads := s.store.Roads()
	if len(roads) == 0 {
		return nil
	}
	var z float64
	if s.store.Player != nil {
		z = s.store.Player.Position.Z
	}
	current := s.store.RoadIndexFor(z)
	idx := current
	if s.rng.Float64() >= 0.5 {
		idx = current + 1
	}
	if idx >= len(roads) {
		idx = len(roads) - 1
	}
	return roads[idx]
}

func (s *Spawner) randomLightPosition(roadID string) common.Vec3 {
	positions := s.positions[roadID]
	if len(positions) == 0 {
		return common.Vec3{}
	}
	return positions[s.rng.IntN(len(positions))]
}

func (s *Spawner) onStreetLightPositions(p events.StreetLightPositions) {
	s.positions[p.RoadID] = p.Positions
}

func (s *Spawner) onRoadRemoved(r *world.Road) {
	if r == nil {
		return
	}
	delete(s.positions, r.ID)
	if s.beam != nil && s.beam.RoadID == r.ID {
		s.removeBeam()
	}
}
