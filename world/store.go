package world

import (
	"github.com/milk9111/streetrunner/events"
)

// Road is one lane of traversal. It spans z in (Z-Depth, Z]; forward is -Z.
type Road struct {
	ID    string
	Index int
	Z     float64
	Depth float64
}

// FarZ is the z coordinate of the road's forward edge.
func (r *Road) FarZ() float64 {
	return r.Z - r.Depth
}

// Bounds limit where the player may move.
type Bounds struct {
	XMinPlayer float64
	XMaxPlayer float64
	// ZMin caps backward movement; the player z never exceeds it.
	ZMin float64
}

// Store is the shared simulation state for one session. Course generation
// owns Roads and Bounds.ZMin; the player controller owns Player.Position.
// It is not safe for concurrent use.
type Store struct {
	Player *Player
	Bounds Bounds

	roads []*Road
	bus   *events.Bus
}

// NewStore creates a store that announces road removal on bus.
func NewStore(bus *events.Bus, player *Player, bounds Bounds) *Store {
	return &Store{
		Player: player,
		Bounds: bounds,
		bus:    bus,
	}
}

// Roads returns the roads ordered by traversal index.
func (s *Store) Roads() []*Road {
	if s == nil {
		return nil
	}
	return s.roads
}

// Road returns the road at idx, or nil when idx is out of range.
func (s *Store) Road(idx int) *Road {
	if s == nil || idx < 0 || idx >= len(s.roads) {
		return nil
	}
	return s.roads[idx]
}

// RoadByID looks up a road by id.
func (s *Store) RoadByID(id string) (*Road, bool) {
	if s == nil {
		return nil, false
	}
	for _, r := range s.roads {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// AddRoad appends r to the end of the traversal order.
func (s *Store) AddRoad(r *Road) {
	if s == nil || r == nil {
		return
	}
	s.roads = append(s.roads, r)
}

// RemoveRoad emits TopicRoadRemoved for the road and then drops it. It
// reports whether a road with that id existed.
func (s *Store) RemoveRoad(id string) bool {
	if s == nil {
		return false
	}
	r, ok := s.RoadByID(id)
	if !ok {
		return false
	}
	s.bus.Emit(events.TopicRoadRemoved, r)
	// Handlers may have changed the list, so look the road up again.
	for i, existing := range s.roads {
		if existing == r {
			s.roads = append(s.roads[:i], s.roads[i+1:]...)
			break
		}
	}
	return true
}

// RoadIndexFor returns the index of the road containing z. Positions behind
// the first road map to 0 and positions beyond the last road map to the last
// index. It returns -1 when there are no roads.
func (s *Store) RoadIndexFor(z float64) int {
	if s == nil || len(s.roads) == 0 {
		return -1
	}
	for i, r := range s.roads {
		if z > r.FarZ() {
			return i
		}
	}
	return len(s.roads) - 1
}
