package scene

import "github.com/milk9111/streetrunner/common"

// Node is anything that can be attached to a scene graph.
type Node interface {
	NodeName() string
}

// Disposer is implemented by nodes that hold resources that must be released
// before the node is dropped.
type Disposer interface {
	Dispose()
}

// Graph is the subset of a scene graph the simulation touches.
type Graph interface {
	Add(nodes ...Node)
	Remove(nodes ...Node)
}

// Dispose releases n if it holds resources.
func Dispose(n Node) {
	if d, ok := n.(Disposer); ok && d != nil {
		d.Dispose()
	}
}

// SpotLight is a cone light pointing at Target.
type SpotLight struct {
	Name      string
	Position  common.Vec3
	Intensity float64
	Distance  float64
	Angle     float64
	Penumbra  float64
	Target    *Target
}

func (s *SpotLight) NodeName() string { return s.Name }

// Target is the point a SpotLight aims at.
type Target struct {
	Name     string
	Position common.Vec3
}

func (t *Target) NodeName() string { return t.Name }

// Marker is a generic positioned node, used for actors and props.
type Marker struct {
	Name     string
	Position common.Vec3
	Disposed bool
}

func (m *Marker) NodeName() string { return m.Name }

func (m *Marker) Dispose() { m.Disposed = true }
