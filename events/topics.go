package events

import "github.com/milk9111/streetrunner/common"

// Topic names shared between course generation and the managers that react
// to it.
const (
	TopicStreetLightPositions = "street-light-positions"
	TopicRoadRemoved          = "road-removed"

	TopicBeamShown  = "light-beam-shown"
	TopicBeamHidden = "light-beam-hidden"
)

// StreetLightPositions is the payload of TopicStreetLightPositions.
type StreetLightPositions struct {
	RoadID    string
	Positions []common.Vec3
}

// BeamTransition is the payload of TopicBeamShown and TopicBeamHidden. It
// lets a presentation layer animate the light without owning its timing.
type BeamTransition struct {
	RoadID   string
	Position common.Vec3
	// Duration is how long the visual transition is expected to take.
	Duration float64
}
