package prefabs

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	LightBeamFile = "light_beam.yaml"
	PlayerFile    = "player.yaml"
	CourseFile    = "course.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LightBeamSpec tunes the roaming street light hazard. Durations are in
// seconds and zero values fall back to the built-in defaults.
type LightBeamSpec struct {
	Name              string  `yaml:"name"`
	SpawnMin          float64 `yaml:"spawn_min"`
	SpawnMax          float64 `yaml:"spawn_max"`
	LifetimeDuration  float64 `yaml:"lifetime_duration"`
	FlickerOnDuration float64 `yaml:"flicker_on_duration"`
	FinishDuration    float64 `yaml:"finish_duration"`
	Height            float64 `yaml:"height"`
	Distance          float64 `yaml:"distance"`
	AngleDeg          float64 `yaml:"angle_deg"`
	Penumbra          float64 `yaml:"penumbra"`
	Intensity         float64 `yaml:"intensity"`
}

func LoadLightBeamSpec() (*LightBeamSpec, error) {
	spec, err := LoadSpec[LightBeamSpec](LightBeamFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type KeyBindingSpec struct {
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	Forward  string `yaml:"forward"`
	Backward string `yaml:"backward"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type PlayerSpec struct {
	Name                 string         `yaml:"name"`
	MoveSpeedNormal      float64        `yaml:"move_speed_normal"`
	MoveSpeedCrossingAdd float64        `yaml:"move_speed_crossing_add"`
	MaxUpperMovement     float64        `yaml:"max_upper_movement"`
	Transform            TransformSpec  `yaml:"transform"`
	Keys                 KeyBindingSpec `yaml:"keys"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CourseSpec struct {
	Name         string  `yaml:"name"`
	RoadDepth    float64 `yaml:"road_depth"`
	ViewDistance float64 `yaml:"view_distance"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
	BackMargin   float64 `yaml:"back_margin"`
	RetireMargin float64 `yaml:"retire_margin"`
	XMinPlayer   float64 `yaml:"x_min_player"`
	XMaxPlayer   float64 `yaml:"x_max_player"`
	LightScript  string  `yaml:"light_script"`
}

func LoadCourseSpec() (*CourseSpec, error) {
	spec, err := LoadSpec[CourseSpec](CourseFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// SpecFile maps a changed path reported by the watcher to the prefab it
// belongs to. Script paths map to the course, which owns them.
func SpecFile(path string) (string, bool) {
	base := filepath.Base(path)
	switch base {
	case LightBeamFile, PlayerFile, CourseFile:
		return base, true
	}
	if isScriptFile(path) {
		return CourseFile, true
	}
	return "", false
}
