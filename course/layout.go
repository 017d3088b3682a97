package course

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/streetrunner/common"
	"github.com/milk9111/streetrunner/prefabs"
	"github.com/milk9111/streetrunner/world"
)

// lightLayout runs a street light script for each new road. The script sees
// road_index, road_z, road_depth, x_min and x_max and must leave an array of
// [x, y, z] triples in positions.
type lightLayout struct {
	name     string
	compiled *tengo.Compiled
}

func loadLightLayout(name string) (*lightLayout, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("course: load script %s: %w", name, err)
	}
	return compileLightLayout(name, src)
}

func compileLightLayout(name string, src []byte) (*lightLayout, error) {
	script := tengo.NewScript(src)
	_ = script.Add("road_index", 0)
	_ = script.Add("road_z", 0.0)
	_ = script.Add("road_depth", 0.0)
	_ = script.Add("x_min", 0.0)
	_ = script.Add("x_max", 0.0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("course: compile script %s: %w", name, err)
	}
	return &lightLayout{name: name, compiled: compiled}, nil
}

func (l *lightLayout) positions(r *world.Road, xMin, xMax float64) ([]common.Vec3, error) {
	if l == nil || l.compiled == nil {
		return nil, nil
	}
	inputs := map[string]any{
		"road_index": r.Index,
		"road_z":     r.Z,
		"road_depth": r.Depth,
		"x_min":      xMin,
		"x_max":      xMax,
	}
	for k, v := range inputs {
		if err := l.compiled.Set(k, v); err != nil {
			return nil, fmt.Errorf("course: script %s: set %s: %w", l.name, k, err)
		}
	}
	if err := l.compiled.Run(); err != nil {
		return nil, fmt.Errorf("course: script %s: run: %w", l.name, err)
	}
	if !l.compiled.IsDefined("positions") {
		return nil, fmt.Errorf("course: script %s: positions not defined", l.name)
	}

	raw := l.compiled.Get("positions").Array()
	out := make([]common.Vec3, 0, len(raw))
	for i, item := range raw {
		triple, ok := item.([]any)
		if !ok || len(triple) != 3 {
			return nil, fmt.Errorf("course: script %s: positions[%d] is not [x, y, z]", l.name, i)
		}
		var xyz [3]float64
		for j, c := range triple {
			f, ok := toFloat(c)
			if !ok {
				return nil, fmt.Errorf("course: script %s: positions[%d][%d] is not a number", l.name, i, j)
			}
			xyz[j] = f
		}
		out = append(out, common.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
