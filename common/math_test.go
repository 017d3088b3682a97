package common

import "testing"

func TestRandomRange(t *testing.T) {
	cases := []struct {
		name   string
		r      float64
		lo, hi float64
		want   float64
	}{
		{"low_end", 0, 2, 4, 2},
		{"mid", 0.5, 2, 4, 3},
		{"swapped_bounds", 0.25, 4, 0, 1},
		{"degenerate", 0.9, 3, 3, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RandomRange(c.r, c.lo, c.hi); got != c.want {
				t.Fatalf("RandomRange(%v, %v, %v) = %v, want %v", c.r, c.lo, c.hi, got, c.want)
			}
		})
	}
}

func TestVec3WithY(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}.WithY(7.5)
	if v != (Vec3{X: 1, Y: 7.5, Z: 3}) {
		t.Fatalf("unexpected vector %+v", v)
	}
}
