package common

// Vec3 is a point in world space. Forward is -Z, up is +Y.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) WithY(y float64) Vec3 {
	v.Y = y
	return v
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// RandomRange returns a value in [lo, hi) for r in [0, 1).
func RandomRange(r, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Lerp(lo, hi, r)
}
