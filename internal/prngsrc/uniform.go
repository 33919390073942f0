package prngsrc

import "math"

const maxUint64 = 1<<64 - 1

// Uniform draws uniform floating-point values from a Source. It is the only
// entry point the simulation packages use; they never call Source.Uint64
// directly.
type Uniform struct {
	src Source
}

// NewUniform wraps src, seeding it immediately.
func NewUniform(src Source, seed int64) *Uniform {
	src.Seed(seed)
	return &Uniform{src: src}
}

// Float64 returns a uniform value in [0, 1).
func (u *Uniform) Float64() float64 {
	return float64(u.src.Uint64()>>11) / (1 << 53)
}

// Range returns a uniform value in [min, max).
func (u *Uniform) Range(min, max float64) float64 {
	return min + u.Float64()*(max-min)
}

// About returns a value uniformly distributed in [value-variation,
// value+variation), matching the Dole/Fogg "about" jitter helper.
func (u *Uniform) About(value, variation float64) float64 {
	return u.Range(value-variation, value+variation)
}

// NonZero draws a non-degenerate uniform in (0, 1), clamping away from the
// exact endpoints so that downstream power/log formulas never see 0 or 1.
func (u *Uniform) NonZero() float64 {
	v := u.Float64()
	if v <= 0 {
		return math.SmallestNonzeroFloat64
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}
