package waypoint

// Curve describes a 3D curve parametrized by a scalar.
type Curve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Vec3
}

// DefaultTangentEpsilon is the parameter step used by [Tangent] in the
// registry.
const DefaultTangentEpsilon = 0.01

// Tangent estimates the direction of travel at parameter t by differencing
// the curve over a step of epsilon.
//
// The result points backwards along the curve: it is c(t₀) − c(t₀+ε), with
// t₀ = clamp(t−ε, 0, 1). Negate the result for a forward tangent. Near
// t = 0 the difference is one-sided.
//
// The magnitude of the result scales with epsilon and the speed of the
// curve; normalize it if only the direction matters.
func Tangent(c Curve, t, epsilon float64) Vec3 {
	t0 := clamp01(t - epsilon)
	t1 := t0 + epsilon
	return c.Eval(t0).Sub(c.Eval(t1))
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}
