// SPDX-License-Identifier: MIT
// Package hypmath: inverse hyperbolic functions as custom autodiff ops.
//
// Each op is a stateless value with an explicit forward/backward pair.
// Forward clamps its argument into the open domain, evaluates the exact
// formula in float64 and hands back both the output (input precision)
// and the clamped values it used. Backward divides the incoming
// gradient by the derivative denominator taken from that saved state —
// gradients are exact for the silently-restricted domain the forward
// pass actually evaluated.

package hypmath

import "math"

// BoundaryEps offsets the clamp away from the true domain boundary.
// At ±1 (artanh) or 1 (arcosh) the derivative denominator vanishes;
// the offset keeps it a regular floating-point value.
const BoundaryEps = 1e-15

// Function is the two-method custom-op contract of the host
// differentiation system. Forward returns the op output together with
// the saved state its paired Backward consumes; the saved state is
// single-use and must not be shared across backward calls.
type Function interface {
	// Forward evaluates the op on x, returning the output in the input
	// precision and the saved (possibly clamped) state for Backward.
	Forward(x *Tensor) (out *Tensor, saved *Saved)

	// Backward maps the gradient w.r.t. the output to the gradient
	// w.r.t. the input, using the state saved by the paired Forward.
	// Panics on element-count mismatch (programmer error).
	Backward(saved *Saved, grad *Tensor) *Tensor
}

// forwardWith evaluates clampFn+formula over x, capturing clamped
// float64 inputs as saved state. Shared by all three inverse ops.
func forwardWith(x *Tensor, clampFn func(float64) float64, formula func(float64) float64) (*Tensor, *Saved) {
	out := x.like()
	saved := &Saved{shape: append([]int(nil), x.shape...), data: make([]float64, len(x.data))}
	for i, v := range x.data {
		z := clampFn(float64(v)) // clamp in double precision, before the formula
		saved.data[i] = z
		out.data[i] = float32(formula(z))
	}
	return out, saved
}

// backwardWith divides grad by denom(saved) elementwise.
func backwardWith(op string, saved *Saved, grad *Tensor, denom func(float64) float64) *Tensor {
	mustSameLen(op, saved.NumEl(), grad.NumEl())
	out := grad.like()
	for i, g := range grad.data {
		out.data[i] = float32(float64(g) / denom(saved.data[i]))
	}
	return out
}

// Artanh is the inverse hyperbolic tangent with domain clamped to
// [-1+BoundaryEps, 1-BoundaryEps].
//
//	forward:  0.5·(log(1+x) − log(1−x)), double precision
//	backward: grad / (1 − x²), x the clamped saved input
type Artanh struct{}

// Forward implements Function.
func (Artanh) Forward(x *Tensor) (*Tensor, *Saved) {
	return forwardWith(x,
		func(v float64) float64 { return clip(v, 1-BoundaryEps) },
		func(z float64) float64 { return 0.5 * (math.Log1p(z) - math.Log1p(-z)) },
	)
}

// Backward implements Function.
func (Artanh) Backward(saved *Saved, grad *Tensor) *Tensor {
	return backwardWith("Artanh.Backward", saved, grad,
		func(z float64) float64 { return 1 - z*z })
}

// Arsinh is the inverse hyperbolic sine. Defined on all of ℝ; no input
// clamp, but the log argument is floored at BoundaryEps so rounding of
// x + sqrt(1+x²) for very negative x cannot reach log(0).
//
//	forward:  log(max(x + sqrt(1+x²), ε)), double precision
//	backward: grad / sqrt(1 + x²)
type Arsinh struct{}

// Forward implements Function.
func (Arsinh) Forward(x *Tensor) (*Tensor, *Saved) {
	return forwardWith(x,
		func(v float64) float64 { return v }, // full domain, no clamp
		func(z float64) float64 {
			return math.Log(math.Max(z+math.Sqrt(1+z*z), BoundaryEps))
		},
	)
}

// Backward implements Function.
func (Arsinh) Backward(saved *Saved, grad *Tensor) *Tensor {
	return backwardWith("Arsinh.Backward", saved, grad,
		func(z float64) float64 { return math.Sqrt(1 + z*z) })
}

// Arcosh is the inverse hyperbolic cosine with domain clamped to
// [1+BoundaryEps, ∞).
//
//	forward:  log(max(x + sqrt(x²−1), ε)), double precision
//	backward: grad / sqrt(x² − 1), x the clamped saved input
type Arcosh struct{}

// Forward implements Function.
func (Arcosh) Forward(x *Tensor) (*Tensor, *Saved) {
	return forwardWith(x,
		func(v float64) float64 { return math.Max(v, 1+BoundaryEps) },
		func(z float64) float64 {
			return math.Log(math.Max(z+math.Sqrt(z*z-1), BoundaryEps))
		},
	)
}

// Backward implements Function.
func (Arcosh) Backward(saved *Saved, grad *Tensor) *Tensor {
	return backwardWith("Arcosh.Backward", saved, grad,
		func(z float64) float64 { return math.Sqrt(z*z - 1) })
}

// ArtanhOf is the forward-only convenience wrapper around Artanh.
func ArtanhOf(x *Tensor) *Tensor {
	out, _ := Artanh{}.Forward(x)
	return out
}

// ArsinhOf is the forward-only convenience wrapper around Arsinh.
func ArsinhOf(x *Tensor) *Tensor {
	out, _ := Arsinh{}.Forward(x)
	return out
}

// ArcoshOf is the forward-only convenience wrapper around Arcosh.
func ArcoshOf(x *Tensor) *Tensor {
	out, _ := Arcosh{}.Forward(x)
	return out
}
