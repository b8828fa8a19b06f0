// SPDX-License-Identifier: MIT
// Package hypmath: clamped forward hyperbolic functions.
// cosh/sinh/tanh need no custom gradient rule — clipping alone keeps
// them finite, and the host differentiation can flow through the clip.

package hypmath

import "math"

// DefaultClamp bounds the argument of the direct hyperbolic functions.
// cosh(15) ≈ 1.6e6 stays far from float32 overflow while saturating
// gradients for extreme inputs.
const DefaultClamp = 15.0

// clip returns x limited to [-bound, bound].
func clip(x, bound float64) float64 {
	if x > bound {
		return bound
	}
	if x < -bound {
		return -bound
	}
	return x
}

// elementwise applies f in float64 to every element of x and returns a
// fresh tensor in the input precision. x is never mutated.
func elementwise(x *Tensor, f func(float64) float64) *Tensor {
	out := x.like()
	for i, v := range x.data {
		out.data[i] = float32(f(float64(v)))
	}
	return out
}

// Cosh evaluates cosh(clip(x, -clamp, clamp)) elementwise.
// Pass DefaultClamp unless the model dictates otherwise.
func Cosh(x *Tensor, clamp float64) *Tensor {
	return elementwise(x, func(v float64) float64 { return math.Cosh(clip(v, clamp)) })
}

// Sinh evaluates sinh(clip(x, -clamp, clamp)) elementwise.
func Sinh(x *Tensor, clamp float64) *Tensor {
	return elementwise(x, func(v float64) float64 { return math.Sinh(clip(v, clamp)) })
}

// Tanh evaluates tanh(clip(x, -clamp, clamp)) elementwise.
func Tanh(x *Tensor, clamp float64) *Tensor {
	return elementwise(x, func(v float64) float64 { return math.Tanh(clip(v, clamp)) })
}
