// Package hypmath provides numerically-stabilized hyperbolic primitives
// for hyperbolic-geometry embedding models.
//
// Two families live here:
//
//   - Clamped forward functions Cosh, Sinh and Tanh, which clip their
//     argument into [-clamp, clamp] before evaluation so that large
//     magnitudes saturate instead of overflowing.
//   - Inverse functions Artanh, Arsinh and Arcosh as Function values: an
//     explicit Forward returning the output together with the saved
//     state a paired Backward needs to produce exact gradients. Naive
//     differentiation through clamping, square roots and logarithms is
//     wrong or unstable at the domain boundaries, hence the custom rules.
//
// Tensors cross the API as float32 (the embedding convention of the
// surrounding system); every forward formula is evaluated in float64 and
// cast back, which suppresses the catastrophic cancellation inherent in
// log(x + sqrt(x²±1)) at small magnitudes. Backward rules consume the
// clamped saved input, not the raw one, keeping gradients consistent
// with what the forward pass actually evaluated.
//
// All functions are stateless and safe for concurrent use; the saved
// state of a Forward call is owned by its single paired Backward call.
package hypmath
