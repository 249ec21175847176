// Package filter implements the single-channel image filters used by the
// ink simulation:
//   - Gaussian blur (separable, edge-clamped) for the diffusion halo
//   - exact Euclidean distance transform for stroke-core protection
//
// All filters operate on row-major float64 planes of width*height values
// and return freshly allocated results; inputs are never modified.
package filter
