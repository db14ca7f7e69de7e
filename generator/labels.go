// SPDX-License-Identifier: MIT
// Package: geokg/generator
//
// labels.go - decoration of base relation labels for directed output.

package generator

const (
	// ForwardSuffix marks the direction of travel along a step.
	ForwardSuffix = "-forward"
	// BackwardSuffix marks the inverse of a forward step.
	BackwardSuffix = "-backward"
)

// Forward returns base + ForwardSuffix.
func Forward(base string) string { return base + ForwardSuffix }

// Backward returns base + BackwardSuffix.
func Backward(base string) string { return base + BackwardSuffix }

// decorate returns the labels a base label expands to under directed/inverse.
func decorate(base string, directed, inverse bool) []string {
	switch {
	case !directed:
		return []string{base}
	case inverse:
		return []string{Forward(base), Backward(base)}
	default:
		return []string{Forward(base)}
	}
}
