// SPDX-License-Identifier: MIT
// Package: geokg/core
//
// errors.go - sentinel errors for the core package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package core

import "errors"

// ErrInvalidGeometry indicates a malformed Descriptor: dimensionality < 1,
// extents/periodic lengths that disagree with the dimensionality, or a
// non-positive extent. Rules reuse it for geometry-specific shape violations.
var ErrInvalidGeometry = errors.New("core: invalid geometry")

// ErrMalformedID indicates an entity identifier that is not a comma-separated
// list of integers of the expected length.
var ErrMalformedID = errors.New("core: malformed entity id")
