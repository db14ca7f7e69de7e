// Package compose builds Cartesian-product geometries.
//
// Compose(a, b, ...) yields a first-class builder.Geometry whose Descriptor is
// the axis-wise concatenation of the inputs and whose Rule is a Product:
// axis i belongs to exactly one factor, and stepping along it moves only that
// factor's sub-coordinate while every other factor is held fixed. This is the
// standard product-graph construction, so line(m) × line(n) is the m×n grid and
// line × cycle is a cylinder.
//
// The result is generated by the ordinary generator.Generate path; there is no
// special composite code path.
//
// Labels are namespaced per factor as "<k>:<name>.<base>" where k is the
// factor's position, e.g. "0:line.axis-0" and "1:cycle.axis-0". The position
// ends at the first ':', so factors at different positions never share a
// prefix whatever their names. Nested products
// are flattened, so Compose(Compose(a, b), c) and Compose(a, Compose(b, c))
// produce the same geometry, labels included.
//
// Errors:
//
//	core.ErrInvalidGeometry - fewer than two inputs, an invalid input, or
//	                          inputs that disagree on Directed.
//	ErrRelationCollision    - a factor reports the same base label twice.
package compose
