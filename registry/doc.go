// Package registry maps geometry names to edge rules.
//
// The Generator never names a concrete geometry: callers resolve a name plus
// a Descriptor into a builder.Geometry here and hand that to the generator.
// New geometries (including registered compositions) are added with Register
// without touching the generator.
//
// Default() returns the process-wide registry preloaded with the built-in
// rules (lattice, line, cycle, grid, torus, hypercube, star, wheel, complete,
// barbell). Registries are safe for concurrent use.
//
// Errors:
//
//	ErrUnknownGeometry   - Lookup/Resolve of a name that was never registered.
//	ErrDuplicateGeometry - Register of a name that is already taken.
package registry
