// Package builder defines shared constants used by edge rules, ensuring
// consistent geometry names and relation labels across the registry,
// the generator and composition.
package builder

//-----------------------------------------------------------------------------
// Geometry names (registry keys for the built-in rules)
//-----------------------------------------------------------------------------

const (
	// NameLattice is the unconstrained per-axis step geometry.
	NameLattice = "lattice"
	// NameLine is a 1-D bounded lattice.
	NameLine = "line"
	// NameCycle is a 1-D periodic lattice.
	NameCycle = "cycle"
	// NameGrid is a bounded lattice of any dimensionality.
	NameGrid = "grid"
	// NameTorus is a periodic lattice of any dimensionality.
	NameTorus = "torus"
	// NameHypercube is a bounded lattice whose every extent is 2.
	NameHypercube = "hypercube"
	// NameHexagonal is the honeycomb lattice on a bounded 2-D grid.
	NameHexagonal = "hexagonal"
	// NameStar is the hub-and-spokes geometry.
	NameStar = "star"
	// NameSinkStar is the star with every spoke pointing at the hub.
	NameSinkStar = "sink-star"
	// NameWheel is a star whose leaves also form a cycle.
	NameWheel = "wheel"
	// NameComplete is the complete graph over all points.
	NameComplete = "complete"
	// NameBarbell is two cliques joined by a bridge.
	NameBarbell = "barbell"
)

//-----------------------------------------------------------------------------
// Base relation labels
//-----------------------------------------------------------------------------

const (
	// AxisRelationPrefix prefixes the per-axis lattice label: "axis-0", "axis-1", ...
	AxisRelationPrefix = "axis-"
	// RelationSpoke joins a hub and a leaf (star, sink-star, wheel).
	RelationSpoke = "spoke"
	// RelationRim joins consecutive rim points of a wheel.
	RelationRim = "rim"
	// RelationLink joins any two points of a complete graph.
	RelationLink = "link"
	// RelationClique joins two points inside one barbell bell.
	RelationClique = "clique"
	// RelationBridge joins the two barbell bells.
	RelationBridge = "bridge"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinWheelPoints is the smallest wheel: a hub plus a rim cycle of 3.
const MinWheelPoints = 4

// HypercubeExtent is the extent every hypercube axis must have.
const HypercubeExtent = 2

// BarbellBells is the extent of the barbell's first axis.
const BarbellBells = 2
