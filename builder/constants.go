// Package builder defines shared constants used by the cloud constructors.
package builder

//-----------------------------------------------------------------------------
// Constructor names, used to prefix errors.
//-----------------------------------------------------------------------------

const (
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
	// MethodRandomCloud is the canonical name for the RandomCloud constructor.
	MethodRandomCloud = "RandomCloud"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodSphereShell is the canonical name for the SphereShell constructor.
	MethodSphereShell = "SphereShell"
	// MethodPoint is the canonical name for the Point constructor.
	MethodPoint = "Point"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinRandomPoints is the smallest RandomCloud.
const MinRandomPoints = 1

// MinGridDim is the smallest number of lattice points per axis.
// Two per axis is the smallest grid that is not flat.
const MinGridDim = 2

// MinSpherePoints is the smallest SphereShell that spans a volume.
const MinSpherePoints = 4

// Golden ratio, used by the icosahedron, the dodecahedron and SphereShell.
const phi = 1.618033988749894848204586834365638117720309179805762862135
