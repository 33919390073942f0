package body

import "math"

// Planetesimal is a body anywhere in its lifecycle: a bare accreting
// nucleus, a fully formed planet, or a captured moon. The same struct
// represents all three per the reference model; IsMoon distinguishes moons
// from top-level planets and Moons holds a body's own satellites.
type Planetesimal struct {
	ID ID

	A float64 // semi-major axis, AU (star frame for planets, host frame for moons)
	E float64 // orbital eccentricity
	DistanceToPrimaryStar float64

	Mass        float64 // solar masses
	EarthMasses float64
	IsGasGiant  bool

	OrbitZone int // 1, 2 or 3; see environment package
	Radius    float64 // km
	EarthRadii float64
	Density   float64 // g/cc

	ResonantPeriod    bool
	AxialTilt         float64 // degrees
	EscapeVelocityCMS float64
	SurfaceAccelCMS   float64
	SurfaceGravity    float64 // in Earth gravities
	RMSVelocityCMS    float64
	EscapeVelocityKMS float64

	OrbitalPeriodDays float64
	DayHours          float64
	LengthOfYear      float64 // Earth years
	IsTidallyLocked   bool

	MoleculeWeight        float64
	VolatileGasInventory  float64
	GreenhouseEffect      bool
	Albedo                float64
	SurfacePressureBar    float64
	SurfaceTempKelvin     float64
	BoilingPointKelvin    float64
	Hydrosphere           float64
	CloudCover            float64
	IceCover              float64

	IsMoon         bool
	IsDwarfPlanet  bool
	OrbitClearing  float64
	HillSphere     float64

	Moons []Planetesimal
	Rings []Ring
}

// New creates a bare nucleus with a uniformly random axis in [innerBound,
// outerBound) and an eccentricity drawn from the Dole distribution, with mass
// fixed at the bare-nucleus protoplanet mass.
func New(id ID, innerBound, outerBound, cloudEccentricity, axisRandom, eccentricityRandom float64) Planetesimal {
	a := innerBound + axisRandom*(outerBound-innerBound)
	e := 1 - math.Pow(eccentricityRandom, cloudEccentricity)
	return Planetesimal{
		ID:                    id,
		A:                     a,
		E:                     e,
		DistanceToPrimaryStar: a,
		Mass:                  protoplanetMass,
	}
}

const protoplanetMass = 1.0e-15
