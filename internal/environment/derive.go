package environment

import (
	"math"

	"github.com/LeonidGrr/accrete-sub000/internal/body"
	"github.com/LeonidGrr/accrete-sub000/internal/doleparams"
	"github.com/LeonidGrr/accrete-sub000/internal/prngsrc"
)

// Ecosphere is the (inner, outer) habitable-zone radii of a primary star, in
// AU.
type Ecosphere struct {
	Inner float64
	Outer float64
}

// Derive fills every post-accretion physical and atmospheric field on
// planet, then recurses into its moons (environment is derived on moons too,
// not only on top-level planets). It is idempotent: calling it twice on an
// already-derived planet with the same inputs reproduces the same fields,
// modulo the randomized jitter terms (Inclination, VolInventory,
// PlanetAlbedo) which are expected to vary run to run like every other
// PRNG-consuming step in the engine.
func Derive(u *prngsrc.Uniform, planet *body.Planetesimal, stellarLuminosity, stellarMass, mainSeqAge float64, eco Ecosphere) {
	planet.OrbitZone = OrbitalZone(stellarLuminosity, planet.DistanceToPrimaryStar)
	planet.EarthMasses = planet.Mass * doleparams.EarthMassesPerSolarMass

	if planet.IsGasGiant {
		planet.Density = EmpiricalDensity(planet.Mass, planet.DistanceToPrimaryStar, eco.Outer, true)
		planet.Radius = VolumeRadius(planet.Mass, planet.Density)
	} else {
		planet.Radius = KothariRadius(planet.Mass, planet.IsGasGiant, planet.OrbitZone)
		planet.Density = VolumeDensity(planet.Mass, planet.Radius)
	}
	planet.EarthRadii = planet.Radius / doleparams.EarthRadiusKM

	planet.OrbitalPeriodDays = Period(planet.DistanceToPrimaryStar, planet.Mass, stellarMass)
	planet.LengthOfYear = planet.OrbitalPeriodDays / doleparams.DaysInYear
	planet.AxialTilt = Inclination(u, planet.DistanceToPrimaryStar)

	planet.SurfaceAccelCMS = AccelerationCMS2(planet.Mass, planet.Radius)
	planet.SurfaceGravity = GravityEarths(planet.SurfaceAccelCMS)
	planet.EscapeVelocityCMS = EscapeVelocityCMS(planet.Mass, planet.Radius)
	planet.EscapeVelocityKMS = planet.EscapeVelocityCMS / doleparams.CMPerMeter / 1000

	planet.MoleculeWeight = MoleculeLimit(planet.Mass, planet.Radius)
	planet.RMSVelocityCMS = RMSVelocityCMS(planet.MoleculeWeight, planet.DistanceToPrimaryStar)

	if planet.IsGasGiant {
		planet.SurfacePressureBar = 0
		planet.BoilingPointKelvin = 0
		planet.SurfaceTempKelvin = 0
		planet.Hydrosphere = 0
		planet.CloudCover = 0
		planet.IceCover = 0
		planet.Albedo = doleparams.GasGiantAlbedo
	} else {
		greenhouse := Greenhouse(planet.OrbitZone, planet.DistanceToPrimaryStar, eco.Outer, planet.SurfacePressureBar)
		planet.VolatileGasInventory = VolInventory(u, planet.Mass, planet.EscapeVelocityCMS, planet.RMSVelocityCMS, stellarMass, planet.OrbitZone, greenhouse)
		planet.SurfacePressureBar = Pressure(planet.VolatileGasInventory, planet.Radius, planet.SurfaceGravity)
		if planet.SurfacePressureBar == 0 {
			planet.BoilingPointKelvin = 0
		} else {
			planet.BoilingPointKelvin = BoilingPoint(planet.SurfacePressureBar)
		}
		planet.GreenhouseEffect = greenhouse

		iterateSurfaceTemp(u, planet, eco)
	}

	planet.IsTidallyLocked = mainSeqAge > tidalLockAge(planet)
	planet.HillSphere = doleparams.HillSphereAU(planet.DistanceToPrimaryStar, planet.E, stellarMass, planet.Mass)

	for i := range planet.Moons {
		moon := &planet.Moons[i]
		moon.DistanceToPrimaryStar = planet.DistanceToPrimaryStar
		Derive(u, moon, stellarLuminosity, stellarMass, mainSeqAge, eco)
	}
}

// VolumeRadius returns the radius (km) implied by a mass (solar masses) and
// density (g/cc).
func VolumeRadius(mass, density float64) float64 {
	volume := mass * doleparams.SolarMassInGrams / density
	return math.Pow((3.0*volume)/(4.0*math.Pi), 0.33) / doleparams.CMPerKM
}

// tidalLockAge is a coarse proxy: bodies very close to their star lock
// quickly; this is not part of the original formula set (day-length
// integration was left as pseudocode in the reference implementation) and
// is documented as a simplification in DESIGN.md.
func tidalLockAge(planet *body.Planetesimal) float64 {
	if planet.DistanceToPrimaryStar <= 0 {
		return 0
	}
	return 1.0e9 * math.Pow(planet.DistanceToPrimaryStar, 3)
}

// iterateSurfaceTemp runs the fixed-point loop for surface temperature,
// hydrosphere/cloud/ice fractions and albedo until the temperature changes
// by less than 1 Kelvin between iterations, starting from the Earth-albedo
// effective temperature.
func iterateSurfaceTemp(u *prngsrc.Uniform, planet *body.Planetesimal, eco Ecosphere) {
	opticalDepth := Opacity(planet.MoleculeWeight, planet.SurfacePressureBar)
	effTemp := EffTemp(eco.Inner, planet.DistanceToPrimaryStar, doleparams.EarthAlbedo)
	greenRise := GreenRise(opticalDepth, effTemp, planet.SurfacePressureBar)
	surfaceTemp := effTemp + greenRise
	previousTemp := surfaceTemp - 5 // force at least one more pass

	water := HydrosphereFraction(planet.VolatileGasInventory, planet.Radius)
	clouds := CloudFraction(surfaceTemp, planet.MoleculeWeight, planet.Radius, water)
	ice, _ := IceFraction(water, surfaceTemp)
	albedo := doleparams.EarthAlbedo

	for i := 0; i < 32 && math.Abs(surfaceTemp-previousTemp) > 1.0; i++ {
		previousTemp = surfaceTemp

		if surfaceTemp >= planet.BoilingPointKelvin && planet.BoilingPointKelvin > 0 || surfaceTemp <= doleparams.FreezingPointOfWaterK {
			water = 0
		} else {
			water = HydrosphereFraction(planet.VolatileGasInventory, planet.Radius)
		}
		clouds = CloudFraction(surfaceTemp, planet.MoleculeWeight, planet.Radius, water)
		ice, surfaceTemp = IceFraction(water, surfaceTemp)

		albedo = PlanetAlbedo(u, water, clouds, ice, planet.SurfacePressureBar)

		opticalDepth = Opacity(planet.MoleculeWeight, planet.SurfacePressureBar)
		effTemp = EffTemp(eco.Inner, planet.DistanceToPrimaryStar, albedo)
		greenRise = GreenRise(opticalDepth, effTemp, planet.SurfacePressureBar)
		surfaceTemp = effTemp + greenRise
	}

	planet.Hydrosphere = water
	planet.CloudCover = clouds
	planet.IceCover = ice
	planet.Albedo = albedo
	planet.SurfaceTempKelvin = surfaceTemp
}
