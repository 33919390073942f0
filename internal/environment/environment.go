// Package environment derives the post-accretion physical and atmospheric
// properties of a planet (and, recursively, its moons): radius, density,
// gravity, atmosphere composition proxies, and the iterated surface
// temperature.
package environment

import (
	"math"

	"github.com/LeonidGrr/accrete-sub000/internal/doleparams"
	"github.com/LeonidGrr/accrete-sub000/internal/prngsrc"
)

// OrbitalZone classifies a body's distance from its star into one of three
// Fogg zones, used to select Kothari-radius coefficients and volatile
// retention proportions.
func OrbitalZone(luminosity, orbitalRadius float64) int {
	switch {
	case orbitalRadius < 4*math.Sqrt(luminosity):
		return 1
	case orbitalRadius < 15*math.Sqrt(luminosity):
		return 2
	default:
		return 3
	}
}

// KothariRadius returns the equatorial radius (km) of a body of the given
// mass (solar masses), gas-giant status and orbital zone, per Kothari's
// eq.23 as carried by Fogg's eq.9.
func KothariRadius(mass float64, giant bool, zone int) float64 {
	var atomicWeight, atomicNum float64
	switch {
	case zone == 1 && giant:
		atomicWeight, atomicNum = 9.5, 4.5
	case zone == 1 && !giant:
		atomicWeight, atomicNum = 15.0, 8.0
	case zone == 2 && giant:
		atomicWeight, atomicNum = 2.47, 2.0
	case zone == 2 && !giant:
		atomicWeight, atomicNum = 10.0, 5.0
	case zone == 3 && giant:
		atomicWeight, atomicNum = 7.0, 4.0
	case zone == 3 && !giant:
		atomicWeight, atomicNum = 10.0, 5.0
	}

	temp := atomicWeight * atomicNum
	temp = 2.0 * doleparams.Beta20 * math.Pow(doleparams.SolarMassInGrams, 0.3) / doleparams.A1_20 * math.Pow(temp, 0.3)

	temp2 := doleparams.A2_20 * math.Pow(atomicWeight, 1.3) * math.Pow(doleparams.SolarMassInGrams, 0.6)
	temp2 = temp2 * math.Pow(mass, 0.6)
	temp2 = temp2 / (doleparams.A1_20 * math.Pow(atomicNum, 2.0))
	temp2 += 1.0

	temp = temp / temp2
	temp = temp * math.Pow(mass, 0.3) / doleparams.CMPerKM
	temp /= doleparams.JimsFudge

	return temp
}

// EmpiricalDensity approximates the density (g/cc) of a gas giant from its
// mass and position relative to the ecosphere.
func EmpiricalDensity(mass, orbitalRadius, ecosphereRadius float64, gasGiant bool) float64 {
	density := math.Pow(mass*doleparams.EarthMassesPerSolarMass, 1.0/8.0)
	density *= math.Pow(ecosphereRadius/orbitalRadius, 0.25)
	if gasGiant {
		return density * 1.2
	}
	return density * 5.5
}

// VolumeDensity returns the density (g/cc) implied by a mass and radius.
func VolumeDensity(mass, equatorialRadiusKM float64) float64 {
	radiusCM := equatorialRadiusKM * doleparams.CMPerKM
	volume := (4.0 * math.Pi * math.Pow(radiusCM, 3)) / 3.0
	return mass * doleparams.SolarMassInGrams / volume
}

// Period returns the orbital period, in Earth days, of a body separated by
// `separation` AU from a body pair with the given masses (Kepler's third
// law).
func Period(separation, smallMass, largeMass float64) float64 {
	periodInYears := math.Sqrt(math.Pow(separation, 3) / (smallMass + largeMass))
	return periodInYears * doleparams.DaysInYear
}

// Inclination draws the axial tilt (degrees, mod 360) of a body at the given
// orbital radius.
func Inclination(u *prngsrc.Uniform, orbitalRadius float64) float64 {
	inclination := math.Pow(orbitalRadius, 0.2) * u.About(doleparams.EarthAxialTilt, 0.4)
	return math.Mod(inclination, 360)
}

// EscapeVelocityCMS returns escape velocity in cm/sec.
func EscapeVelocityCMS(mass, radiusKM float64) float64 {
	massGrams := mass * doleparams.SolarMassInGrams
	radiusCM := radiusKM * doleparams.CMPerKM
	return math.Sqrt(2.0 * doleparams.GravConstant * massGrams / radiusCM)
}

// RMSVelocityCMS returns the root-mean-square molecular velocity (cm/sec)
// for a gas of the given molecular weight at the given orbital radius.
func RMSVelocityCMS(molecularWeight, orbitalRadius float64) float64 {
	exosphericTemp := doleparams.EarthExosphereTempK / (orbitalRadius * orbitalRadius)
	return math.Sqrt((3.0*doleparams.MolarGasConst*exosphericTemp)/molecularWeight) * doleparams.CMPerMeter
}

// MoleculeLimit returns the smallest molecular weight a body can retain.
func MoleculeLimit(mass, equatorialRadiusKM float64) float64 {
	escape := EscapeVelocityCMS(mass, equatorialRadiusKM)
	return 3.0 * math.Pow(doleparams.GasRetentionThreshold*doleparams.CMPerMeter, 2) *
		doleparams.MolarGasConst * doleparams.EarthExosphereTempK / (escape * escape)
}

// AccelerationCMS2 returns surface gravitational acceleration in cm/sec^2.
func AccelerationCMS2(mass, radiusKM float64) float64 {
	return doleparams.GravConstant * mass * doleparams.SolarMassInGrams / math.Pow(radiusKM*doleparams.CMPerKM, 2)
}

// GravityEarths converts an acceleration in cm/sec^2 to Earth gravities.
func GravityEarths(accelerationCMS2 float64) float64 {
	return accelerationCMS2 / doleparams.EarthAccelerationCMS2
}

// Greenhouse reports whether a body in zone 1 with positive surface
// pressure, closer than GreenhouseEffectConst*ecosphereRadius, suffers a
// greenhouse effect.
func Greenhouse(zone int, orbitalRadius, ecosphereRadius, surfacePressure float64) bool {
	greenhouseRadius := ecosphereRadius * doleparams.GreenhouseEffectConst
	return orbitalRadius < greenhouseRadius && zone == 1 && surfacePressure > 0
}

// VolInventory returns Fogg's eq.17 volatile gas inventory.
func VolInventory(u *prngsrc.Uniform, mass, escapeVel, rmsVel, stellarMass float64, zone int, greenhouseEffect bool) float64 {
	velocityRatio := escapeVel / rmsVel
	if velocityRatio < doleparams.GasRetentionThreshold {
		return 0
	}

	var proportionConst float64
	switch zone {
	case 1:
		proportionConst = 100000.0
	case 2:
		proportionConst = 75000.0
	case 3:
		proportionConst = 250.0
	default:
		proportionConst = 10.0
	}

	massInEarthUnits := mass * doleparams.EarthMassesPerSolarMass
	temp1 := proportionConst * massInEarthUnits / stellarMass
	temp2 := u.About(temp1, 0.2)

	if greenhouseEffect {
		return temp2
	}
	return temp2 / 100.0
}

// Pressure returns Fogg's eq.18 surface pressure in millibars.
func Pressure(volatileGasInventory, equatorialRadiusKM, gravity float64) float64 {
	ratio := doleparams.EarthRadiusKM / equatorialRadiusKM
	return volatileGasInventory * gravity / (ratio * ratio)
}

// BoilingPoint returns the boiling point of water (Kelvin) at the given
// surface pressure (millibars), per Fogg's eq.21.
func BoilingPoint(surfacePressureMBar float64) float64 {
	surfacePressureBar := surfacePressureMBar / 1000.0
	return 1.0 / (math.Log(surfacePressureBar)/-5050.5 + 1.0/373.0)
}

// HydrosphereFraction returns Fogg's eq.22 fraction of surface covered by
// water.
func HydrosphereFraction(volatileGasInventory, planetaryRadiusKM float64) float64 {
	frac := 0.75 * volatileGasInventory / 1000.0 * math.Pow(doleparams.EarthRadiusKM/planetaryRadiusKM, 2)
	if frac >= 1 {
		return 1
	}
	return frac
}

// CloudFraction returns Fogg's eq.23 fraction of cloud cover.
func CloudFraction(surfaceTemp, smallestMWRetained, equatorialRadiusKM, hydrosphereFraction float64) float64 {
	if smallestMWRetained > doleparams.WaterVaporMW {
		return 0
	}
	surfaceArea := 4.0 * math.Pi * equatorialRadiusKM * equatorialRadiusKM
	hydrosphereMass := hydrosphereFraction * surfaceArea * doleparams.EarthWaterMassPerAreaKM
	waterVaporKG := (0.00000001 * hydrosphereMass) * math.Exp(doleparams.Q2_36*(surfaceTemp-288.0))
	fraction := doleparams.CloudCoverageFactor * waterVaporKG / surfaceArea
	if fraction >= 1 {
		return 1
	}
	return fraction
}

// IceFraction returns Fogg's eq.24 fraction of surface covered by ice, and
// the (possibly clamped) surface temperature it was evaluated at.
func IceFraction(hydrosphereFraction, surfaceTemp float64) (iceFrac, clampedTemp float64) {
	if surfaceTemp > 328.0 {
		surfaceTemp = 328.0
	}
	temp := math.Pow((328.0-surfaceTemp)/70.0, 5)
	if temp > 1.5*hydrosphereFraction {
		temp = 1.5 * hydrosphereFraction
	}
	if temp >= 1 {
		return 1, surfaceTemp
	}
	return temp, surfaceTemp
}

// EffTemp returns Fogg's eq.19 effective temperature (Kelvin).
func EffTemp(ecosphereRadius, orbitalRadius, albedo float64) float64 {
	return math.Sqrt(ecosphereRadius/orbitalRadius) * math.Pow((1-albedo)/0.7, 0.25) * doleparams.EarthEffectiveTempK
}

// GreenRise returns Fogg's eq.20 temperature rise from the greenhouse
// effect (Kelvin).
func GreenRise(opticalDepth, effectiveTemp, surfacePressure float64) float64 {
	convectionFactor := doleparams.EarthConvectionFactor * math.Pow(surfacePressure/doleparams.EarthSurfacePresMBar, 0.25)
	return (math.Pow(1+0.75*opticalDepth, 0.25) - 1) * effectiveTemp * convectionFactor
}

// PlanetAlbedo computes the area-weighted albedo of rock, water, ice and
// cloud, with cloud cover deducted proportionally from the other three
// components. It mutates nothing and returns only the albedo; the
// cloud-adjusted fractions are local to the call and are not returned.
func PlanetAlbedo(u *prngsrc.Uniform, waterFraction, cloudFraction, iceFraction, surfacePressure float64) (albedo float64) {
	rockFraction := 1.0 - waterFraction - iceFraction
	components := 0.0
	if waterFraction > 0 {
		components++
	}
	if iceFraction > 0 {
		components++
	}
	if rockFraction > 0 {
		components++
	}
	if components == 0 {
		components = 1
	}

	cloudAdjustment := cloudFraction / components

	if rockFraction >= cloudAdjustment {
		rockFraction -= cloudAdjustment
	} else {
		rockFraction = 0
	}
	if waterFraction > cloudAdjustment {
		waterFraction -= cloudAdjustment
	} else {
		waterFraction = 0
	}
	if iceFraction > cloudAdjustment {
		iceFraction -= cloudAdjustment
	} else {
		iceFraction = 0
	}

	cloudContribution := cloudFraction * u.About(doleparams.CloudAlbedo, 0.2)
	waterContribution := waterFraction * u.About(doleparams.WaterAlbedo, 0.2)

	var rockContribution, iceContribution float64
	if surfacePressure == 0 {
		rockContribution = rockFraction * u.About(doleparams.AirlessRockyAlbedo, 0.3)
		iceContribution = iceFraction * u.About(doleparams.AirlessIceAlbedo, 0.4)
	} else {
		rockContribution = rockFraction * u.About(doleparams.RockyAlbedo, 0.1)
		iceContribution = iceFraction * u.About(doleparams.IceAlbedo, 0.1)
	}

	return cloudContribution + rockContribution + waterContribution + iceContribution
}

// Opacity returns the dimensionless optical depth used by GreenRise, banded
// by molecular weight and surface pressure.
func Opacity(molecularWeight, surfacePressure float64) float64 {
	opticalDepth := 0.0
	switch {
	case molecularWeight >= 0 && molecularWeight < 10:
		opticalDepth += 3.0
	case molecularWeight >= 10 && molecularWeight < 20:
		opticalDepth += 2.34
	case molecularWeight >= 20 && molecularWeight < 30:
		opticalDepth += 1.0
	case molecularWeight >= 30 && molecularWeight < 45:
		opticalDepth += 0.15
	case molecularWeight >= 45 && molecularWeight < 100:
		opticalDepth += 0.05
	}

	switch {
	case surfacePressure >= 70*doleparams.EarthSurfacePresMBar:
		opticalDepth *= 8.333
	case surfacePressure >= 50*doleparams.EarthSurfacePresMBar:
		opticalDepth *= 6.666
	case surfacePressure >= 30*doleparams.EarthSurfacePresMBar:
		opticalDepth *= 3.333
	case surfacePressure >= 10*doleparams.EarthSurfacePresMBar:
		opticalDepth *= 2.0
	case surfacePressure >= 5*doleparams.EarthSurfacePresMBar:
		opticalDepth *= 1.5
	}

	return opticalDepth
}
