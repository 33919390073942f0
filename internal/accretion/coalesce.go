// Package accretion drives the Dole/Fogg dust-sweep loop and resolves
// collisions between planetesimals into mergers, moon captures and ring
// formation.
package accretion

import (
	"math"

	"github.com/LeonidGrr/accrete-sub000/internal/body"
	"github.com/LeonidGrr/accrete-sub000/internal/doleparams"
	"github.com/LeonidGrr/accrete-sub000/internal/prngsrc"
)

// Intersect reports whether two planetesimals' gravitational effect zones
// overlap closely enough that they interact (collide, merge or one captures
// the other).
func Intersect(p, prev body.Planetesimal, cloudEccentricity float64) bool {
	dist := prev.A - p.A

	var dist1, dist2 float64
	if dist > 0 {
		dist1 = doleparams.OuterEffectLimit(p.A, p.E, p.Mass, cloudEccentricity) - p.A
		dist2 = prev.A - doleparams.InnerEffectLimit(prev.A, prev.E, prev.Mass, cloudEccentricity)
	} else {
		dist1 = p.A - doleparams.InnerEffectLimit(p.A, p.E, p.Mass, cloudEccentricity)
		dist2 = doleparams.OuterEffectLimit(prev.A, prev.E, prev.Mass, cloudEccentricity) - prev.A
	}

	return math.Abs(dist) < math.Abs(dist1) || math.Abs(dist) < math.Abs(dist2)
}

// CoalesceTwo merges two planetesimals into one body at their
// mass-weighted orbit, per the standard two-body merge used throughout this
// model (plain collisions, moon captures and moon mergers alike). The
// result keeps the ID of the heavier input; on an exact mass tie, a's ID
// wins.
func CoalesceTwo(a, b body.Planetesimal) body.Planetesimal {
	newMass := a.Mass + b.Mass
	newAxis := newMass / (a.Mass/a.A + b.Mass/b.A)
	term1 := a.Mass * math.Sqrt(a.A*(1-a.E*a.E))
	term2 := b.Mass * math.Sqrt(b.A*(1-b.E*b.E))
	term3 := (term1 + term2) / (newMass * math.Sqrt(newAxis))
	term4 := 1 - term3*term3
	newEccn := math.Sqrt(math.Abs(term4))

	merged := a
	if b.Mass > a.Mass {
		merged = b
	}
	merged.Mass = newMass
	merged.A = newAxis
	merged.E = newEccn
	merged.DistanceToPrimaryStar = newAxis
	merged.IsGasGiant = a.IsGasGiant || b.IsGasGiant
	return merged
}

// CaptureMoon has the larger body capture the smaller as a moon, recomputing
// the host's orbit from the merge formula and re-scattering every moon
// (including the new one) uniformly within the host's Hill sphere, per
// SPEC_FULL.md's resolution of the moon re-scatter range.
func CaptureMoon(u *prngsrc.Uniform, larger, smaller body.Planetesimal) body.Planetesimal {
	planet := larger
	moon := smaller
	moon.IsMoon = true

	newMass := planet.Mass + moon.Mass
	newAxis := newMass / (planet.Mass/planet.A + moon.Mass/moon.A)
	term1 := planet.Mass * math.Sqrt(planet.A*(1-planet.E*planet.E))
	term2 := moon.Mass * math.Sqrt(moon.A*(1-moon.E*moon.E))
	term3 := (term1 + term2) / (newMass * math.Sqrt(newAxis))
	term4 := 1 - term3*term3
	newEccn := math.Sqrt(math.Abs(term4))

	planet.A = newAxis
	planet.E = newEccn
	planet.DistanceToPrimaryStar = newAxis
	planet.Mass = newMass

	planet.Moons = append(planet.Moons, moon.Moons...)
	planet.Moons = append(planet.Moons, moon)

	for i := range planet.Moons {
		m := &planet.Moons[i]
		hill := doleparams.HillSphereAU(planet.A, planet.E, planet.Mass, m.Mass)
		m.A = u.Range(0, hill)
		m.DistanceToPrimaryStar = planet.A
	}

	return planet
}
