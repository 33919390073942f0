package accretion

import (
	"sort"

	"github.com/LeonidGrr/accrete-sub000/internal/body"
	"github.com/LeonidGrr/accrete-sub000/internal/doleparams"
	"github.com/LeonidGrr/accrete-sub000/internal/dust"
	"github.com/LeonidGrr/accrete-sub000/internal/prngsrc"
)

// NucleusHook is invoked once for every nucleus the driver seeds, whether or
// not it survives to accrete anything.
type NucleusHook func(body.Planetesimal)

// DriverHooks bundles every observation point the top-level driver loop can
// report to the engine's event log.
type DriverHooks struct {
	Hook
	NucleusCreated      NucleusHook
	NucleusAccreted     func(body.Planetesimal)
	GasGiantFormed      func(body.Planetesimal)
	DustBandsUpdated    func(dust.Bands)
}

// Params bundles the per-star tunables the driver needs on every iteration.
type Params struct {
	StellarMass       float64
	StellarLuminosity float64
	DustDensityCoeff  float64
	K                 float64
	B                 float64
	CloudEccentricity float64
	PlanetsLimit      *int
}

// DistributePlanetaryMasses runs the dust-sweep loop until no dust remains
// available in [innermostPlanet, outermostPlanet] (or PlanetsLimit planets
// have formed), seeding, growing and resolving one nucleus per pass. It
// returns the final planet list (sorted by A) and the final dust-band
// ledger.
func DistributePlanetaryMasses(u *prngsrc.Uniform, idGen func() body.ID, p Params, hooks DriverHooks) ([]body.Planetesimal, dust.Bands) {
	innerBound := doleparams.InnermostPlanet(p.StellarMass)
	outerBound := doleparams.OutermostPlanet(p.StellarMass)
	outerDust := doleparams.StellarDustLimit(p.StellarMass)

	bands := dust.NewInitial(outerDust)
	var planets []body.Planetesimal

	dustLeft := true
	for dustLeft {
		axisRandom := u.Float64()
		eccRandom := u.Float64()
		nucleus := body.New(idGen(), innerBound, outerBound, p.CloudEccentricity, axisRandom, eccRandom)
		if hooks.NucleusCreated != nil {
			hooks.NucleusCreated(nucleus)
		}

		inside := doleparams.InnerEffectLimit(nucleus.A, nucleus.E, nucleus.Mass, p.CloudEccentricity)
		outside := doleparams.OuterEffectLimit(nucleus.A, nucleus.E, nucleus.Mass, p.CloudEccentricity)

		if bands.Available(inside, outside) {
			dustDensity := doleparams.DustDensity(p.DustDensityCoeff, p.StellarMass, nucleus.A)
			critMass := doleparams.CriticalLimit(p.B, nucleus.A, nucleus.E, p.StellarLuminosity)

			nucleus.Mass = dust.AccreteDust(nucleus.Mass, nucleus.A, nucleus.E, critMass, bands, p.CloudEccentricity, dustDensity, p.K)

			min := doleparams.InnerEffectLimit(nucleus.A, nucleus.E, nucleus.Mass, p.CloudEccentricity)
			max := doleparams.OuterEffectLimit(nucleus.A, nucleus.E, nucleus.Mass, p.CloudEccentricity)
			bands = dust.UpdateLanes(bands, min, max, nucleus.Mass, critMass)
			bands = dust.Compress(bands)
			if hooks.DustBandsUpdated != nil {
				hooks.DustBandsUpdated(bands)
			}

			if nucleus.Mass != 0 && nucleus.Mass != doleparams.ProtoplanetMass {
				if nucleus.Mass > critMass {
					nucleus.IsGasGiant = true
				}
				if hooks.NucleusAccreted != nil {
					hooks.NucleusAccreted(nucleus)
				}
				if nucleus.IsGasGiant && hooks.GasGiantFormed != nil {
					hooks.GasGiantFormed(nucleus)
				}

				planets = append(planets, nucleus)
				sort.Slice(planets, func(i, j int) bool { return planets[i].A < planets[j].A })
				planets = Resolve(u, p.StellarLuminosity, p.CloudEccentricity, planets, hooks.Hook)
			}
		}

		dustStillLeft := bands.Available(innerBound, outerBound)
		if p.PlanetsLimit != nil {
			dustLeft = len(planets) < *p.PlanetsLimit && dustStillLeft
		} else {
			dustLeft = dustStillLeft
		}
	}

	return planets, bands
}
