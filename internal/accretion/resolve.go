package accretion

import (
	"sort"

	"github.com/LeonidGrr/accrete-sub000/internal/body"
	"github.com/LeonidGrr/accrete-sub000/internal/doleparams"
	"github.com/LeonidGrr/accrete-sub000/internal/environment"
	"github.com/LeonidGrr/accrete-sub000/internal/prngsrc"
)

// Hook receives a notification for every collision resolution so the caller
// (the engine, which owns the event log) can record it. Any method may be
// nil.
type Hook struct {
	Coalesced   func(smaller, larger, result body.Planetesimal)
	MoonCoalesced func(smaller, larger, result body.Planetesimal)
	Captured    func(moon, result body.Planetesimal)
	MoonToRing  func(host body.Planetesimal, moon body.Planetesimal, ring body.Ring)
}

func (h Hook) coalesced(smaller, larger, result body.Planetesimal) {
	if h.Coalesced != nil {
		h.Coalesced(smaller, larger, result)
	}
}

func (h Hook) moonCoalesced(smaller, larger, result body.Planetesimal) {
	if h.MoonCoalesced != nil {
		h.MoonCoalesced(smaller, larger, result)
	}
}

func (h Hook) captured(moon, result body.Planetesimal) {
	if h.Captured != nil {
		h.Captured(moon, result)
	}
}

func (h Hook) moonToRing(host body.Planetesimal, moon body.Planetesimal, ring body.Ring) {
	if h.MoonToRing != nil {
		h.MoonToRing(host, moon, ring)
	}
}

// Resolve scans a list of planets sorted by semi-major axis, merging,
// moon-capturing or ring-forming every pair whose gravitational effect
// zones intersect, and recurses into the winning body's moons. Planets is
// expected sorted ascending by A on entry and is returned sorted ascending
// by A (invariant P4).
func Resolve(u *prngsrc.Uniform, stellarLuminosity, cloudEccentricity float64, planets []body.Planetesimal, hook Hook) []body.Planetesimal {
	next := make([]body.Planetesimal, 0, len(planets))
	for i, p := range planets {
		if i == 0 {
			next = append(next, p)
			continue
		}

		prev := &next[len(next)-1]
		if !Intersect(p, *prev, cloudEccentricity) {
			next = append(next, p)
			continue
		}

		if p.IsMoon {
			result := CoalesceTwo(*prev, p)
			hook.moonCoalesced(p, *prev, result)
			*prev = result
			continue
		}

		larger, smaller := p, *prev
		if prev.Mass >= p.Mass {
			larger, smaller = *prev, p
		}

		larger.OrbitZone = environment.OrbitalZone(stellarLuminosity, larger.DistanceToPrimaryStar)
		larger.Radius = environment.KothariRadius(larger.Mass, larger.IsGasGiant, larger.OrbitZone)
		smaller.OrbitZone = environment.OrbitalZone(stellarLuminosity, smaller.DistanceToPrimaryStar)
		smaller.Radius = environment.KothariRadius(smaller.Mass, smaller.IsGasGiant, smaller.OrbitZone)

		roche := doleparams.RocheLimitAU(larger.Mass, smaller.Mass, smaller.Radius)
		if abs(prev.A-p.A) <= roche {
			result := CoalesceTwo(*prev, p)
			hook.coalesced(smaller, larger, result)
			*prev = result
			continue
		}

		result := CaptureMoon(u, larger, smaller)
		hook.captured(smaller, result)

		sort.Slice(result.Moons, func(a, b int) bool { return result.Moons[a].A < result.Moons[b].A })
		result.Moons = Resolve(u, stellarLuminosity, cloudEccentricity, result.Moons, Hook{
			MoonCoalesced: hook.MoonCoalesced,
		})

		resolveRings(&result, hook)
		*prev = result
	}

	sort.Slice(next, func(i, j int) bool { return next[i].A < next[j].A })
	return next
}

// resolveRings converts any moon whose semi-major axis has fallen within
// twice its host's Roche limit into a ring (SPEC_FULL.md's resolution of
// the moon-to-ring threshold).
func resolveRings(planet *body.Planetesimal, hook Hook) {
	host := *planet
	kept := planet.Moons[:0:0]
	for _, m := range planet.Moons {
		roche := doleparams.RocheLimitAU(planet.Mass, m.Mass, m.Radius)
		if m.A <= 2*roche {
			ring := body.FromMoon(roche, m)
			planet.Rings = append(planet.Rings, ring)
			hook.moonToRing(host, m, ring)
		} else {
			kept = append(kept, m)
		}
	}
	planet.Moons = kept
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
