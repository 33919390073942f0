package dust

import (
	"math"

	"github.com/LeonidGrr/accrete-sub000/internal/doleparams"
)

// AccreteDust grows mass by repeatedly sweeping every band until the gain
// from one pass falls below 0.0001 of the current mass (invariant P3). The
// bands are not modified during the loop; each pass recomputes the total
// mass the body's current reach collects from them.
func AccreteDust(mass, a, e, critMass float64, bands Bands, cloudEccentricity, dustDensity, k float64) float64 {
	newMass := mass
	for {
		mass = newMass
		newMass = 0
		for i := range bands {
			newMass += CollectDust(mass, a, e, critMass, cloudEccentricity, dustDensity, k, &bands[i])
		}
		if !(newMass-mass >= 0.0001*mass) {
			break
		}
	}
	return newMass
}

// CollectDust returns the mass collected from a single band during one sweep
// pass, and never mutates the band itself (the band's presence flags are
// updated separately by UpdateLanes once the sweep converges).
func CollectDust(mass, a, e, critMass, cloudEccentricity, dustDensity, k float64, band *Band) float64 {
	rInner := doleparams.InnerSweptLimit(mass, a, e, cloudEccentricity)
	rOuter := doleparams.OuterSweptLimit(mass, a, e, cloudEccentricity)

	if rInner < 0 {
		rInner = 0
	}

	if band.OuterEdge <= rInner || band.InnerEdge >= rOuter || !band.DustPresent {
		return 0
	}

	density := dustDensity
	if band.GasPresent && mass >= critMass {
		density = doleparams.MassDensity(k, dustDensity, critMass, mass)
	}

	bandwidth := rOuter - rInner
	temp1 := math.Max(rOuter-band.OuterEdge, 0)
	temp2 := math.Max(band.InnerEdge-rInner, 0)
	width := bandwidth - temp1 - temp2
	term1 := 4 * math.Pi * a * a
	term2 := 1 - e*(temp1-temp2)/bandwidth
	volume := term1 * doleparams.ReducedMass(mass) * width * term2

	return volume * density
}

// UpdateLanes splits or clears bands in [min, max] once a planetesimal has
// finished sweeping dust from that range, marking gas absent wherever the
// final mass exceeded the critical mass for gas retention.
func UpdateLanes(bands Bands, min, max, mass, critMass float64) Bands {
	gas := mass <= critMass

	result := make(Bands, 0, len(bands)+2)
	for _, band := range bands {
		newGas := band.GasPresent && gas
		switch {
		case band.InnerEdge < min && band.OuterEdge > max:
			inner := band
			inner.OuterEdge = min
			middle := Band{OuterEdge: max, InnerEdge: min, DustPresent: false, GasPresent: newGas}
			outer := Band{OuterEdge: band.OuterEdge, InnerEdge: max, DustPresent: band.DustPresent, GasPresent: band.GasPresent}
			result = append(result, inner, middle, outer)
		case band.InnerEdge < max && band.OuterEdge > max:
			outer := Band{OuterEdge: band.OuterEdge, InnerEdge: max, DustPresent: band.DustPresent, GasPresent: band.GasPresent}
			inner := Band{OuterEdge: max, InnerEdge: band.InnerEdge, DustPresent: false, GasPresent: newGas}
			result = append(result, inner, outer)
		case band.InnerEdge < min && band.OuterEdge > min:
			outer := Band{OuterEdge: band.OuterEdge, InnerEdge: min, DustPresent: false, GasPresent: newGas}
			inner := Band{OuterEdge: min, InnerEdge: band.InnerEdge, DustPresent: band.DustPresent, GasPresent: band.GasPresent}
			result = append(result, inner, outer)
		case band.InnerEdge >= min && band.OuterEdge <= max:
			result = append(result, Band{OuterEdge: band.OuterEdge, InnerEdge: band.InnerEdge, DustPresent: false, GasPresent: newGas})
		case band.OuterEdge < min || band.InnerEdge > max:
			result = append(result, band)
		}
	}
	return result
}

// Compress folds every maximal run of adjacent bands sharing both presence
// flags into a single band, restoring the contiguity invariant (P1) and
// ensuring repeated calls are idempotent (P2): once no two neighbors share
// both flags, Compress is a no-op.
func Compress(bands Bands) Bands {
	if len(bands) == 0 {
		return bands
	}
	result := make(Bands, 0, len(bands))
	i := 0
	for i < len(bands) {
		run := bands[i]
		j := i
		for j+1 < len(bands) && bands[j+1].DustPresent == run.DustPresent && bands[j+1].GasPresent == run.GasPresent {
			j++
		}
		run.OuterEdge = bands[j].OuterEdge
		result = append(result, run)
		i = j + 1
	}
	return result
}
