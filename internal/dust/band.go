// Package dust implements the dust-band ledger: the record of where
// primordial dust and gas remain available for accretion, and the sweep
// operations that consume it as planetesimals grow.
package dust

// Band is one contiguous interval of the dust cloud, in AU from the primary
// star, together with whether dust and/or gas remain present in it.
type Band struct {
	InnerEdge   float64
	OuterEdge   float64
	DustPresent bool
	GasPresent  bool
}

// Bands is an ordered, non-overlapping ledger of dust bands, sorted by
// InnerEdge ascending (invariant P1).
type Bands []Band

// NewInitial returns the single band spanning the whole primordial disc.
func NewInitial(outerEdge float64) Bands {
	return Bands{{InnerEdge: 0, OuterEdge: outerEdge, DustPresent: true, GasPresent: true}}
}

// Available reports whether any band overlapping [inside, outside] still has
// dust present.
func (b Bands) Available(inside, outside float64) bool {
	for _, band := range b {
		if band.DustPresent && outside > band.InnerEdge && inside < band.OuterEdge {
			return true
		}
	}
	return false
}
