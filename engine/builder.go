package engine

// Builder provides a fluent interface for constructing a run's Parameters:
// every With* method short-circuits once an error has been recorded, and
// Build runs final validation once at the end.
type Builder struct {
	params Parameters
	err    error
}

// NewBuilder starts from DefaultParameters with the given seed and stellar
// mass, the two fields every run must supply.
func NewBuilder(seed uint64, stellarMass float64) *Builder {
	p := DefaultParameters()
	p.Seed = seed
	p.StellarMass = stellarMass
	return &Builder{params: p}
}

// WithDustDensityCoeff overrides the dust density coefficient (default
// 0.0015).
func (b *Builder) WithDustDensityCoeff(v float64) *Builder {
	if b.err != nil {
		return b
	}
	b.params.DustDensityCoeff = v
	return b
}

// WithGasDustRatio overrides the gas-to-dust ratio K (default 50).
func (b *Builder) WithGasDustRatio(v float64) *Builder {
	if b.err != nil {
		return b
	}
	b.params.GasDustRatio = v
	return b
}

// WithCloudEccentricity overrides the dust cloud's eccentricity coefficient
// (default 0.20).
func (b *Builder) WithCloudEccentricity(v float64) *Builder {
	if b.err != nil {
		return b
	}
	b.params.CloudEccentricity = v
	return b
}

// WithCriticalMassCoeff overrides the critical mass coefficient B (default
// 1.2e-5).
func (b *Builder) WithCriticalMassCoeff(v float64) *Builder {
	if b.err != nil {
		return b
	}
	b.params.CriticalMassCoeff = v
	return b
}

// WithPlanetsLimit caps the number of planets the accretion driver will
// settle before stopping early.
func (b *Builder) WithPlanetsLimit(limit int) *Builder {
	if b.err != nil {
		return b
	}
	if limit <= 0 {
		b.err = ErrPlanetsLimit
		return b
	}
	b.params.PlanetsLimit = &limit
	return b
}

// WithPostAccretionIntensity sets how many outer bodies to inject after the
// main dust-sweep loop converges.
func (b *Builder) WithPostAccretionIntensity(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = ErrPostAccretionLevel
		return b
	}
	b.params.PostAccretionIntensity = n
	return b
}

// Build validates and returns the final Parameters.
func (b *Builder) Build() (Parameters, error) {
	if b.err != nil {
		return Parameters{}, b.err
	}
	if err := b.params.Validate(); err != nil {
		return Parameters{}, err
	}
	return b.params, nil
}
