package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultParametersAreValid(t *testing.T) {
	p := DefaultParameters()
	p.StellarMass = 1.0
	require.NoError(t, p.Validate())
}

func TestValidateRejectsBadFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Parameters)
		wantErr error
	}{
		{"mass too low", func(p *Parameters) { p.StellarMass = 0 }, ErrStellarMass},
		{"mass too high", func(p *Parameters) { p.StellarMass = 101 }, ErrStellarMass},
		{"dust density non-positive", func(p *Parameters) { p.DustDensityCoeff = 0 }, ErrDustDensityCoeff},
		{"gas-dust ratio too low", func(p *Parameters) { p.GasDustRatio = 1 }, ErrGasDustRatio},
		{"eccentricity out of range", func(p *Parameters) { p.CloudEccentricity = 1 }, ErrCloudEccentricity},
		{"critical mass coeff non-positive", func(p *Parameters) { p.CriticalMassCoeff = 0 }, ErrCriticalMassCoeff},
		{"negative post-accretion intensity", func(p *Parameters) { p.PostAccretionIntensity = -1 }, ErrPostAccretionLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			p.StellarMass = 1.0
			tt.mutate(&p)
			require.ErrorIs(t, p.Validate(), tt.wantErr)
		})
	}
}

func TestBuilderFluentConstruction(t *testing.T) {
	limit := 5
	p, err := NewBuilder(1, 1.0).
		WithDustDensityCoeff(0.002).
		WithGasDustRatio(60).
		WithCloudEccentricity(0.25).
		WithCriticalMassCoeff(1.0e-5).
		WithPlanetsLimit(limit).
		WithPostAccretionIntensity(3).
		Build()

	require.NoError(t, err)
	require.Equal(t, 0.002, p.DustDensityCoeff)
	require.Equal(t, 60.0, p.GasDustRatio)
	require.Equal(t, &limit, p.PlanetsLimit)
	require.NotSame(t, &limit, p.PlanetsLimit, "builder must not alias the caller's variable")
}

func TestBuilderShortCircuitsAfterError(t *testing.T) {
	_, err := NewBuilder(1, 1.0).WithPlanetsLimit(-1).WithGasDustRatio(60).Build()
	require.ErrorIs(t, err, ErrPlanetsLimit)
}
