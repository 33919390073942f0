package engine

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/LeonidGrr/accrete-sub000/eventlog"
	"github.com/LeonidGrr/accrete-sub000/internal/star"
)

func TestSunLikeDefault(t *testing.T) {
	params, err := NewBuilder(2, 1.0).Build()
	require.NoError(t, err)

	eng, err := New(params, nil)
	require.NoError(t, err)

	system, log, err := eng.Run()
	require.NoError(t, err)

	require.Equal(t, star.G, system.PrimaryStar.SpectralClass)
	require.GreaterOrEqual(t, len(system.Planets), 1)
	require.Greater(t, log.Len(), 0)

	replayed, err := eventlog.Apply(log.Events())
	require.NoError(t, err, "round-trip property P6")
	require.Equal(t, system, replayed)
}

func TestLowMassStar(t *testing.T) {
	params, err := NewBuilder(33, 0.3).Build()
	require.NoError(t, err)

	eng, err := New(params, nil)
	require.NoError(t, err)

	system, _, err := eng.Run()
	require.NoError(t, err)

	require.Equal(t, star.M, system.PrimaryStar.SpectralClass)
	require.Less(t, system.PrimaryStar.EcosphereInner, 0.5)
}

func TestHeavyStar(t *testing.T) {
	params, err := NewBuilder(7, 2.0).Build()
	require.NoError(t, err)

	eng, err := New(params, nil)
	require.NoError(t, err)

	system, _, err := eng.Run()
	require.NoError(t, err)

	require.Equal(t, star.A, system.PrimaryStar.SpectralClass)
}

func TestDeterministicReplay(t *testing.T) {
	params, err := NewBuilder(99, 1.0).Build()
	require.NoError(t, err)

	eng1, err := New(params, nil)
	require.NoError(t, err)
	system1, log1, err := eng1.Run()
	require.NoError(t, err)

	eng2, err := New(params, nil)
	require.NoError(t, err)
	system2, log2, err := eng2.Run()
	require.NoError(t, err)

	require.Equal(t, system1, system2, "determinism (P7): same seed and config must produce identical systems")
	require.Equal(t, len(log1.Events()), len(log2.Events()))
}

func TestRingFormationScenario(t *testing.T) {
	params, err := NewBuilder(2, 2.0).WithPostAccretionIntensity(10).Build()
	require.NoError(t, err)

	eng, err := New(params, nil)
	require.NoError(t, err)

	system, log, err := eng.Run()
	require.NoError(t, err)

	replayed, err := eventlog.Apply(log.Events())
	require.NoError(t, err)
	require.Equal(t, system, replayed, "round-trip property P6 must hold even when post-accretion injects outer bodies")

	activity := testutil.ToFloat64(eng.metrics.planetsCoalesced) +
		testutil.ToFloat64(eng.metrics.moonsCaptured) +
		testutil.ToFloat64(eng.metrics.ringsFormed)
	require.Greater(t, activity, 0.0, "a crowded multi-planet system with post-accretion injection must resolve at least one collision")

	var totalRings int
	for _, p := range system.Planets {
		totalRings += len(p.Rings)
	}
	require.Equal(t, testutil.ToFloat64(eng.metrics.ringsFormed), float64(totalRings),
		"every PlanetesimalMoonToRing event recorded must correspond to a ring present in the final system")
}

func TestInvalidStellarMassRejected(t *testing.T) {
	_, err := NewBuilder(1, 0).Build()
	require.ErrorIs(t, err, ErrStellarMass)

	_, err = NewBuilder(1, 200).Build()
	require.ErrorIs(t, err, ErrStellarMass)
}
