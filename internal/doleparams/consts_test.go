package doleparams

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInnermostAndOutermostPlanet(t *testing.T) {
	tests := []struct {
		name        string
		stellarMass float64
		wantInner   float64
		wantOuter   float64
	}{
		{name: "sun-like", stellarMass: 1.0, wantInner: 0.3, wantOuter: 50.0},
		{name: "heavy star", stellarMass: 2.0, wantInner: 0.3 * math.Pow(2, 0.33), wantOuter: 50.0 * math.Pow(2, 0.33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.wantInner, InnermostPlanet(tt.stellarMass), 1e-9)
			require.InDelta(t, tt.wantOuter, OutermostPlanet(tt.stellarMass), 1e-9)
		})
	}
}

func TestRandomEccentricity(t *testing.T) {
	e := RandomEccentricity(0.5, 0.2)
	require.Greater(t, e, 0.0)
	require.Less(t, e, 1.0)
}

func TestCriticalLimit(t *testing.T) {
	crit := CriticalLimit(B, 1.0, 0.0, 1.0)
	require.Greater(t, crit, 0.0)

	// A body closer to the star (smaller perihelion) needs more mass to
	// reach critical, since critical mass scales as perihelion^-0.75.
	closeCrit := CriticalLimit(B, 0.5, 0.0, 1.0)
	require.Greater(t, closeCrit, crit)
}

func TestRocheLimitAU(t *testing.T) {
	roche := RocheLimitAU(1.0, 1e-6, 1000)
	require.Greater(t, roche, 0.0)

	// Doubling the moon's mass shrinks the Roche limit (moon holds itself
	// together better).
	smallerRoche := RocheLimitAU(1.0, 2e-6, 1000)
	require.Less(t, smallerRoche, roche)
}

func TestHillSphereAU(t *testing.T) {
	hill := HillSphereAU(1.0, 0.0, 1.0, 1e-6)
	require.Greater(t, hill, 0.0)
	require.Less(t, hill, 1.0)
}

func TestReducedMass(t *testing.T) {
	require.InDelta(t, 0.5, ReducedMass(1.0), 1e-9)
	require.InDelta(t, 0.0, ReducedMass(0.0), 1e-9)
}
