package environment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeonidGrr/accrete-sub000/internal/prngsrc"
)

func TestOrbitalZone(t *testing.T) {
	require.Equal(t, 1, OrbitalZone(1.0, 1.0))
	require.Equal(t, 2, OrbitalZone(1.0, 10.0))
	require.Equal(t, 3, OrbitalZone(1.0, 20.0))
}

func TestKothariRadiusPositive(t *testing.T) {
	r := KothariRadius(1.0, false, 2)
	require.Greater(t, r, 0.0)
}

func TestVolumeDensityPositiveForKothariRadius(t *testing.T) {
	mass := 1.0
	radius := KothariRadius(mass, false, 1)
	density := VolumeDensity(mass, radius)
	require.Greater(t, density, 0.0)
}

func TestPeriodIncreasesWithSeparation(t *testing.T) {
	near := Period(1.0, 1e-6, 1.0)
	far := Period(10.0, 1e-6, 1.0)
	require.Less(t, near, far)
}

func TestGreenhouseOnlyInZoneOneCloseIn(t *testing.T) {
	require.True(t, Greenhouse(1, 0.5, 1.0, 1000))
	require.False(t, Greenhouse(2, 0.5, 1.0, 1000), "greenhouse only applies in zone 1")
	require.False(t, Greenhouse(1, 0.5, 1.0, 0), "no atmosphere, no greenhouse")
}

func TestVolInventoryZeroBelowRetentionThreshold(t *testing.T) {
	u := prngsrc.NewUniform(prngsrc.NewMT19937Source(), 1)
	v := VolInventory(u, 1.0, 1.0, 10.0, 1.0, 1, false)
	require.Equal(t, 0.0, v, "escape velocity below retention threshold must retain nothing")
}

func TestIceFractionClampsAtHotTemperatures(t *testing.T) {
	ice, clamped := IceFraction(0.5, 400)
	require.Equal(t, 0.0, ice)
	require.Equal(t, 328.0, clamped)
}

func TestHydrosphereFractionClampsAtOne(t *testing.T) {
	frac := HydrosphereFraction(1e9, 6378)
	require.Equal(t, 1.0, frac)
}
