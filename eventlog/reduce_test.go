package eventlog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeonidGrr/accrete-sub000/internal/body"
	"github.com/LeonidGrr/accrete-sub000/internal/dust"
	"github.com/LeonidGrr/accrete-sub000/internal/star"
)

func TestReducePlanetarySystemSetupReplacesState(t *testing.T) {
	sys := System{Name: "sys-1", PrimaryStar: star.New(1.0)}
	events := []Event{PlanetarySystemSetup{Name: "sys-1", System: sys}}

	got, err := Apply(events)
	require.NoError(t, err)
	require.Equal(t, sys, got)
}

func TestReducePlanetesimalCreatedAppendsAndSorts(t *testing.T) {
	events := []Event{
		PlanetarySystemSetup{Name: "s", System: System{Name: "s"}},
		PlanetesimalCreated{Name: "s", Planet: body.Planetesimal{ID: "b", A: 5.0}},
		PlanetesimalCreated{Name: "s", Planet: body.Planetesimal{ID: "a", A: 1.0}},
	}

	got, err := Apply(events)
	require.NoError(t, err)
	require.Len(t, got.Planets, 2)
	require.Equal(t, body.ID("a"), got.Planets[0].ID)
	require.Equal(t, body.ID("b"), got.Planets[1].ID)
}

func TestReducePlanetesimalUpdatedOverwritesInPlace(t *testing.T) {
	events := []Event{
		PlanetarySystemSetup{Name: "s", System: System{Name: "s"}},
		PlanetesimalCreated{Name: "s", Planet: body.Planetesimal{ID: "a", A: 1.0, Mass: 1e-6}},
		PlanetesimalUpdated{Name: "s", Planet: body.Planetesimal{ID: "a", A: 1.0, Mass: 2e-6}},
	}

	got, err := Apply(events)
	require.NoError(t, err)
	require.Len(t, got.Planets, 1)
	require.Equal(t, 2e-6, got.Planets[0].Mass)
}

func TestReduceDustBandsUpdatedOverwrites(t *testing.T) {
	bands := dust.NewInitial(50)
	events := []Event{
		PlanetarySystemSetup{Name: "s", System: System{Name: "s"}},
		DustBandsUpdated{Name: "s", Bands: bands},
	}

	got, err := Apply(events)
	require.NoError(t, err)
	require.Equal(t, bands, got.DustBands)
}

func TestReducePlanetesimalsCoalescedDropsAndAppendsResult(t *testing.T) {
	events := []Event{
		PlanetarySystemSetup{Name: "s", System: System{Name: "s"}},
		PlanetesimalCreated{Name: "s", Planet: body.Planetesimal{ID: "a", A: 1.0, Mass: 1e-6}},
		PlanetesimalCreated{Name: "s", Planet: body.Planetesimal{ID: "b", A: 1.01, Mass: 2e-6}},
		PlanetesimalsCoalesced{
			Name: "s", LoserID: "a", WinnerID: "b",
			Result: body.Planetesimal{ID: "b", A: 1.005, Mass: 3e-6},
		},
	}

	got, err := Apply(events)
	require.NoError(t, err)
	require.Len(t, got.Planets, 1)
	require.Equal(t, body.ID("b"), got.Planets[0].ID)
	require.Equal(t, 3e-6, got.Planets[0].Mass)
}

func TestReduceMoonsCoalescedUpdatesHostMoons(t *testing.T) {
	events := []Event{
		PlanetarySystemSetup{Name: "s", System: System{Name: "s"}},
		PlanetesimalCreated{Name: "s", Planet: body.Planetesimal{
			ID: "host", A: 1.0, Mass: 1e-4,
			Moons: []body.Planetesimal{
				{ID: "m1", A: 0.001, Mass: 1e-9},
				{ID: "m2", A: 0.002, Mass: 1e-9},
			},
		}},
		MoonsCoalesced{
			Name: "s", LoserID: "m1", WinnerID: "m2",
			Result: body.Planetesimal{ID: "m2", A: 0.0015, Mass: 2e-9},
		},
	}

	got, err := Apply(events)
	require.NoError(t, err)
	require.Len(t, got.Planets, 1)
	require.Len(t, got.Planets[0].Moons, 1)
	require.Equal(t, body.ID("m2"), got.Planets[0].Moons[0].ID)
}

func TestReducePlanetesimalMoonToRingMovesMoonToRings(t *testing.T) {
	events := []Event{
		PlanetarySystemSetup{Name: "s", System: System{Name: "s"}},
		PlanetesimalCreated{Name: "s", Planet: body.Planetesimal{
			ID: "host", A: 1.0, Mass: 1e-4,
			Moons: []body.Planetesimal{{ID: "m1", A: 0.0001, Mass: 1e-12}},
		}},
		PlanetesimalMoonToRing{
			Name: "s", HostID: "host", MoonID: "m1",
			Ring: body.Ring{ID: "m1", A: 0.0002, Mass: 1e-12},
		},
	}

	got, err := Apply(events)
	require.NoError(t, err)
	require.Empty(t, got.Planets[0].Moons)
	require.Len(t, got.Planets[0].Rings, 1)
	require.Equal(t, body.ID("m1"), got.Planets[0].Rings[0].ID)
}

func TestReducePostAccretionStartedIsNoOp(t *testing.T) {
	sys := System{Name: "s", Planets: []body.Planetesimal{{ID: "a"}}}
	events := []Event{
		PlanetarySystemSetup{Name: "s", System: sys},
		PostAccretionStarted{Name: "s"},
	}

	got, err := Apply(events)
	require.NoError(t, err)
	require.Equal(t, sys, got)
}

func TestReducePlanetarySystemCompleteAssertsRoundTrip(t *testing.T) {
	sys := System{Name: "s", Planets: []body.Planetesimal{{ID: "a", A: 1.0}}}
	events := []Event{
		PlanetarySystemSetup{Name: "s", System: sys},
		PlanetarySystemComplete{Name: "s", System: sys},
	}

	_, err := Apply(events)
	require.NoError(t, err, "round-trip property P6: replaying the log must reproduce the recorded final system")
}

func TestReducePlanetarySystemCompleteFailsOnMismatch(t *testing.T) {
	sys := System{Name: "s", Planets: []body.Planetesimal{{ID: "a", A: 1.0}}}
	mismatched := System{Name: "s", Planets: []body.Planetesimal{{ID: "a", A: 2.0}}}
	events := []Event{
		PlanetarySystemSetup{Name: "s", System: sys},
		PlanetarySystemComplete{Name: "s", System: mismatched},
	}

	_, err := Apply(events)
	require.Error(t, err)
}
