package eventlog

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/LeonidGrr/accrete-sub000/internal/body"
)

// Apply folds every event in the log into a System, starting from the zero
// value. It is the reference reducer the round-trip property (applying
// every event from PlanetarySystemSetup reproduces the engine's final
// system) is checked against.
func Apply(events []Event) (System, error) {
	var state System
	for _, e := range events {
		next, err := reduce(state, e)
		if err != nil {
			return state, err
		}
		state = next
	}
	return state, nil
}

// reduce applies a single event to state per the rules each concrete event
// type owns. The switch has a case for every type event.go defines; a new
// event type without a case here still compiles, and the default branch
// below turns it into a runtime error, which is the best an interface-based
// sum type can do in Go — see DESIGN.md.
func reduce(state System, e Event) (System, error) {
	switch ev := e.(type) {
	case PlanetarySystemSetup:
		return ev.System, nil

	case PlanetaryEnvironmentGenerated:
		return ev.System, nil

	case PlanetesimalCreated:
		state.Planets = appendSorted(state.Planets, ev.Planet)
		return state, nil

	case OuterBodyInjected:
		state.Planets = appendSorted(state.Planets, ev.Planet)
		return state, nil

	case PlanetesimalUpdated:
		if !overwriteByID(state.Planets, ev.Planet) {
			return state, fmt.Errorf("eventlog: PlanetesimalUpdated: no planetesimal with id %q", ev.Planet.ID)
		}
		return state, nil

	case PlanetesimalToGasGiant:
		if !overwriteByID(state.Planets, ev.Planet) {
			return state, fmt.Errorf("eventlog: PlanetesimalToGasGiant: no planetesimal with id %q", ev.Planet.ID)
		}
		return state, nil

	case DustBandsUpdated:
		state.DustBands = ev.Bands
		return state, nil

	case PlanetesimalsCoalesced:
		state.Planets = dropByID(state.Planets, ev.LoserID, ev.WinnerID)
		state.Planets = appendSorted(state.Planets, ev.Result)
		return state, nil

	case PlanetesimalCaptureMoon:
		state.Planets = dropByID(state.Planets, ev.MoonID, ev.HostID)
		state.Planets = appendSorted(state.Planets, ev.Result)
		return state, nil

	case MoonsCoalesced:
		host := findHostOfMoon(state.Planets, ev.LoserID, ev.WinnerID)
		if host == nil {
			return state, fmt.Errorf("eventlog: MoonsCoalesced: no host owns moon %q or %q", ev.LoserID, ev.WinnerID)
		}
		host.Moons = dropByID(host.Moons, ev.LoserID, ev.WinnerID)
		host.Moons = appendSorted(host.Moons, ev.Result)
		return state, nil

	case PlanetesimalMoonToRing:
		host := findByIDDeep(state.Planets, ev.HostID)
		if host == nil {
			return state, fmt.Errorf("eventlog: PlanetesimalMoonToRing: no host with id %q", ev.HostID)
		}
		host.Moons = dropByID(host.Moons, ev.MoonID)
		host.Rings = append(host.Rings, ev.Ring)
		return state, nil

	case PostAccretionStarted:
		return state, nil

	case PlanetarySystemComplete:
		if !reflect.DeepEqual(state, ev.System) {
			return state, fmt.Errorf("eventlog: PlanetarySystemComplete: reduced state does not match recorded final system")
		}
		return state, nil

	default:
		return state, fmt.Errorf("eventlog: unhandled event type %T", e)
	}
}

func appendSorted(planets []body.Planetesimal, p body.Planetesimal) []body.Planetesimal {
	planets = append(planets, p)
	sort.Slice(planets, func(i, j int) bool { return planets[i].A < planets[j].A })
	return planets
}

// overwriteByID locates id anywhere in planets (top level or nested moons,
// recursively) and replaces it in place with p. Reports whether it found a
// match.
func overwriteByID(planets []body.Planetesimal, p body.Planetesimal) bool {
	target := findByIDDeep(planets, p.ID)
	if target == nil {
		return false
	}
	*target = p
	return true
}

// findByIDDeep returns a pointer to the planetesimal with the given id,
// searching top-level bodies and their moons recursively, or nil.
func findByIDDeep(planets []body.Planetesimal, id body.ID) *body.Planetesimal {
	for i := range planets {
		if planets[i].ID == id {
			return &planets[i]
		}
		if found := findByIDDeep(planets[i].Moons, id); found != nil {
			return found
		}
	}
	return nil
}

// dropByID returns planets with every body matching one of ids removed
// (top level only — callers operate on the specific slice, planet or moon
// list, the event names).
func dropByID(planets []body.Planetesimal, ids ...body.ID) []body.Planetesimal {
	kept := planets[:0:0]
	for _, p := range planets {
		drop := false
		for _, id := range ids {
			if p.ID == id {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, p)
		}
	}
	return kept
}

// findHostOfMoon returns a pointer to the body whose own Moons slice
// directly contains either of the given ids: a top-level planet, or, since
// the search recurses into moons that carry moons, a moon at any depth.
// It returns nil when no body holds either id.
func findHostOfMoon(planets []body.Planetesimal, ids ...body.ID) *body.Planetesimal {
	for i := range planets {
		for _, m := range planets[i].Moons {
			for _, id := range ids {
				if m.ID == id {
					return &planets[i]
				}
			}
		}
		if found := findHostOfMoon(planets[i].Moons, ids...); found != nil {
			return found
		}
	}
	return nil
}
