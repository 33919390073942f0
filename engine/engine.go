package engine

import (
	"fmt"
	"sort"

	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/LeonidGrr/accrete-sub000/eventlog"
	"github.com/LeonidGrr/accrete-sub000/internal/accretion"
	"github.com/LeonidGrr/accrete-sub000/internal/body"
	"github.com/LeonidGrr/accrete-sub000/internal/doleparams"
	"github.com/LeonidGrr/accrete-sub000/internal/dust"
	"github.com/LeonidGrr/accrete-sub000/internal/environment"
	"github.com/LeonidGrr/accrete-sub000/internal/prngsrc"
	"github.com/LeonidGrr/accrete-sub000/internal/star"
)

// Engine runs one Dole/Fogg accretion simulation from a fixed set of
// Parameters and owns the event log the run produces. Each call to Run
// seeds a fresh PRNG from Parameters.Seed and starts a new event log, so
// repeated calls reproduce the same system; the metrics counters keep
// accumulating across calls.
type Engine struct {
	params  Parameters
	log     log.Logger
	metrics *metrics
}

// New validates params and constructs an Engine. registerer may be nil, in
// which case metrics are created but never exposed to a scrape endpoint —
// useful for tests and one-shot CLI runs.
func New(params Parameters, registerer prometheus.Registerer) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("engine: registering metrics: %w", err)
	}
	return &Engine{
		params:  params,
		log:     log.NewLogger("accrete"),
		metrics: m,
	}, nil
}

// Run executes the full simulation — nucleation and dust-sweep loop,
// coalescence resolution, post-accretion outer-body injection, and
// environment derivation — and returns the final System together with the
// ordered event log the run produced.
func (e *Engine) Run() (eventlog.System, *eventlog.Log, error) {
	u := prngsrc.NewUniform(prngsrc.NewMT19937Source(), int64(e.params.Seed))
	elog := &eventlog.Log{}
	name := fmt.Sprintf("system-%d", e.params.Seed)

	primary := star.New(e.params.StellarMass)
	e.log.Info("primary star derived", "mass", primary.Mass, "class", primary.SpectralClass.String())

	initial := eventlog.System{
		Name:        name,
		PrimaryStar: primary,
		DustBands:   nil,
		Planets:     nil,
	}
	e.append(elog, eventlog.PlanetarySystemSetup{Name: name, System: initial})

	idGen := func() body.ID { return body.NewID(u) }

	hooks := accretion.DriverHooks{
		Hook: accretion.Hook{
			Coalesced: func(smaller, larger, result body.Planetesimal) {
				e.metrics.planetsCoalesced.Inc()
				e.append(elog, eventlog.PlanetesimalsCoalesced{Name: name, LoserID: smaller.ID, WinnerID: larger.ID, Result: result})
			},
			MoonCoalesced: func(smaller, larger, result body.Planetesimal) {
				e.append(elog, eventlog.MoonsCoalesced{Name: name, LoserID: smaller.ID, WinnerID: larger.ID, Result: result})
			},
			Captured: func(moon, result body.Planetesimal) {
				e.metrics.moonsCaptured.Inc()
				e.append(elog, eventlog.PlanetesimalCaptureMoon{Name: name, MoonID: moon.ID, HostID: result.ID, Result: result})
			},
			MoonToRing: func(host body.Planetesimal, moon body.Planetesimal, ring body.Ring) {
				e.metrics.ringsFormed.Inc()
				e.append(elog, eventlog.PlanetesimalMoonToRing{Name: name, HostID: host.ID, MoonID: moon.ID, Ring: ring})
			},
		},
		NucleusAccreted: func(p body.Planetesimal) {
			e.metrics.planetsSettled.Inc()
			e.append(elog, eventlog.PlanetesimalCreated{Name: name, Planet: p})
		},
		GasGiantFormed: func(p body.Planetesimal) {
			e.append(elog, eventlog.PlanetesimalToGasGiant{Name: name, Planet: p})
		},
		DustBandsUpdated: func(bands dust.Bands) {
			e.metrics.dustSweepPasses.Inc()
			e.append(elog, eventlog.DustBandsUpdated{Name: name, Bands: bands})
		},
	}

	planets, bands := accretion.DistributePlanetaryMasses(u, idGen, accretion.Params{
		StellarMass:       e.params.StellarMass,
		StellarLuminosity: primary.Luminosity,
		DustDensityCoeff:  e.params.DustDensityCoeff,
		K:                 e.params.GasDustRatio,
		B:                 e.params.CriticalMassCoeff,
		CloudEccentricity: e.params.CloudEccentricity,
		PlanetsLimit:      e.params.PlanetsLimit,
	}, hooks)

	e.append(elog, eventlog.PostAccretionStarted{Name: name})

	innerBound := doleparams.InnermostPlanet(e.params.StellarMass)
	outerBound := doleparams.OutermostPlanet(e.params.StellarMass)
	for i := 0; i < e.params.PostAccretionIntensity; i++ {
		axisRandom := u.Float64()
		eccRandom := u.Float64()
		outer := body.New(idGen(), innerBound, outerBound, e.params.CloudEccentricity, axisRandom, eccRandom)
		outer.Mass = u.Range(doleparams.ProtoplanetMass, 1e-3)
		planets = append(planets, outer)
		e.append(elog, eventlog.OuterBodyInjected{Name: name, Planet: outer})

		sort.Slice(planets, func(i, j int) bool { return planets[i].A < planets[j].A })
		planets = accretion.Resolve(u, primary.Luminosity, e.params.CloudEccentricity, planets, hooks.Hook)
	}

	eco := environment.Ecosphere{Inner: primary.EcosphereInner, Outer: primary.EcosphereOuter}
	for i := range planets {
		environment.Derive(u, &planets[i], primary.Luminosity, e.params.StellarMass, primary.MainSeqAgeYr, eco)
		emitUpdated(elog, e, name, &planets[i])
	}

	final := eventlog.System{Name: name, PrimaryStar: primary, Planets: planets, DustBands: bands}
	e.append(elog, eventlog.PlanetaryEnvironmentGenerated{Name: name, System: final})
	e.append(elog, eventlog.PlanetarySystemComplete{Name: name, System: final})

	e.metrics.finalPlanetCount.Set(float64(len(planets)))
	e.log.Info("run complete", "planets", len(planets), "events", elog.Len())

	return final, elog, nil
}

func (e *Engine) append(l *eventlog.Log, ev eventlog.Event) {
	l.Append(ev)
	e.metrics.eventsEmitted.Inc()
}

// emitUpdated records the environment phase's effect on a planet and every
// one of its moons, recursively, as PlanetesimalUpdated events.
func emitUpdated(l *eventlog.Log, e *Engine, name string, p *body.Planetesimal) {
	e.append(l, eventlog.PlanetesimalUpdated{Name: name, Planet: *p})
	for i := range p.Moons {
		emitUpdated(l, e, name, &p.Moons[i])
	}
}
