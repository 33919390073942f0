package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics tracks run-level counters: a prometheus.Gauge/Counter per
// observable, registered once at construction when a Registerer is given.
type metrics struct {
	planetsSettled    prometheus.Counter
	planetsCoalesced  prometheus.Counter
	moonsCaptured     prometheus.Counter
	ringsFormed       prometheus.Counter
	dustSweepPasses   prometheus.Counter
	eventsEmitted     prometheus.Counter
	finalPlanetCount  prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		planetsSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accrete_planets_settled_total",
			Help: "Number of planetesimals that settled into the planet list",
		}),
		planetsCoalesced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accrete_planets_coalesced_total",
			Help: "Number of planet-planet merge events",
		}),
		moonsCaptured: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accrete_moons_captured_total",
			Help: "Number of moon capture events",
		}),
		ringsFormed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accrete_rings_formed_total",
			Help: "Number of moon-to-ring conversions",
		}),
		dustSweepPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accrete_dust_sweep_passes_total",
			Help: "Number of driver passes whose nucleus swept dust and updated the dust bands",
		}),
		eventsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accrete_events_emitted_total",
			Help: "Number of events appended to the run's log",
		}),
		finalPlanetCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "accrete_final_planet_count",
			Help: "Planet count at the end of the most recent run",
		}),
	}

	if registerer == nil {
		return m, nil
	}

	for _, c := range []prometheus.Collector{
		m.planetsSettled, m.planetsCoalesced, m.moonsCaptured,
		m.ringsFormed, m.dustSweepPasses, m.eventsEmitted, m.finalPlanetCount,
	} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
