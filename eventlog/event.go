// Package eventlog defines the append-only record of everything an engine
// run does, and the reducer that folds that record back into a System. The
// event set is a closed sum type: Kind is an enum, each concrete event type
// implements Event, and the reducer type-switches over every concrete type.
// A new variant without a case in that switch is not caught at compile
// time; the switch's default branch reports it as an error when Apply meets
// it.
package eventlog

import (
	"github.com/LeonidGrr/accrete-sub000/internal/body"
	"github.com/LeonidGrr/accrete-sub000/internal/dust"
	"github.com/LeonidGrr/accrete-sub000/internal/star"
)

// System is the complete, self-contained state of one simulation run: the
// primary star, the settled planet list (sorted by A) and the final dust
// ledger. It is both the payload of the system-wide events and the final
// output of an engine run.
type System struct {
	Name        string
	PrimaryStar star.PrimaryStar
	Planets     []body.Planetesimal
	DustBands   dust.Bands
}

// Kind identifies which concrete Event a log entry carries.
type Kind int

const (
	KindPlanetarySystemSetup Kind = iota
	KindPlanetesimalCreated
	KindPlanetesimalUpdated
	KindPlanetesimalToGasGiant
	KindDustBandsUpdated
	KindPlanetesimalsCoalesced
	KindMoonsCoalesced
	KindPlanetesimalCaptureMoon
	KindPlanetesimalMoonToRing
	KindPostAccretionStarted
	KindOuterBodyInjected
	KindPlanetaryEnvironmentGenerated
	KindPlanetarySystemComplete
)

func (k Kind) String() string {
	switch k {
	case KindPlanetarySystemSetup:
		return "PlanetarySystemSetup"
	case KindPlanetesimalCreated:
		return "PlanetesimalCreated"
	case KindPlanetesimalUpdated:
		return "PlanetesimalUpdated"
	case KindPlanetesimalToGasGiant:
		return "PlanetesimalToGasGiant"
	case KindDustBandsUpdated:
		return "DustBandsUpdated"
	case KindPlanetesimalsCoalesced:
		return "PlanetesimalsCoalesced"
	case KindMoonsCoalesced:
		return "MoonsCoalesced"
	case KindPlanetesimalCaptureMoon:
		return "PlanetesimalCaptureMoon"
	case KindPlanetesimalMoonToRing:
		return "PlanetesimalMoonToRing"
	case KindPostAccretionStarted:
		return "PostAccretionStarted"
	case KindOuterBodyInjected:
		return "OuterBodyInjected"
	case KindPlanetaryEnvironmentGenerated:
		return "PlanetaryEnvironmentGenerated"
	case KindPlanetarySystemComplete:
		return "PlanetarySystemComplete"
	default:
		return "Unknown"
	}
}

// Event is implemented by every concrete event type. EventKind is used only
// for dispatch bookkeeping (logging, wire encoding); the reducer
// type-switches on the concrete type, not on Kind, and returns an error for
// any type it has no case for.
type Event interface {
	EventKind() Kind
}

type PlanetarySystemSetup struct {
	Name   string
	System System
}

func (PlanetarySystemSetup) EventKind() Kind { return KindPlanetarySystemSetup }

type PlanetesimalCreated struct {
	Name   string
	Planet body.Planetesimal
}

func (PlanetesimalCreated) EventKind() Kind { return KindPlanetesimalCreated }

// PlanetesimalUpdated records an in-place field change on a body already
// present in the system (orbital or physical properties recomputed without
// a collision or gas-giant transition). The environment-derivation phase
// (§4.7) emits one of these per planet and per moon just before the final
// PlanetaryEnvironmentGenerated snapshot.
type PlanetesimalUpdated struct {
	Name   string
	Planet body.Planetesimal
}

func (PlanetesimalUpdated) EventKind() Kind { return KindPlanetesimalUpdated }

type PlanetesimalToGasGiant struct {
	Name   string
	Planet body.Planetesimal
}

func (PlanetesimalToGasGiant) EventKind() Kind { return KindPlanetesimalToGasGiant }

type DustBandsUpdated struct {
	Name  string
	Bands dust.Bands
}

func (DustBandsUpdated) EventKind() Kind { return KindDustBandsUpdated }

type PlanetesimalsCoalesced struct {
	Name     string
	LoserID  body.ID
	WinnerID body.ID
	Result   body.Planetesimal
}

func (PlanetesimalsCoalesced) EventKind() Kind { return KindPlanetesimalsCoalesced }

type MoonsCoalesced struct {
	Name     string
	LoserID  body.ID
	WinnerID body.ID
	Result   body.Planetesimal
}

func (MoonsCoalesced) EventKind() Kind { return KindMoonsCoalesced }

type PlanetesimalCaptureMoon struct {
	Name   string
	MoonID body.ID
	HostID body.ID
	Result body.Planetesimal
}

func (PlanetesimalCaptureMoon) EventKind() Kind { return KindPlanetesimalCaptureMoon }

type PlanetesimalMoonToRing struct {
	Name   string
	HostID body.ID
	MoonID body.ID
	Ring   body.Ring
}

func (PlanetesimalMoonToRing) EventKind() Kind { return KindPlanetesimalMoonToRing }

type PostAccretionStarted struct {
	Name string
}

func (PostAccretionStarted) EventKind() Kind { return KindPostAccretionStarted }

type OuterBodyInjected struct {
	Name   string
	Planet body.Planetesimal
}

func (OuterBodyInjected) EventKind() Kind { return KindOuterBodyInjected }

type PlanetaryEnvironmentGenerated struct {
	Name   string
	System System
}

func (PlanetaryEnvironmentGenerated) EventKind() Kind { return KindPlanetaryEnvironmentGenerated }

type PlanetarySystemComplete struct {
	Name   string
	System System
}

func (PlanetarySystemComplete) EventKind() Kind { return KindPlanetarySystemComplete }
