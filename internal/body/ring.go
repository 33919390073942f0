package body

// Ring is what remains when a moon strays inside twice its host's Roche
// limit and is tidally shredded rather than retained as a satellite.
type Ring struct {
	ID    ID
	A     float64 // AU, host frame: the Roche limit at formation
	Mass  float64
	Width float64
}

// FromMoon converts a moon into the ring it becomes once it crosses the
// moon-to-ring threshold. The ring inherits the moon's ID: a ring is the
// same body in a different phase, not a new one.
func FromMoon(rocheLimit float64, moon Planetesimal) Ring {
	return Ring{
		ID:    moon.ID,
		A:     rocheLimit,
		Mass:  moon.Mass,
		Width: moon.Radius * 2,
	}
}
