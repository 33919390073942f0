package body

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromMoonKeepsMoonID(t *testing.T) {
	moon := Planetesimal{ID: "moon-1", Mass: 1e-8, Radius: 500}
	ring := FromMoon(0.002, moon)

	require.Equal(t, moon.ID, ring.ID, "a ring is the same body in a different phase, not a new one")
	require.Equal(t, 0.002, ring.A)
	require.Equal(t, moon.Mass, ring.Mass)
	require.Equal(t, moon.Radius*2, ring.Width)
}
