package eventlog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogAppendPreservesOrder(t *testing.T) {
	var l Log
	l.Append(PostAccretionStarted{Name: "s"})
	l.Append(PlanetarySystemComplete{Name: "s"})

	require.Equal(t, 2, l.Len())
	require.Equal(t, KindPostAccretionStarted, l.Events()[0].EventKind())
	require.Equal(t, KindPlanetarySystemComplete, l.Events()[1].EventKind())
}

func TestKindStringIsExhaustive(t *testing.T) {
	for k := KindPlanetarySystemSetup; k <= KindPlanetarySystemComplete; k++ {
		require.NotEqual(t, "Unknown", k.String())
	}
}
