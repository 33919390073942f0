package body

import (
	"encoding/hex"

	"github.com/LeonidGrr/accrete-sub000/internal/prngsrc"
)

// ID identifies a Planetesimal or Ring for the lifetime of a system. It is
// assigned once, at creation, from the engine's seeded PRNG, and is never
// recomputed from a body's physical state.
type ID string

// NewID draws a fresh identifier from u. Two engines built with the same
// seed and consuming randomness in the same order produce identical ID
// sequences, which is required for the round-trip property between the
// event log and final system state.
func NewID(u *prngsrc.Uniform) ID {
	var buf [16]byte
	for i := 0; i < 16; i += 8 {
		v := uint64(u.Float64() * float64(1<<63) * 2)
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v >> 16)
		buf[i+3] = byte(v >> 24)
		buf[i+4] = byte(v >> 32)
		buf[i+5] = byte(v >> 40)
		buf[i+6] = byte(v >> 48)
		buf[i+7] = byte(v >> 56)
	}
	return ID(hex.EncodeToString(buf[:]))
}
