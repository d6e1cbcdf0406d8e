package engine

import (
	"github.com/nimzobot/corechess/internal/board"
)

// Search constants
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 128
)

// PVTable stores the principal variation produced by a negamax search,
// one line per ply, triangular-table style (pv[ply] holds the continuation
// from that ply onward).
type PVTable struct {
	length [MaxPly]int
	moves  [MaxPly][MaxPly]board.Move
}
