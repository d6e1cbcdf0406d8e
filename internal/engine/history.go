package engine

import (
	"sync/atomic"

	"github.com/nimzobot/corechess/internal/board"
)

// PieceToHistory scores a following move by the (piece, to-square) of the
// move that is about to be played, given a fixed "parent" move two (or more)
// plies back. Shape mirrors MoveOrderer.countermoveHistory, just addressed
// through an indirection so SearchStack can carry a single pointer per ply
// instead of a 4D array slice.
type PieceToHistory [16][64]int32

const (
	continuationHistoryClamp = 16384
	continuationHistoryDiv   = 16
)

// GetContinuationHistoryTable returns the continuation-history table keyed by
// the (piece, to-square) of the move played on some earlier ply. The caller
// then indexes the returned table by the (piece, to-square) of the candidate
// move being scored now.
func (mo *MoveOrderer) GetContinuationHistoryTable(piece board.Piece, to board.Square) *PieceToHistory {
	if piece >= board.NoPiece {
		return &mo.contHist[0][0]
	}
	return &mo.contHist[piece][to]
}

// UpdateContinuationHistory applies a depth-scaled bonus (or malus) to the
// continuation history entry for (prevPiece, prevTo) -> (piece, to). plyBack
// indicates how many plies separate the two moves (1 = immediately
// preceding move, 2 = two plies back, etc.); the weight decays with
// distance, matching the donor's diminishing-weight treatment of
// SearchStack-indexed continuation updates elsewhere in worker.go.
func (mo *MoveOrderer) UpdateContinuationHistory(prevPiece board.Piece, prevTo board.Square, piece board.Piece, to board.Square, depth int, plyBack int, isGood bool) {
	if prevPiece >= board.NoPiece || piece >= board.NoPiece {
		return
	}

	weight := 1
	switch plyBack {
	case 1:
		weight = 2
	case 2:
		weight = 1
	default:
		weight = 1
	}

	bonus := depth * depth * weight
	if bonus > 1200 {
		bonus = 1200
	}
	if !isGood {
		bonus = -bonus
	}

	table := &mo.contHist[prevPiece][prevTo]
	cur := table[piece][to]
	cur += int32(bonus) - cur*int32(abs(bonus))/continuationHistoryClamp
	table[piece][to] = cur

	if cur > continuationHistoryClamp || cur < -continuationHistoryClamp {
		table[piece][to] /= continuationHistoryDiv
	}
}

// GetContinuationHistoryScore reads the continuation-history bonus for
// (piece, to) given the stored table from an earlier ply.
func (mo *MoveOrderer) GetContinuationHistoryScore(table *PieceToHistory, piece board.Piece, to board.Square) int {
	if table == nil || piece >= board.NoPiece {
		return 0
	}
	return int(table[piece][to])
}

// SharedHistory is a cross-worker, lock-free butterfly history used by the
// Lazy-SMP thread pool as a collective-learning signal in addition to (not
// instead of) each worker's own private history table. See DESIGN.md Open
// Question 2 for why this exists beyond spec's strict per-thread-only model.
type SharedHistory struct {
	table [64][64]atomic.Int32
}

// NewSharedHistory creates an empty shared history table.
func NewSharedHistory() *SharedHistory {
	return &SharedHistory{}
}

// Get returns the shared history score for a from/to square pair.
func (sh *SharedHistory) Get(from, to board.Square) int {
	return int(sh.table[from][to].Load())
}

const sharedHistoryClamp = 400000

// Update applies a saturating bonus/malus to the shared history entry via a
// CAS loop (no mutex, matching spec's relaxed-memory-model guidance for
// process-global collections).
func (sh *SharedHistory) Update(from, to board.Square, bonus int) {
	cell := &sh.table[from][to]
	for {
		old := cell.Load()
		next := old + int32(bonus)
		if next > sharedHistoryClamp {
			next = sharedHistoryClamp
		}
		if next < -sharedHistoryClamp {
			next = -sharedHistoryClamp
		}
		if cell.CompareAndSwap(old, next) {
			return
		}
	}
}

// Clear resets the shared history table for a new game.
func (sh *SharedHistory) Clear() {
	for i := range sh.table {
		for j := range sh.table[i] {
			sh.table[i][j].Store(0)
		}
	}
}
