package engine

import (
	"testing"

	"github.com/nimzobot/corechess/internal/board"
)

func TestSharedHistoryUpdateAndDecay(t *testing.T) {
	sh := NewSharedHistory()

	if sh.Get(board.E2, board.E4) != 0 {
		t.Error("expected zero score before any update")
	}

	sh.Update(board.E2, board.E4, 400)
	first := sh.Get(board.E2, board.E4)
	if first <= 0 {
		t.Errorf("expected positive score after good update, got %d", first)
	}

	// A losing update on the same move should pull the score back down.
	sh.Update(board.E2, board.E4, -400)
	second := sh.Get(board.E2, board.E4)
	if second >= first {
		t.Errorf("expected score to drop after bad update: first=%d second=%d", first, second)
	}
}

func TestSharedHistoryClampsWithinBounds(t *testing.T) {
	sh := NewSharedHistory()

	for i := 0; i < 300; i++ {
		sh.Update(board.D2, board.D4, 2000)
	}

	score := sh.Get(board.D2, board.D4)
	if score > sharedHistoryClamp || score < -sharedHistoryClamp {
		t.Errorf("score %d escaped clamp bounds [-%d, %d]", score, sharedHistoryClamp, sharedHistoryClamp)
	}
}

func TestSharedHistoryClear(t *testing.T) {
	sh := NewSharedHistory()
	sh.Update(board.G1, board.F3, 300)

	if sh.Get(board.G1, board.F3) == 0 {
		t.Fatal("expected a nonzero score before Clear")
	}

	sh.Clear()
	if sh.Get(board.G1, board.F3) != 0 {
		t.Error("expected Clear to zero out every entry")
	}
}

func TestContinuationHistoryTableIsPerPieceSquare(t *testing.T) {
	mo := NewMoveOrderer()

	knightTable := mo.GetContinuationHistoryTable(board.WhiteKnight, board.F3)
	bishopTable := mo.GetContinuationHistoryTable(board.WhiteBishop, board.F3)
	if knightTable == bishopTable {
		t.Error("expected distinct continuation tables for different previous pieces")
	}

	// Same (piece, to) pair must always return the same table.
	again := mo.GetContinuationHistoryTable(board.WhiteKnight, board.F3)
	if again != knightTable {
		t.Error("expected GetContinuationHistoryTable to be stable for the same key")
	}
}

func TestUpdateContinuationHistoryRewardsGoodMoves(t *testing.T) {
	mo := NewMoveOrderer()
	table := mo.GetContinuationHistoryTable(board.WhiteKnight, board.F3)

	before := mo.GetContinuationHistoryScore(table, board.WhitePawn, board.E4)
	mo.UpdateContinuationHistory(board.WhiteKnight, board.F3, board.WhitePawn, board.E4, 6, 1, true)
	after := mo.GetContinuationHistoryScore(table, board.WhitePawn, board.E4)

	if after <= before {
		t.Errorf("expected continuation history to increase for a good move: before=%d after=%d", before, after)
	}
}

func TestUpdateContinuationHistoryPenalizesBadMoves(t *testing.T) {
	mo := NewMoveOrderer()
	table := mo.GetContinuationHistoryTable(board.WhiteKnight, board.F3)

	mo.UpdateContinuationHistory(board.WhiteKnight, board.F3, board.WhitePawn, board.E4, 6, 1, false)
	score := mo.GetContinuationHistoryScore(table, board.WhitePawn, board.E4)

	if score >= 0 {
		t.Errorf("expected a negative score after penalizing a move, got %d", score)
	}
}

func TestMoveOrdererClearAgesContinuationHistory(t *testing.T) {
	mo := NewMoveOrderer()
	table := mo.GetContinuationHistoryTable(board.WhiteKnight, board.F3)
	mo.UpdateContinuationHistory(board.WhiteKnight, board.F3, board.WhitePawn, board.E4, 10, 1, true)

	before := mo.GetContinuationHistoryScore(table, board.WhitePawn, board.E4)
	mo.Clear()
	after := mo.GetContinuationHistoryScore(table, board.WhitePawn, board.E4)

	if after != before/2 {
		t.Errorf("expected Clear to halve continuation history: before=%d after=%d", before, after)
	}
}
