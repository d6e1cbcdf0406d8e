package engine

import (
	"testing"

	"github.com/nimzobot/corechess/internal/tablebase"
)

func TestSetThreadsRebuildsWorkerPool(t *testing.T) {
	eng := NewEngine(1)

	eng.SetThreads(1)
	if len(eng.workers) != 1 {
		t.Fatalf("expected 1 worker after SetThreads(1), got %d", len(eng.workers))
	}

	eng.SetThreads(4)
	if len(eng.workers) != 4 {
		t.Fatalf("expected 4 workers after SetThreads(4), got %d", len(eng.workers))
	}

	// Every worker should share the same transposition table and pawn table
	// rather than each getting a private copy.
	for _, w := range eng.workers {
		if w.tt != eng.tt {
			t.Error("expected worker to share the engine's transposition table")
		}
		if w.pawnTable != eng.pawnTable {
			t.Error("expected worker to share the engine's pawn table")
		}
	}

	// Out-of-range values should clamp rather than leave the pool empty.
	eng.SetThreads(0)
	if len(eng.workers) != 1 {
		t.Fatalf("expected SetThreads(0) to clamp to 1 worker, got %d", len(eng.workers))
	}
}

func TestSetHashSizeReplacesSharedTable(t *testing.T) {
	eng := NewEngine(1)
	old := eng.tt

	eng.SetHashSize(4)
	if eng.tt == old {
		t.Error("expected SetHashSize to install a new transposition table")
	}
	for _, w := range eng.workers {
		if w.tt != eng.tt {
			t.Error("expected every worker to pick up the resized table")
		}
	}
	if eng.mpvWorker.tt != eng.tt {
		t.Error("expected the multi-PV worker to pick up the resized table")
	}
}

func TestSetTablebasePropagatesToWorkers(t *testing.T) {
	eng := NewEngine(1)
	prober := tablebase.NoopProber{}

	eng.SetTablebase(prober)

	for _, w := range eng.workers {
		if w.tbProber != prober {
			t.Error("expected SetTablebase to reach every worker")
		}
	}
	if eng.mpvWorker.tbProber != prober {
		t.Error("expected SetTablebase to reach the multi-PV worker")
	}
}

func TestSetSyzygyProbeDepthAppliesToWorkersAndClamps(t *testing.T) {
	eng := NewEngine(1)
	eng.SetTablebase(tablebase.NoopProber{})

	eng.SetSyzygyProbeDepth(3)
	for _, w := range eng.workers {
		if w.tbProbeDepth != 3 {
			t.Errorf("expected worker probe depth 3, got %d", w.tbProbeDepth)
		}
	}

	// A non-positive depth must clamp to 1, never disable probing entirely.
	eng.SetSyzygyProbeDepth(0)
	for _, w := range eng.workers {
		if w.tbProbeDepth != 1 {
			t.Errorf("expected SetSyzygyProbeDepth(0) to clamp to 1, got %d", w.tbProbeDepth)
		}
	}
}

func TestRebuildWorkersReappliesTablebase(t *testing.T) {
	eng := NewEngine(1)
	prober := tablebase.NoopProber{}
	eng.SetTablebase(prober)
	eng.SetSyzygyProbeDepth(2)

	// Changing thread count must not silently drop a configured tablebase.
	eng.SetThreads(3)

	for _, w := range eng.workers {
		if w.tbProber != prober {
			t.Error("expected tablebase to survive a thread-count change")
		}
		if w.tbProbeDepth != 2 {
			t.Errorf("expected probe depth to survive a thread-count change, got %d", w.tbProbeDepth)
		}
	}
}
