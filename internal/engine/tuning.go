package engine

// Pruning/extension/reduction feature flags and their numeric thresholds.
//
// None of these were declared anywhere in the retrieved worker.go's package,
// even though worker.go's negamax references every one of them by name (see
// DESIGN.md "Tuning constants module"). Values below follow the formulas
// worker.go's own inline comments already describe, and lmpThreshold follows
// spec.md section 4.10's literal late-move-pruning table.

const (
	EnableThreatExt       = true
	EnableHindsightDepth  = true
	EnableRFP             = true
	EnableRazoring        = true
	EnableNMP             = true
	EnableProbcut         = true
	EnableMulticut        = true
	EnableFutilityPruning = true
	EnableSingularExt     = true
	EnableSEEPruning      = true
	EnableLMP             = true
	EnableHistoryPruning  = true
)

const (
	// threatExtensionMinDepth gates the serious-threat extension to deeper
	// nodes only, avoiding extension thrash near the search frontier.
	threatExtensionMinDepth = 5

	// threatExtensionThreshold: a threatened piece must be worth at least a
	// minor piece for the extension to trigger.
	threatExtensionThreshold = 300

	// probcutDepth: minimum depth before ProbCut is attempted.
	probcutDepth = 5

	// multicutDepth/multicutMoves/multicutRequired: Multi-Cut searches up to
	// multicutMoves candidate moves at depth-4 and prunes the node if at
	// least multicutRequired of them produce a beta cutoff.
	multicutDepth     = 6
	multicutMoves     = 6
	multicutRequired  = 3

	// historyPruningThreshold: quiet moves with a butterfly-history score
	// below this are skipped outright at shallow depth.
	historyPruningThreshold = -2000

	// lazyEvalMargin: quiescence search's cheap material-only eval must miss
	// alpha/beta by more than this before the full evaluator is invoked.
	lazyEvalMargin = 125
)

// lmpThreshold[depth] is the move-count threshold for Late Move Pruning,
// indexed 1..len(lmpThreshold)-1 (index 0 unused). Values follow spec.md
// section 4.10's improving-side table; the donor scales this down (roughly
// *2/3) for non-improving nodes at the call site in worker.go.
var lmpThreshold = [16]int{
	0,
	5, 6, 9, 14, 21, 30, 41, 55, 69, 84,
	100, 117, 135, 154, 174,
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
