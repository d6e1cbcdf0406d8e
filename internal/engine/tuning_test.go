package engine

import "testing"

func TestAbs(t *testing.T) {
	cases := []struct{ in, want int }{
		{5, 5},
		{-5, 5},
		{0, 0},
		{-1, 1},
	}
	for _, c := range cases {
		if got := abs(c.in); got != c.want {
			t.Errorf("abs(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestLMPThresholdIsMonotonicallyIncreasing(t *testing.T) {
	for i := 1; i < len(lmpThreshold); i++ {
		if lmpThreshold[i] < lmpThreshold[i-1] {
			t.Errorf("lmpThreshold should not decrease with depth: [%d]=%d < [%d]=%d",
				i, lmpThreshold[i], i-1, lmpThreshold[i-1])
		}
	}
}

func TestPruningFlagsDefaultEnabled(t *testing.T) {
	flags := []bool{
		EnableThreatExt,
		EnableHindsightDepth,
		EnableRFP,
		EnableRazoring,
		EnableNMP,
		EnableProbcut,
		EnableMulticut,
		EnableFutilityPruning,
		EnableSingularExt,
		EnableSEEPruning,
		EnableLMP,
		EnableHistoryPruning,
	}
	for i, f := range flags {
		if !f {
			t.Errorf("expected pruning/extension flag %d to default to enabled", i)
		}
	}
}
