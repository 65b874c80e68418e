package analyzers

import (
	"math"
	"testing"
)

func TestStatsEqualCounts(t *testing.T) {
	var s Stats
	res := s.Compare(20, 20)
	if res.ZScore != 0 {
		t.Fatalf("z-score = %v, want 0", res.ZScore)
	}
	if math.Abs(res.PValue-1) > 1e-9 {
		t.Fatalf("p-value = %v, want 1", res.PValue)
	}
	if res.Significant {
		t.Fatalf("equal counts significant: %+v", res)
	}
	if res.ConfidenceLevel != 0.95 {
		t.Fatalf("confidence level = %v", res.ConfidenceLevel)
	}
}

func TestStatsLargeDifference(t *testing.T) {
	var s Stats
	res := s.Compare(100, 10)
	if res.ZScore <= 0 {
		t.Fatalf("z-score = %v, want positive", res.ZScore)
	}
	if res.PValue >= significanceAlpha {
		t.Fatalf("p-value = %v, want < %v", res.PValue, significanceAlpha)
	}
	if !res.Significant {
		t.Fatalf("large difference not significant: %+v", res)
	}
	if res.ChiSquare <= 0 || res.ChiSquarePValue >= significanceAlpha {
		t.Fatalf("chi-square = %+v", res)
	}
}

func TestStatsDecreaseHasNegativeZ(t *testing.T) {
	var s Stats
	res := s.Compare(5, 50)
	if res.ZScore >= 0 {
		t.Fatalf("z-score = %v, want negative", res.ZScore)
	}
}

func TestStatsZeroCounts(t *testing.T) {
	var s Stats
	res := s.Compare(0, 0)
	if res.ZScore != 0 || res.Significant {
		t.Fatalf("zero counts = %+v", res)
	}
}
