package stats

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestCalculateStatisticsKnownSample(t *testing.T) {
	mean, stdev, err := CalculateStatistics([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatalf("CalculateStatistics: %v", err)
	}
	if !closeTo(mean, 5.0) {
		t.Fatalf("mean = %v, want 5.0", mean)
	}
	if want := math.Sqrt(32.0 / 7.0); !closeTo(stdev, want) {
		t.Fatalf("stdev = %v, want %v", stdev, want)
	}
}

func TestCalculateStatisticsSingleValue(t *testing.T) {
	mean, stdev, err := CalculateStatistics([]float64{42.5})
	if err != nil {
		t.Fatalf("CalculateStatistics: %v", err)
	}
	if mean != 42.5 || stdev != 0 {
		t.Fatalf("got (%v, %v), want (42.5, 0)", mean, stdev)
	}
}

func TestCalculateStatisticsIdenticalValues(t *testing.T) {
	mean, stdev, err := CalculateStatistics([]float64{3, 3, 3, 3})
	if err != nil {
		t.Fatalf("CalculateStatistics: %v", err)
	}
	if mean != 3 || stdev != 0 {
		t.Fatalf("got (%v, %v), want (3, 0)", mean, stdev)
	}
}

func TestCalculateStatisticsEmpty(t *testing.T) {
	if _, _, err := CalculateStatistics(nil); err == nil {
		t.Fatal("expected error for empty sample")
	}
}

func TestConfidenceInterval95(t *testing.T) {
	lower, upper, err := ConfidenceInterval(100.0, 10.0, 25, 0.95)
	if err != nil {
		t.Fatalf("ConfidenceInterval: %v", err)
	}
	if !closeTo(lower, 96.08) || !closeTo(upper, 103.92) {
		t.Fatalf("got (%v, %v), want (96.08, 103.92)", lower, upper)
	}
}

func TestConfidenceInterval99(t *testing.T) {
	lower, upper, err := ConfidenceInterval(100.0, 10.0, 25, 0.99)
	if err != nil {
		t.Fatalf("ConfidenceInterval: %v", err)
	}
	if !closeTo(lower, 100-2.576*2) || !closeTo(upper, 100+2.576*2) {
		t.Fatalf("got (%v, %v), want (94.848, 105.152)", lower, upper)
	}
}

func TestConfidenceIntervalUnrecognizedLevelFallsBack(t *testing.T) {
	lower95, upper95, err := ConfidenceInterval(10, 2, 16, 0.95)
	if err != nil {
		t.Fatalf("ConfidenceInterval: %v", err)
	}
	lower, upper, err := ConfidenceInterval(10, 2, 16, 0.90)
	if err != nil {
		t.Fatalf("ConfidenceInterval: %v", err)
	}
	if lower != lower95 || upper != upper95 {
		t.Fatalf("0.90 level got (%v, %v), want 0.95 fallback (%v, %v)", lower, upper, lower95, upper95)
	}
}

func TestConfidenceIntervalZeroStdev(t *testing.T) {
	for _, n := range []int{1, 2, 100} {
		lower, upper, err := ConfidenceInterval(7.5, 0, n, 0.95)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if lower != 7.5 || upper != 7.5 {
			t.Fatalf("n=%d: got (%v, %v), want (7.5, 7.5)", n, lower, upper)
		}
	}
}

func TestConfidenceIntervalSingleSample(t *testing.T) {
	lower, upper, err := ConfidenceInterval(5, 2, 1, 0.95)
	if err != nil {
		t.Fatalf("ConfidenceInterval: %v", err)
	}
	// se equals stdev when n is 1
	if !closeTo(lower, 5-1.96*2) || !closeTo(upper, 5+1.96*2) {
		t.Fatalf("got (%v, %v)", lower, upper)
	}
}

func TestConfidenceIntervalInvalidSampleSize(t *testing.T) {
	for _, n := range []int{0, -1, -25} {
		if _, _, err := ConfidenceInterval(1, 1, n, 0.95); err == nil {
			t.Fatalf("n=%d: expected error", n)
		}
	}
}
