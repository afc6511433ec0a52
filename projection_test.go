package etfcast

import (
	"errors"
	"math"
	"testing"
)

// planMetrics returns metrics with hand-picked rates, bypassing extraction.
func planMetrics(symbol string, growth, yield, price float64) HistoricalMetrics {
	return HistoricalMetrics{
		Symbol:      symbol,
		GrowthRate:  growth,
		YieldRate:   yield,
		Years:       10,
		LatestPrice: price,
	}
}

func TestProjectionConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		config ProjectionConfig
		ok     bool
	}{
		{"valid", ProjectionConfig{Monthly: 1000, Years: 10}, true},
		{"lump only", ProjectionConfig{LumpSum: 10000, Years: 1}, true},
		{"zero zero", ProjectionConfig{Years: 10}, false},
		{"negative lump", ProjectionConfig{LumpSum: -1, Monthly: 100, Years: 10}, false},
		{"negative monthly", ProjectionConfig{Monthly: -100, Years: 10}, false},
		{"horizon too short", ProjectionConfig{Monthly: 100, Years: 0}, false},
		{"horizon too long", ProjectionConfig{Monthly: 100, Years: 41}, false},
		{"horizon at max", ProjectionConfig{Monthly: 100, Years: 40}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.config.Validate()
			if c.ok && err != nil {
				t.Errorf("Validate() error = %v want nil", err)
			}
			if !c.ok {
				var invalid *InvalidConfigError
				if !errors.As(err, &invalid) {
					t.Errorf("Validate() error = %v want InvalidConfigError", err)
				}
			}
		})
	}
}

func TestSimulate_RejectsInvalidPrice(t *testing.T) {
	_, err := Simulate(planMetrics("ZERO", 0.05, 0, 0), ProjectionConfig{Monthly: 1000, Years: 1})
	var invalid *InvalidPriceError
	if !errors.As(err, &invalid) {
		t.Fatalf("Simulate() error = %v, want InvalidPriceError", err)
	}
}

func TestSimulate_FirstMonth(t *testing.T) {
	// Reference scenario: 10% growth, 2% yield, 1000/month over one year.
	metrics := planMetrics("REF", 0.10, 0.02, 100)
	config := ProjectionConfig{Monthly: 1000, Years: 1, Reinvest: true}

	result, err := Simulate(metrics, config)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if len(result.Snapshots) != 12 {
		t.Fatalf("len(Snapshots) = %d want 12", len(result.Snapshots))
	}

	first := result.Snapshots[0]
	if abs(first.Price-100.797) > 0.001 {
		t.Errorf("month 1 Price = %v want ~100.797", first.Price)
	}
	if first.Cost != 1000 {
		t.Errorf("month 1 Cost = %v want 1000", first.Cost)
	}
	// Shares bought at the grown price, plus the reinvested distribution.
	bought := 1000 / first.Price
	if abs(bought-9.921) > 0.001 {
		t.Errorf("month 1 shares bought = %v want ~9.921", bought)
	}
	if first.Shares <= bought {
		t.Errorf("month 1 Shares = %v want > %v (reinvested distribution)", first.Shares, bought)
	}
	if first.Distributions <= 0 {
		t.Errorf("month 1 Distributions = %v want > 0", first.Distributions)
	}
	if first.Cash != 0 {
		t.Errorf("month 1 Cash = %v want 0 when reinvesting", first.Cash)
	}
}

func TestSimulate_Monotonic(t *testing.T) {
	metrics := planMetrics("MONO", -0.30, 0.05, 42) // even a falling price keeps totals monotonic
	config := ProjectionConfig{LumpSum: 5000, Monthly: 250, Years: 7, Reinvest: false}

	result, err := Simulate(metrics, config)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	var prev Snapshot
	for i, s := range result.Snapshots {
		if s.Month != i+1 {
			t.Fatalf("Snapshots[%d].Month = %d want %d", i, s.Month, i+1)
		}
		if want := i/12 + 1; s.Year != want {
			t.Fatalf("Snapshots[%d].Year = %d want %d", i, s.Year, want)
		}
		if i > 0 {
			if s.Cost < prev.Cost {
				t.Errorf("month %d Cost decreased: %v < %v", s.Month, s.Cost, prev.Cost)
			}
			if s.Shares < prev.Shares {
				t.Errorf("month %d Shares decreased: %v < %v", s.Month, s.Shares, prev.Shares)
			}
			if s.Distributions < prev.Distributions {
				t.Errorf("month %d Distributions decreased: %v < %v", s.Month, s.Distributions, prev.Distributions)
			}
		}
		prev = s
	}
}

func TestSimulate_LumpSumOnly(t *testing.T) {
	metrics := planMetrics("LUMP", 0.08, 0, 200)
	config := ProjectionConfig{LumpSum: 10000, Years: 5, Reinvest: true}

	result, err := Simulate(metrics, config)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	final := result.Final()
	if final.Cost != 10000 {
		t.Errorf("final Cost = %v want 10000", final.Cost)
	}
	// Shares are bought once at the initial price and never change.
	if abs(final.Shares-50) > 1e-9 {
		t.Errorf("final Shares = %v want 50", final.Shares)
	}
	// 8% annual growth compounds to (1.08)^5 over 60 geometric months.
	wantAssets := 10000 * math.Pow(1.08, 5)
	if abs(final.Assets-wantAssets) > 1e-6 {
		t.Errorf("final Assets = %v want %v", final.Assets, wantAssets)
	}
	if abs(final.Profit-(final.Assets-final.Cost)) > 1e-9 {
		t.Errorf("final Profit = %v want Assets-Cost = %v", final.Profit, final.Assets-final.Cost)
	}
	if final.AvgCost != 200 {
		t.Errorf("final AvgCost = %v want 200", final.AvgCost)
	}
}

func TestSimulate_ReinvestToggle(t *testing.T) {
	metrics := planMetrics("TOGGLE", 0.10, 0.03, 100)
	base := ProjectionConfig{Monthly: 1000, Years: 3}

	withReinvest := base
	withReinvest.Reinvest = true
	asCash := base
	asCash.Reinvest = false

	reinvested, err := Simulate(metrics, withReinvest)
	if err != nil {
		t.Fatalf("Simulate(reinvest) error = %v", err)
	}
	cashed, err := Simulate(metrics, asCash)
	if err != nil {
		t.Fatalf("Simulate(cash) error = %v", err)
	}

	// Month 1: reinvestment changes composition, not value.
	r1, c1 := reinvested.Snapshots[0], cashed.Snapshots[0]
	if r1.Shares <= c1.Shares {
		t.Errorf("month 1 reinvested Shares = %v want > %v", r1.Shares, c1.Shares)
	}
	if abs(r1.Assets-c1.Assets) > 1e-6 {
		t.Errorf("month 1 Assets differ: %v vs %v", r1.Assets, c1.Assets)
	}

	// Afterwards the reinvested shares compound with price growth and the
	// two trajectories diverge, increasingly.
	prevGap := 0.0
	for m := 1; m < len(reinvested.Snapshots); m++ {
		gap := reinvested.Snapshots[m].Assets - cashed.Snapshots[m].Assets
		if gap <= prevGap {
			t.Fatalf("month %d divergence %v did not grow past %v", m+1, gap, prevGap)
		}
		prevGap = gap
	}

	if reinvested.Final().Shares <= cashed.Final().Shares {
		t.Errorf("final reinvested Shares = %v want > %v", reinvested.Final().Shares, cashed.Final().Shares)
	}
}

func TestProjectionResult_ROI(t *testing.T) {
	metrics := planMetrics("ROI", 0.10, 0, 100)
	result, err := Simulate(metrics, ProjectionConfig{LumpSum: 1000, Years: 1})
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	want := Percent(100 * (math.Pow(1.10, 1) - 1))
	if !result.ROI().Equal(want) {
		t.Errorf("ROI() = %v want %v", result.ROI(), want)
	}
}
