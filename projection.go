package etfcast

import "math"

// Horizon bounds for a projection, in years.
const (
	MinHorizonYears = 1
	MaxHorizonYears = 40
)

// ProjectionConfig describes a future contribution plan.
type ProjectionConfig struct {
	LumpSum  float64 // one-time contribution applied before the first month
	Monthly  float64 // recurring contribution applied every month
	Years    int     // horizon, in [MinHorizonYears, MaxHorizonYears]
	Reinvest bool    // convert distributions to shares instead of cash
}

// Validate reports whether the plan can produce a meaningful projection.
func (c ProjectionConfig) Validate() error {
	if c.Years < MinHorizonYears || c.Years > MaxHorizonYears {
		return &InvalidConfigError{Reason: "horizon must be between 1 and 40 years"}
	}
	if c.LumpSum < 0 {
		return &InvalidConfigError{Reason: "lump sum cannot be negative"}
	}
	if c.Monthly < 0 {
		return &InvalidConfigError{Reason: "monthly contribution cannot be negative"}
	}
	if c.LumpSum == 0 && c.Monthly == 0 {
		return &InvalidConfigError{Reason: "lump sum and monthly contribution cannot both be zero"}
	}
	return nil
}

// Snapshot is the immutable state of the simulated position at the end of
// one month. Monetary fields are kept at full precision; rounding belongs to
// the presentation boundary.
type Snapshot struct {
	Month         int     // 1-indexed simulated month
	Year          int     // 1-indexed elapsed year, ((Month-1)/12)+1
	Cost          float64 // cumulative invested capital
	Shares        float64 // cumulative shares held
	Price         float64 // simulated per-share price
	Distributions float64 // cumulative distributions received
	Cash          float64 // wallet of non-reinvested distributions
	Assets        float64 // Shares*Price + Cash
	Profit        float64 // Assets - Cost
	AvgCost       float64 // Cost/Shares, 0 when no shares are held
}

// ProjectionResult is the month-by-month trajectory of one simulated plan.
// Snapshots are appended in simulation order and never revised.
type ProjectionResult struct {
	Symbol    string
	Metrics   HistoricalMetrics
	Config    ProjectionConfig
	Snapshots []Snapshot
}

// Final returns the last snapshot of the trajectory.
func (r ProjectionResult) Final() Snapshot {
	return r.Snapshots[len(r.Snapshots)-1]
}

// ROI returns the total return on invested capital at the end of the
// horizon.
func (r ProjectionResult) ROI() Percent {
	final := r.Final()
	if final.Cost == 0 {
		return 0
	}
	return Percent(100 * final.Profit / final.Cost)
}

// Simulate projects a contribution plan forward, one month at a time. It is
// a pure deterministic function of its two inputs.
//
// The annual growth rate is decomposed geometrically into a monthly rate,
// while the annual yield is divided linearly by 12. The asymmetry mirrors
// how the figures were derived and is intentional.
//
// Within a month the order is fixed: the price grows first, the monthly
// contribution then buys at the grown price, the distribution is computed on
// the resulting market value, and is either reinvested at the same price or
// kept as cash.
func Simulate(metrics HistoricalMetrics, config ProjectionConfig) (ProjectionResult, error) {
	if err := config.Validate(); err != nil {
		return ProjectionResult{}, err
	}
	if metrics.LatestPrice <= 0 {
		return ProjectionResult{}, &InvalidPriceError{Symbol: metrics.Symbol, Price: metrics.LatestPrice}
	}

	months := config.Years * 12
	monthlyGrowth := math.Pow(1+metrics.GrowthRate, 1.0/12) - 1
	monthlyYield := metrics.YieldRate / 12

	// running state, threaded through the month fold
	price := metrics.LatestPrice
	var shares, cost, cash, distributions float64
	if config.LumpSum > 0 {
		shares = config.LumpSum / price
		cost = config.LumpSum
	}

	result := ProjectionResult{
		Symbol:    metrics.Symbol,
		Metrics:   metrics,
		Config:    config,
		Snapshots: make([]Snapshot, 0, months),
	}

	for m := 1; m <= months; m++ {
		price *= 1 + monthlyGrowth

		if config.Monthly > 0 {
			shares += config.Monthly / price
			cost += config.Monthly
		}

		dividend := shares * price * monthlyYield
		distributions += dividend
		if config.Reinvest {
			shares += dividend / price
		} else {
			cash += dividend
		}

		assets := shares*price + cash
		var avgCost float64
		if shares > 0 {
			avgCost = cost / shares
		}

		result.Snapshots = append(result.Snapshots, Snapshot{
			Month:         m,
			Year:          (m-1)/12 + 1,
			Cost:          cost,
			Shares:        shares,
			Price:         price,
			Distributions: distributions,
			Cash:          cash,
			Assets:        assets,
			Profit:        assets - cost,
			AvgCost:       avgCost,
		})
	}
	return result, nil
}
