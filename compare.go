package etfcast

// ComparisonOutcome relates the final snapshots of two projections simulated
// under the same plan.
type ComparisonOutcome struct {
	SymbolA, SymbolB string
	FinalA, FinalB   Snapshot
	Difference       float64 // FinalA.Assets - FinalB.Assets
	Winner           string  // symbol with strictly greater final assets, "" on a tie
}

// Tie reports whether the two final asset values are exactly equal. A tie
// favors neither symbol.
func (o ComparisonOutcome) Tie() bool { return o.Winner == "" }

// Compare relates two projection results by their final snapshots.
//
// The comparison is meaningful only when both results were simulated under
// an identical plan; the caller is responsible for passing matching
// configurations.
func Compare(a, b ProjectionResult) ComparisonOutcome {
	outcome := ComparisonOutcome{
		SymbolA: a.Symbol,
		SymbolB: b.Symbol,
		FinalA:  a.Final(),
		FinalB:  b.Final(),
	}
	outcome.Difference = outcome.FinalA.Assets - outcome.FinalB.Assets
	switch {
	case outcome.Difference > 0:
		outcome.Winner = a.Symbol
	case outcome.Difference < 0:
		outcome.Winner = b.Symbol
	}
	return outcome
}
