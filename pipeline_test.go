package etfcast

import (
	"errors"
	"fmt"
	"testing"

	"github.com/etnz/etfcast/date"
)

// fakeProvider serves canned histories, or errors, per symbol.
type fakeProvider struct {
	prices    map[string]*date.History
	dividends map[string]*date.History
	fail      map[string]error
}

func (p *fakeProvider) PriceHistory(symbol string) (*date.History, error) {
	if err := p.fail[symbol]; err != nil {
		return nil, err
	}
	return p.prices[symbol], nil
}

func (p *fakeProvider) DividendHistory(symbol string) (*date.History, error) {
	if err := p.fail[symbol]; err != nil {
		return nil, err
	}
	return p.dividends[symbol], nil
}

func growingHistory(t *testing.T, start, end float64) *date.History {
	t.Helper()
	return history(t, map[string]float64{
		"2015-01-01": start,
		"2025-01-01": end,
	})
}

func TestRun(t *testing.T) {
	provider := &fakeProvider{
		prices: map[string]*date.History{
			"OK": growingHistory(t, 100, 200),
		},
		dividends: map[string]*date.History{},
	}

	report, err := Run(provider, "OK", ProjectionConfig{Monthly: 1000, Years: 10, Reinvest: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Metrics.Symbol != "OK" {
		t.Errorf("Metrics.Symbol = %q want OK", report.Metrics.Symbol)
	}
	if report.Metrics.LatestPrice != 200 {
		t.Errorf("Metrics.LatestPrice = %v want 200", report.Metrics.LatestPrice)
	}
	if got := len(report.Projection.Snapshots); got != 120 {
		t.Errorf("len(Snapshots) = %d want 120", got)
	}
}

func TestRun_FetchFailure(t *testing.T) {
	provider := &fakeProvider{
		fail: map[string]error{"GONE": fmt.Errorf("connection refused")},
	}

	_, err := Run(provider, "GONE", ProjectionConfig{Monthly: 1000, Years: 10})
	var unavail *DataUnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("Run() error = %v, want DataUnavailableError", err)
	}
	if unavail.Symbol != "GONE" {
		t.Errorf("DataUnavailableError.Symbol = %q want GONE", unavail.Symbol)
	}
	// The original fetch message must be preserved, not flattened.
	if got := unavail.Error(); got == "" || unavail.Unwrap().Error() != "connection refused" {
		t.Errorf("wrapped error = %q want original message preserved", got)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	provider := &fakeProvider{}
	_, err := Run(provider, "ANY", ProjectionConfig{Years: 10}) // zero-zero plan
	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Fatalf("Run() error = %v, want InvalidConfigError", err)
	}
}

func TestRunPair(t *testing.T) {
	provider := &fakeProvider{
		prices: map[string]*date.History{
			"SLOW": growingHistory(t, 100, 150),
			"FAST": growingHistory(t, 100, 300),
		},
		dividends: map[string]*date.History{},
	}

	pair := RunPair(provider, "SLOW", "FAST", ProjectionConfig{Monthly: 1000, Years: 10, Reinvest: true})
	if pair.ErrA != nil || pair.ErrB != nil {
		t.Fatalf("RunPair() errors = %v, %v", pair.ErrA, pair.ErrB)
	}
	if pair.Comparison == nil {
		t.Fatal("Comparison = nil want an outcome")
	}
	if pair.Comparison.Winner != "FAST" {
		t.Errorf("Winner = %q want FAST", pair.Comparison.Winner)
	}
}

func TestRunPair_FailureIsolation(t *testing.T) {
	provider := &fakeProvider{
		prices: map[string]*date.History{
			"OK": growingHistory(t, 100, 150),
		},
		dividends: map[string]*date.History{},
		fail:      map[string]error{"GONE": fmt.Errorf("no such symbol")},
	}

	pair := RunPair(provider, "OK", "GONE", ProjectionConfig{Monthly: 1000, Years: 5, Reinvest: true})

	if pair.ErrA != nil {
		t.Errorf("ErrA = %v want nil", pair.ErrA)
	}
	if pair.A == nil {
		t.Error("A = nil, the surviving leg must still report")
	}
	var unavail *DataUnavailableError
	if !errors.As(pair.ErrB, &unavail) {
		t.Errorf("ErrB = %v want DataUnavailableError", pair.ErrB)
	}
	if pair.Comparison != nil {
		t.Error("Comparison != nil want skipped when a leg fails")
	}
}
