// Package yahoo implements the etfcast.HistoryProvider collaborator against
// the Yahoo Finance chart API. One chart call per symbol returns the full
// daily close history together with dividend events.
package yahoo

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/etfcast/date"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Provider fetches price and dividend history from Yahoo Finance.
type Provider struct {
	baseURL string
	client  httpGetter

	mu     sync.Mutex
	charts map[string][]byte // raw chart payload per symbol
}

// New returns a Provider. With cache enabled, responses are kept on disk and
// expire daily; proxyURL may be empty.
func New(proxyURL string, cache bool) *Provider {
	return &Provider{
		baseURL: defaultBaseURL,
		client:  newClient(proxyURL, cache),
		charts:  make(map[string][]byte),
	}
}

// chart is the typed part of the Yahoo chart API response. The dividend
// events are left out on purpose: their keys are arbitrary timestamps and
// are extracted with jsonpath instead.
type chart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*decimal.Decimal `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// fetch returns the raw chart payload for a symbol, at most once per
// Provider instance.
func (p *Provider) fetch(symbol string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if body, ok := p.charts[symbol]; ok {
		return body, nil
	}

	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=max&events=div",
		p.baseURL, url.PathEscape(symbol))
	body, err := wget(p.client, addr)
	if err != nil {
		return nil, err
	}
	p.charts[symbol] = body
	return body, nil
}

// PriceHistory returns the full daily close history for a symbol.
func (p *Provider) PriceHistory(symbol string) (*date.History, error) {
	body, err := p.fetch(symbol)
	if err != nil {
		return nil, err
	}

	var c chart
	if err := json.Unmarshal(body, &c); err != nil {
		return nil, fmt.Errorf("decoding chart for %q: %w", symbol, err)
	}
	if c.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error for %q: %s", symbol, c.Chart.Error.Description)
	}
	if len(c.Chart.Result) == 0 || len(c.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no chart data returned for %q", symbol)
	}

	result := c.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	history := new(date.History)
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue // null bars on holidays
		}
		price := closes[i].InexactFloat64()
		if price <= 0 {
			continue
		}
		history.Append(date.FromTime(time.Unix(ts, 0).UTC()), price)
	}
	return history, nil
}

// DividendHistory returns the per-share distribution history for a symbol.
// A security that never distributed yields an empty history, not an error.
func (p *Provider) DividendHistory(symbol string) (*date.History, error) {
	body, err := p.fetch(symbol)
	if err != nil {
		return nil, err
	}

	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("decoding chart for %q: %w", symbol, err)
	}

	// The dividends object is keyed by epoch timestamps, so it is reached by
	// path rather than by a typed struct.
	jval, err := jsonpath.Get("$.chart.result[0].events.dividends", jobj)
	if err != nil {
		// No events at all is the normal case for non-distributing funds.
		return new(date.History), nil
	}
	events, ok := jval.(map[string]any)
	if !ok {
		return new(date.History), nil
	}

	history := new(date.History)
	for _, jev := range events {
		ev, ok := jev.(map[string]any)
		if !ok {
			continue
		}
		amount, ok := ev["amount"].(float64)
		if !ok || amount < 0 {
			continue
		}
		ts, ok := ev["date"].(float64)
		if !ok {
			continue
		}
		// Several distributions on the same day accumulate.
		history.AppendAdd(date.FromTime(time.Unix(int64(ts), 0).UTC()), amount)
	}
	return history, nil
}
