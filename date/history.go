package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of float64 values, each associated
// with a specific date. It ensures that dates are unique and the series is
// always sorted.
type History struct {
	days   []Date
	values []float64
}

// First returns the earliest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History) First() (day Date, value float64) {
	if len(h.days) == 0 {
		return Date{}, 0
	}
	return h.days[0], h.values[0]
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History) Latest() (day Date, value float64) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return h.days[last], h.values[last]
}

// Len returns the number of items in the history.
func (h *History) Len() int { return len(h.days) }

// Span returns the number of whole days between the first and the latest
// entries. An empty or single-point history has a span of 0.
func (h *History) Span() int {
	if len(h.days) < 2 {
		return 0
	}
	return h.days[len(h.days)-1].Sub(h.days[0])
}

// chronological is a private implementation to make this history chronologically sorted.
type chronological struct{ *History }

func (s chronological) Len() int           { return len(s.days) }
func (s chronological) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }

func (s chronological) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// sort sorts the history in chronological order.
func (h *History) sort() { sort.Sort(chronological{h}) }

// Append adds a point to the history.
//
// Existing value at that date is overwritten.
func (h *History) Append(on Date, q float64) *History {
	if i := slices.Index(h.days, on); i >= 0 {
		// Found a point at that exact same day.
		// We choose to replace, because it will give higher priority to the last data
		h.values[i] = q
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, q)
	h.sort()
	return h
}

// AppendAdd adds a point to the history.
//
// Existing value at that date is accumulated, which is the behavior wanted
// for several cash distributions falling on the same day.
func (h *History) AppendAdd(on Date, q float64) *History {
	if i := slices.Index(h.days, on); i >= 0 {
		h.values[i] += q
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, q)
	h.sort()
	return h
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true, or zero and false.
func (h *History) Get(day Date) (float64, bool) {
	if i := slices.Index(h.days, day); i >= 0 {
		return h.values[i], true
	}
	return 0, false
}

// Sum returns the sum of all values in the history.
func (h *History) Sum() float64 {
	var total float64
	for _, v := range h.values {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of all values, or 0 for an empty history.
func (h *History) Mean() float64 {
	if len(h.values) == 0 {
		return 0
	}
	return h.Sum() / float64(len(h.values))
}

// SumByYear groups values by calendar year and sums each group.
func (h *History) SumByYear() map[int]float64 {
	sums := make(map[int]float64)
	for i, on := range h.days {
		sums[on.Year()] += h.values[i]
	}
	return sums
}

// MeanByYear groups values by calendar year and averages each group.
func (h *History) MeanByYear() map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for i, on := range h.days {
		y := on.Year()
		sums[y] += h.values[i]
		counts[y]++
	}
	means := make(map[int]float64, len(sums))
	for y, s := range sums {
		means[y] = s / float64(counts[y])
	}
	return means
}
