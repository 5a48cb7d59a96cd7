package quotes

import (
	"math"
	"sort"
)

// Summary close price statistics of one stock
type Summary struct {
	Stock string
	Count int
	Mean  float64
	Min   float64
	Max   float64
}

// Summarize group prices by stock, sorted by stock
func Summarize(prices []*Price) []*Summary {
	groups := make(map[string]*Summary)
	sums := make(map[string]float64)
	for _, price := range prices {
		summary, found := groups[price.Stock]
		if !found {
			summary = &Summary{Stock: price.Stock, Min: math.Inf(1), Max: math.Inf(-1)}
			groups[price.Stock] = summary
		}

		summary.Count++
		sums[price.Stock] += price.Close
		summary.Min = math.Min(summary.Min, price.Close)
		summary.Max = math.Max(summary.Max, price.Close)
	}

	summaries := make([]*Summary, 0, len(groups))
	for stock, summary := range groups {
		summary.Mean = sums[stock] / float64(summary.Count)
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Stock < summaries[j].Stock
	})

	return summaries
}
