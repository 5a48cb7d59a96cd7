package quotes

import (
	"context"
	"time"
)

// Price one daily bar of a stock
type Price struct {
	Stock  string
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume uint64
}

// Provider define price dataset provider
type Provider interface {
	// Prices return every price row of the dataset
	Prices(ctx context.Context) ([]*Price, error)
}

// Static in memory price dataset
type Static []*Price

// Prices return rows as is
func (s Static) Prices(ctx context.Context) ([]*Price, error) {
	return s, nil
}
