package schedulers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Pacer define wait before next request
type Pacer interface {
	Wait(ctx context.Context) error
}

// FixedDelay sleep a fixed interval on every wait, concurrent waits run one after another
type FixedDelay struct {
	mutex    sync.Mutex
	interval time.Duration
}

// NewFixedDelay create fixed delay pacer
func NewFixedDelay(interval time.Duration) *FixedDelay {
	return &FixedDelay{interval: interval}
}

// Wait sleep interval or until ctx done
func (p *FixedDelay) Wait(ctx context.Context) error {
	if p.interval <= 0 {
		return ctx.Err()
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RateLimit keep a minimum interval between waits across goroutines
type RateLimit struct {
	limiter *rate.Limiter
}

// NewRateLimit create token bucket pacer, one token per interval
func NewRateLimit(interval time.Duration, burst int) *RateLimit {
	if burst < 1 {
		burst = 1
	}

	return &RateLimit{limiter: rate.NewLimiter(rate.Every(interval), burst)}
}

// Wait block until a token is available
func (p RateLimit) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// NoDelay never waits
type NoDelay struct{}

// Wait return immediately
func (NoDelay) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Parse create pacer by name: fixed, rate or none
func Parse(name string, interval time.Duration, burst int) (Pacer, error) {
	switch name {
	case "", "fixed":
		return NewFixedDelay(interval), nil
	case "rate":
		return NewRateLimit(interval, burst), nil
	case "none":
		return NoDelay{}, nil
	default:
		return nil, fmt.Errorf("pacing invalid: %s", name)
	}
}
