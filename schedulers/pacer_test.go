package schedulers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestFixedDelay_Wait(t *testing.T) {
	pacer := NewFixedDelay(time.Millisecond * 20)

	start := time.Now()
	err := pacer.Wait(context.Background())
	if err != nil {
		t.Fatalf("FixedDelay.Wait() error = %v", err)
	}

	if elapsed := time.Since(start); elapsed < time.Millisecond*20 {
		t.Errorf("FixedDelay.Wait() returned after %v, want at least 20ms", elapsed)
	}
}

func TestFixedDelay_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFixedDelay(time.Hour).Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("FixedDelay.Wait() error = %v, want %v", err, context.Canceled)
	}
}

func TestFixedDelay_Concurrent(t *testing.T) {
	pacer := NewFixedDelay(time.Millisecond * 30)

	start := time.Now()
	var wg sync.WaitGroup
	for index := 0; index < 3; index++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pacer.Wait(context.Background())
		}()
	}
	wg.Wait()

	// waits run one after another
	if elapsed := time.Since(start); elapsed < time.Millisecond*90 {
		t.Errorf("3 concurrent FixedDelay.Wait() took %v, want at least 90ms", elapsed)
	}
}

func TestRateLimit_Wait(t *testing.T) {
	pacer := NewRateLimit(time.Millisecond*20, 1)

	start := time.Now()
	for index := 0; index < 3; index++ {
		err := pacer.Wait(context.Background())
		if err != nil {
			t.Fatalf("RateLimit.Wait() error = %v", err)
		}
	}

	// first token is free, the next two are spaced
	if elapsed := time.Since(start); elapsed < time.Millisecond*35 {
		t.Errorf("RateLimit.Wait() x3 took %v, want at least 35ms", elapsed)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{"fixed", false},
		{"rate", false},
		{"none", false},
		{"adaptive", true},
	}

	for _, _case := range cases {
		_, err := Parse(_case.name, time.Second, 1)
		if (err != nil) != _case.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", _case.name, err, _case.wantErr)
		}
	}
}
