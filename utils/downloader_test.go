package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nzai/netop"
)

func TestGetBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}

		w.Write([]byte(r.Header.Get("Accept")))
	}))
	defer server.Close()

	got, err := GetBytes(context.Background(), server.URL, netop.Header("Accept", "application/json"))
	if err != nil {
		t.Fatalf("GetBytes() error = %v", err)
	}

	if string(got) != "application/json" {
		t.Errorf("GetBytes() = %s, want application/json", got)
	}
}

func TestPostBytes_InvalidStatus(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}

		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := PostBytes(context.Background(), server.URL, netop.ValidStatusCode(http.StatusOK))
	if !errors.Is(err, netop.ErrInvalidResponseStatusCode) {
		t.Errorf("PostBytes() error = %v, want %v", err, netop.ErrInvalidResponseStatusCode)
	}

	if got := requests.Load(); got != 1 {
		t.Errorf("PostBytes() sent %d requests, want 1", got)
	}
}

func TestGetBytes_Retry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	start := time.Now()
	_, err := GetBytes(context.Background(), url, netop.Retry(2, time.Millisecond*20))
	if err == nil {
		t.Fatalf("GetBytes() error = nil, want connection error")
	}

	// two retries, each after the interval
	if elapsed := time.Since(start); elapsed < time.Millisecond*40 {
		t.Errorf("GetBytes() gave up after %v, want at least 40ms", elapsed)
	}
}

func TestGetBytes_Canceled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := WithTimeout(context.Background(), time.Millisecond*50)
	defer cancel()

	_, err := GetBytes(ctx, server.URL)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("GetBytes() error = %v, want %v", err, context.DeadlineExceeded)
	}

	ctx, cancel = context.WithCancel(context.Background())
	cancel()

	_, err = PostBytes(ctx, server.URL)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("PostBytes() error = %v, want %v", err, context.Canceled)
	}
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), 0)
	defer cancel()

	if _, found := ctx.Deadline(); found {
		t.Errorf("WithTimeout(0) has deadline")
	}

	ctx, cancel = WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, found := ctx.Deadline(); !found {
		t.Errorf("WithTimeout(1m) has no deadline")
	}
}
