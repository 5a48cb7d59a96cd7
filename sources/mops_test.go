package sources

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nzai/finstat/constants"
	"github.com/nzai/finstat/statements"
	"golang.org/x/text/encoding/traditionalchinese"
)

func TestMops_Fetch(t *testing.T) {
	page := "<html><body><table><tr><td>1100</td><td>現金及約當現金</td><td>1,000</td></tr></table></body></html>"
	encoded, err := traditionalchinese.Big5.NewEncoder().String(page)
	if err != nil {
		t.Fatalf("encode big5 error = %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}

		query := r.URL.Query()
		for key, want := range map[string]string{
			"step":      "1",
			"CO_ID":     "2330",
			"SYEAR":     "2023",
			"SSEASON":   "2",
			"REPORT_ID": "C",
		} {
			if got := query.Get(key); got != want {
				t.Errorf("query %s = %q, want %q", key, got, want)
			}
		}

		if got := r.Header.Get("User-Agent"); got != "finstat-test" {
			t.Errorf("user agent = %q", got)
		}

		// declared charset is wrong on purpose
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(encoded))
	}))
	defer server.Close()

	source := NewMops(
		WithTimeout(time.Second*5),
		WithEndpoint(server.URL),
		WithUserAgent("finstat-test"))

	got, err := source.Fetch(context.Background(), "2330", statements.Quarter{Year: 2023, Season: 2})
	if err != nil {
		t.Fatalf("Mops.Fetch() error = %v", err)
	}

	if got != page {
		t.Errorf("Mops.Fetch() = %q, want %q", got, page)
	}
}

func TestMops_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	source := NewMops(WithEndpoint(server.URL))
	_, err := source.Fetch(context.Background(), "2330", statements.Quarter{Year: 2023, Season: 4})
	if !errors.Is(err, constants.ErrUpstreamFetch) {
		t.Fatalf("Mops.Fetch() error = %v, want %v", err, constants.ErrUpstreamFetch)
	}

	for _, want := range []string{"2330", "2023Q4"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Mops.Fetch() error %q does not contain %s", err, want)
		}
	}

	server.Close()
	_, err = source.Fetch(context.Background(), "2330", statements.Quarter{Year: 2023, Season: 4})
	if !errors.Is(err, constants.ErrUpstreamFetch) {
		t.Errorf("Mops.Fetch() error = %v, want %v", err, constants.ErrUpstreamFetch)
	}
}

func TestMops_URL(t *testing.T) {
	got := NewMops().URL("2330", statements.Quarter{Year: 2024, Season: 1})
	want := constants.MopsEndpoint + "?step=1&CO_ID=2330&SYEAR=2024&SSEASON=1&REPORT_ID=C"
	if got != want {
		t.Errorf("Mops.URL() = %s, want %s", got, want)
	}
}

func TestMops_FetchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	source := NewMops(WithEndpoint(server.URL), WithTimeout(time.Millisecond*50))

	start := time.Now()
	_, err := source.Fetch(context.Background(), "2330", statements.Quarter{Year: 2023, Season: 1})
	if !errors.Is(err, context.DeadlineExceeded) || !errors.Is(err, constants.ErrUpstreamFetch) {
		t.Fatalf("Mops.Fetch() error = %v, want %v", err, context.DeadlineExceeded)
	}

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Mops.Fetch() returned after %v, want about 50ms", elapsed)
	}
}
