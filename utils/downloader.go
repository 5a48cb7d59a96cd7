package utils

import (
	"context"
	"time"

	"github.com/nzai/netop"
	"go.uber.org/zap"
)

type netopCall func(url string, parameters ...netop.RequestParam) ([]byte, error)

type netopResult struct {
	buffer []byte
	err    error
}

// GetBytes download bytes by url, until ctx done
func GetBytes(ctx context.Context, url string, parameters ...netop.RequestParam) ([]byte, error) {
	return request(ctx, netop.GetBytes, url, parameters...)
}

// PostBytes post to url and return response bytes, until ctx done
func PostBytes(ctx context.Context, url string, parameters ...netop.RequestParam) ([]byte, error) {
	return request(ctx, netop.PostBytes, url, parameters...)
}

// WithTimeout derive ctx bounded by timeout, timeout <= 0 keeps ctx as is
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

// request run netop call in background, relay its retry and progress reports to the logger.
// a request abandoned on ctx done keeps running until netop returns.
func request(ctx context.Context, call netopCall, url string, parameters ...netop.RequestParam) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logs := make(chan string)
	progress := make(chan *netop.Progress)
	go func() {
		for message := range logs {
			zap.L().Debug(message, zap.String("url", url))
		}
	}()
	go func() {
		for p := range progress {
			zap.L().Debug("download progress",
				zap.String("url", url),
				zap.Int64("completed", p.Completed),
				zap.Int64("total", p.Total),
				zap.Int64("speed", p.Speed))
		}
	}()

	done := make(chan netopResult, 1)
	go func() {
		defer close(progress)
		defer close(logs)

		buffer, err := call(url, append([]netop.RequestParam{netop.Log(logs), netop.OnProgress(progress, time.Second)}, parameters...)...)
		done <- netopResult{buffer: buffer, err: err}
	}()

	select {
	case <-ctx.Done():
		zap.L().Warn("request abandoned", zap.Error(ctx.Err()), zap.String("url", url))
		return nil, ctx.Err()
	case result := <-done:
		if result.err != nil {
			zap.L().Warn("request failed", zap.Error(result.err), zap.String("url", url))
			return nil, result.err
		}

		return result.buffer, nil
	}
}
