package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/nzai/finstat/constants"
	"github.com/nzai/finstat/quotes"
	"github.com/nzai/finstat/utils"
	"github.com/nzai/netop"
	"go.uber.org/zap"
)

// YahooFinance yahoo finance daily price source
type YahooFinance struct {
	endpoint      string
	timeout       time.Duration
	retry         int
	retryInterval time.Duration
}

// NewYahooFinance create yahoo finance source
func NewYahooFinance(endpoint string, timeout time.Duration) *YahooFinance {
	if endpoint == "" {
		endpoint = constants.YahooEndpoint
	}

	return &YahooFinance{
		endpoint:      endpoint,
		timeout:       timeout,
		retry:         constants.RetryCount,
		retryInterval: constants.RetryInterval,
	}
}

// Daily daily prices of symbol between start and end inclusive
func (yahoo YahooFinance) Daily(ctx context.Context, symbol string, start, end time.Time) ([]*quotes.Price, error) {
	period2 := end.AddDate(0, 0, 1)
	chartURL := fmt.Sprintf("%s%s?period1=%d&period2=%d&interval=1d&includePrePost=false",
		yahoo.endpoint, url.PathEscape(symbol), start.Unix(), period2.Unix())

	ctx, cancel := utils.WithTimeout(ctx, yahoo.timeout)
	defer cancel()

	// unknown symbols answer 404 with a chart error body
	buffer, err := utils.GetBytes(ctx, chartURL,
		netop.Header("Accept", "application/json"),
		netop.Retry(yahoo.retry, yahoo.retryInterval),
		netop.ValidStatusCode(http.StatusOK, http.StatusNotFound))
	if err != nil {
		zap.L().Error("download yahoo finance quote failed", zap.Error(err), zap.String("url", chartURL))
		return nil, err
	}

	quote := new(quotes.YahooQuote)
	err = sonic.ConfigFastest.Unmarshal(buffer, quote)
	if err != nil {
		zap.L().Error("unmarshal raw response json failed",
			zap.Error(err),
			zap.String("symbol", symbol),
			zap.ByteString("json", buffer))
		return nil, err
	}

	err = quote.Validate()
	if err != nil {
		zap.L().Error("yahoo quote validate failed",
			zap.Error(err),
			zap.String("symbol", symbol),
			zap.Time("start", start),
			zap.Time("end", end))
		return nil, err
	}

	return quote.ToPrices(symbol), nil
}

// YahooPrices price dataset of symbols over a period
type YahooPrices struct {
	source  *YahooFinance
	symbols []string
	start   time.Time
	end     time.Time
}

// NewYahooPrices create yahoo price provider
func NewYahooPrices(source *YahooFinance, symbols []string, start, end time.Time) *YahooPrices {
	return &YahooPrices{source: source, symbols: symbols, start: start, end: end}
}

// Prices download symbols one by one, unknown symbols are skipped
func (p YahooPrices) Prices(ctx context.Context) ([]*quotes.Price, error) {
	var prices []*quotes.Price
	for _, symbol := range p.symbols {
		daily, err := p.source.Daily(ctx, symbol, p.start, p.end)
		if err != nil {
			if err == quotes.ErrYahooSymbolNotFound {
				zap.L().Info("ignore symbol not found", zap.String("symbol", symbol))
				continue
			}
			return nil, err
		}

		zap.L().Debug("download daily prices success", zap.String("symbol", symbol), zap.Int("prices", len(daily)))
		prices = append(prices, daily...)
	}

	return prices, nil
}
