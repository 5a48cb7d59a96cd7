package quotes

import (
	"errors"
	"time"
)

var (
	// YahooNotFoundCode define errors raised by yahoo finace on code not found
	YahooNotFoundCode = "Not Found"
	// ErrYahooSymbolNotFound define errors raised by yahoo finace on symblo not found
	ErrYahooSymbolNotFound = errors.New("symbol not foud")
)

// YahooQuote define yahoo finace daily chart response structure
type YahooQuote struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency     string `json:"currency"`
				Symbol       string `json:"symbol"`
				ExchangeName string `json:"exchangeName"`
				GMTOffset    int    `json:"gmtoffset"`
				Timezone     string `json:"timezone"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quotes []struct {
					Open   []float64 `json:"open"`
					Close  []float64 `json:"close"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Volume []uint64  `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Err *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Validate validate response is valid
func (q YahooQuote) Validate() error {
	if q.Chart.Err != nil {
		if q.Chart.Err.Code == YahooNotFoundCode {
			return ErrYahooSymbolNotFound
		}
		return errors.New(q.Chart.Err.Description)
	}

	if len(q.Chart.Result) == 0 {
		return errors.New("quote.Chart.Result is null")
	}

	if len(q.Chart.Result[0].Indicators.Quotes) == 0 {
		return errors.New("quote.Chart.Result[0].Indicators.Quotes is null")
	}

	result, _quote := q.Chart.Result[0], q.Chart.Result[0].Indicators.Quotes[0]

	// quotes count mismatch
	if len(result.Timestamp) != len(_quote.Open) ||
		len(result.Timestamp) != len(_quote.Close) ||
		len(result.Timestamp) != len(_quote.High) ||
		len(result.Timestamp) != len(_quote.Low) ||
		len(result.Timestamp) != len(_quote.Volume) {
		return errors.New("quotes count dismatch")
	}

	return nil
}

// ToPrices convert validated response to daily prices of stock
func (q YahooQuote) ToPrices(stock string) []*Price {
	result := q.Chart.Result[0]
	location := time.FixedZone(result.Meta.Timezone, result.Meta.GMTOffset)
	qs := result.Indicators.Quotes[0]

	prices := make([]*Price, 0, len(result.Timestamp))
	for index, ts := range result.Timestamp {
		// ignore all zero quote
		if qs.Open[index] == 0 && qs.Close[index] == 0 && qs.High[index] == 0 && qs.Low[index] == 0 && qs.Volume[index] == 0 {
			continue
		}

		at := time.Unix(ts, 0).In(location)
		prices = append(prices, &Price{
			Stock:  stock,
			Date:   time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, location),
			Open:   qs.Open[index],
			High:   qs.High[index],
			Low:    qs.Low[index],
			Close:  qs.Close[index],
			Volume: qs.Volume[index],
		})
	}

	return prices
}
