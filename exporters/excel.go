// Package exporters writes price datasets and combined statements to files.
package exporters

import (
	"context"

	"github.com/nzai/finstat/constants"
	"github.com/nzai/finstat/quotes"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	// PriceSheet sheet of every price row
	PriceSheet = "Stock Prices"
	// SummarySheet sheet of per stock close statistics
	SummarySheet = "Summary"

	defaultSheet = "Sheet1"
)

var (
	priceHeader   = []any{"Stock", "Date", "Open", "High", "Low", "Close", "Volume"}
	summaryHeader = []any{"Stock", "Close Mean", "Close Min", "Close Max"}
)

// Excel export price dataset to xlsx workbook
type Excel struct {
	provider quotes.Provider
}

// NewExcel create excel exporter of provider
func NewExcel(provider quotes.Provider) *Excel {
	return &Excel{provider: provider}
}

// Export write prices, and the summary when includeSummary, to path
func (e Excel) Export(ctx context.Context, path string, includeSummary bool) error {
	prices, err := e.provider.Prices(ctx)
	if err != nil {
		zap.L().Error("get price dataset failed", zap.Error(err))
		return err
	}

	if len(prices) == 0 {
		zap.L().Warn("price dataset is empty, only headers written", zap.String("path", path))
	}

	f := excelize.NewFile()
	defer f.Close()

	err = f.SetSheetName(defaultSheet, PriceSheet)
	if err != nil {
		zap.L().Error("rename price sheet failed", zap.Error(err))
		return err
	}

	rows := make([][]any, 0, len(prices)+1)
	rows = append(rows, priceHeader)
	for _, price := range prices {
		date := ""
		if !price.Date.IsZero() {
			date = price.Date.Format(constants.DatePattern)
		}
		rows = append(rows, []any{price.Stock, date, price.Open, price.High, price.Low, price.Close, price.Volume})
	}

	err = writeRows(f, PriceSheet, rows)
	if err != nil {
		return err
	}

	if includeSummary {
		_, err = f.NewSheet(SummarySheet)
		if err != nil {
			zap.L().Error("create summary sheet failed", zap.Error(err))
			return err
		}

		summaries := quotes.Summarize(prices)
		rows = make([][]any, 0, len(summaries)+1)
		rows = append(rows, summaryHeader)
		for _, summary := range summaries {
			rows = append(rows, []any{summary.Stock, summary.Mean, summary.Min, summary.Max})
		}

		err = writeRows(f, SummarySheet, rows)
		if err != nil {
			return err
		}
	}

	err = f.SaveAs(path)
	if err != nil {
		zap.L().Error("save workbook failed", zap.Error(err), zap.String("path", path))
		return err
	}

	zap.L().Info("export prices success",
		zap.String("path", path),
		zap.Int("prices", len(prices)),
		zap.Bool("summary", includeSummary))

	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for index, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, index+1)
		if err != nil {
			return err
		}

		err = f.SetSheetRow(sheet, cell, &row)
		if err != nil {
			zap.L().Error("write sheet row failed", zap.Error(err), zap.String("sheet", sheet), zap.Int("row", index+1))
			return err
		}
	}

	return nil
}
