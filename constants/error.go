package constants

import (
	"errors"
	"fmt"
)

var (
	// ErrFinancialScraper base error of every statement failure
	ErrFinancialScraper = errors.New("financial scraper error")
	// ErrInvalidDateRange start date later than end date
	ErrInvalidDateRange = fmt.Errorf("%w: invalid date range", ErrFinancialScraper)
	// ErrInvalidDate date text not in YYYY-MM-DD
	ErrInvalidDate = fmt.Errorf("%w: invalid date", ErrFinancialScraper)
	// ErrInvalidStatementType unknown financial statement type
	ErrInvalidStatementType = fmt.Errorf("%w: invalid financial statement type", ErrFinancialScraper)
	// ErrUpstreamFetch statement request failed
	ErrUpstreamFetch = fmt.Errorf("%w: upstream fetch failed", ErrFinancialScraper)
	// ErrParse statement document malformed
	ErrParse = fmt.Errorf("%w: parse statement failed", ErrFinancialScraper)
	// ErrEmptyDataset price provider returned nothing
	ErrEmptyDataset = errors.New("empty price dataset")
)
