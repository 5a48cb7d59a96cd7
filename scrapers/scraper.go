// Package scrapers assembles quarterly financial statements of a company over a date range.
package scrapers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nzai/finstat/constants"
	"github.com/nzai/finstat/schedulers"
	"github.com/nzai/finstat/sources"
	"github.com/nzai/finstat/statements"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Scraper fetch and combine statements of one company
type Scraper struct {
	company  string
	dates    statements.DateRange
	source   sources.StatementSource
	pacer    schedulers.Pacer
	parallel int
}

// Option configure scraper
type Option func(*Scraper)

// WithSource fetch report pages from source
func WithSource(source sources.StatementSource) Option {
	return func(s *Scraper) {
		s.source = source
	}
}

// WithPacer wait on pacer after every fetch
func WithPacer(pacer schedulers.Pacer) Option {
	return func(s *Scraper) {
		s.pacer = pacer
	}
}

// WithParallel fetch up to n quarters at once, request starts still spaced by the pacer
func WithParallel(n int) Option {
	return func(s *Scraper) {
		if n < 1 {
			n = 1
		}
		s.parallel = n
	}
}

// New create scraper, start must not be later than end
func New(company string, start, end time.Time, options ...Option) (*Scraper, error) {
	dates, err := statements.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	return newScraper(company, dates, options...), nil
}

// NewFromStrings create scraper from YYYY-MM-DD dates
func NewFromStrings(company, start, end string, options ...Option) (*Scraper, error) {
	dates, err := statements.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}

	return newScraper(company, dates, options...), nil
}

func newScraper(company string, dates statements.DateRange, options ...Option) *Scraper {
	s := &Scraper{
		company:  company,
		dates:    dates,
		source:   sources.NewMops(),
		pacer:    schedulers.NewFixedDelay(constants.RequestInterval),
		parallel: constants.DefaultParallel,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Company company id
func (s Scraper) Company() string {
	return s.company
}

// Dates requested period
func (s Scraper) Dates() statements.DateRange {
	return s.dates
}

// Quarters every quarter intersecting requested period, ascending
func (s Scraper) Quarters() []statements.Quarter {
	return s.dates.Quarters()
}

// FetchDocument fetch report page of quarter once
func (s Scraper) FetchDocument(ctx context.Context, quarter statements.Quarter) (string, error) {
	html, err := s.source.Fetch(ctx, s.company, quarter)
	if err != nil {
		return "", s.annotate(err, constants.ErrUpstreamFetch, quarter)
	}

	return html, nil
}

// ParseStatement parse statement table of report page
func (s Scraper) ParseStatement(document string, statementType statements.StatementType) (*statements.Table, error) {
	return statements.Parse(document, statementType)
}

// Statements fetch every quarter and outer join their statement tables
func (s Scraper) Statements(ctx context.Context, statementType statements.StatementType) (*statements.Combined, error) {
	if _, err := statementType.Index(); err != nil {
		return nil, err
	}

	quarters := s.Quarters()
	tables := make([]*statements.Table, len(quarters))

	var err error
	if s.parallel > 1 {
		err = s.parallelCrawl(ctx, statementType, quarters, tables)
	} else {
		for index, quarter := range quarters {
			tables[index], err = s.crawl(ctx, statementType, quarter, false)
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	combined := statements.Combine(tables...)
	zap.L().Info("combine financial statements success",
		zap.String("company", s.company),
		zap.String("statement", statementType.String()),
		zap.Int("quarters", len(quarters)),
		zap.Int("items", combined.Len()))

	return combined, nil
}

func (s Scraper) parallelCrawl(ctx context.Context, statementType statements.StatementType, quarters []statements.Quarter, tables []*statements.Table) error {
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(s.parallel)

	for index, quarter := range quarters {
		index, quarter := index, quarter
		group.Go(func() error {
			table, err := s.crawl(gctx, statementType, quarter, true)
			if err != nil {
				return err
			}

			tables[index] = table
			return nil
		})
	}

	return group.Wait()
}

// crawl fetch, pace then parse one quarter. workers sharing the pacer wait before fetching.
func (s Scraper) crawl(ctx context.Context, statementType statements.StatementType, quarter statements.Quarter, waitFirst bool) (*statements.Table, error) {
	if waitFirst {
		err := s.wait(ctx, quarter)
		if err != nil {
			return nil, err
		}
	}

	zap.L().Info("fetching financial report",
		zap.String("company", s.company),
		zap.String("quarter", quarter.String()))

	html, err := s.FetchDocument(ctx, quarter)
	if err != nil {
		return nil, err
	}

	if !waitFirst {
		err = s.wait(ctx, quarter)
		if err != nil {
			return nil, err
		}
	}

	table, err := s.ParseStatement(html, statementType)
	if err != nil {
		zap.L().Error("parse financial statement failed",
			zap.Error(err),
			zap.String("company", s.company),
			zap.String("quarter", quarter.String()),
			zap.String("statement", statementType.String()))
		return nil, s.annotate(err, constants.ErrParse, quarter)
	}

	table.Column = quarter.String()
	return table, nil
}

func (s Scraper) wait(ctx context.Context, quarter statements.Quarter) error {
	err := s.pacer.Wait(ctx)
	if err != nil {
		return fmt.Errorf("wait before next request company=%s quarter=%s: %w", s.company, quarter, err)
	}

	return nil
}

// annotate attach company and quarter to err
func (s Scraper) annotate(err error, kind error, quarter statements.Quarter) error {
	var se *statements.Error
	if !errors.As(err, &se) {
		se = statements.NewError(kind, "", err)
	}

	se.Company = s.company
	se.Quarter = quarter
	return se
}
