package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nzai/finstat/constants"
	"github.com/nzai/finstat/exporters"
	"github.com/nzai/finstat/schedulers"
	"github.com/nzai/finstat/scrapers"
	"github.com/nzai/finstat/sources"
	"github.com/nzai/finstat/statements"
	"github.com/nzai/finstat/utils"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func init() {
	RegisterCommand(&FinancialStatements{})
}

type FinancialStatements struct {
	config    string
	company   string
	start     string
	end       string
	statement string
	format    string
	output    string
}

func validateDate(s string) error {
	if s == "" {
		return nil
	}

	_, err := utils.ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date: %s", s)
	}

	return nil
}

func today() string {
	return utils.TodayZero(time.Now()).Format(constants.DatePattern)
}

func (r *FinancialStatements) Command() *cli.Command {
	return &cli.Command{
		Name:    "statements",
		Aliases: []string{"st"},
		Usage:   "fetch quarterly statements of a company and combine them by line item",
		Flags: []cli.Flag{
			configFlag(&r.config),
			&cli.StringFlag{
				Name:        "company",
				Aliases:     []string{"c"},
				Usage:       "specify company `id`, eg: 2330",
				Required:    true,
				Destination: &r.company,
			},
			&cli.StringFlag{
				Name:        "start",
				Aliases:     []string{"s"},
				Usage:       "specify start date `2023-01-01`",
				Required:    true,
				Destination: &r.start,
				Validator:   validateDate,
			},
			&cli.StringFlag{
				Name:        "end",
				Aliases:     []string{"e"},
				Usage:       "specify end date `2023-12-31`, default today",
				Required:    false,
				Destination: &r.end,
				Validator:   validateDate,
			},
			&cli.StringFlag{
				Name:        "type",
				Aliases:     []string{"t"},
				Usage:       "specify statement: 資產負債表|綜合損益表|現金流量表 or balance-sheet|income|cash-flow",
				Required:    false,
				Value:       statements.BalanceSheet.String(),
				Destination: &r.statement,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "specify output format: csv|json|xlsx",
				Required:    false,
				Value:       string(exporters.CSV),
				Destination: &r.format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "specify output `file`, default stdout",
				Required:    false,
				Destination: &r.output,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, done, err := prepare(r.config)
			if err != nil {
				return err
			}
			defer done()

			statementType, err := statements.ParseStatementType(r.statement)
			if err != nil {
				return err
			}

			format, err := exporters.ParseFormat(r.format)
			if err != nil {
				return err
			}

			if format == exporters.XLSX && r.output == "" {
				return fmt.Errorf("xlsx output needs --output")
			}

			pacer, err := schedulers.Parse(cfg.Crawl.Pacing, cfg.Crawl.Interval.Duration, cfg.Crawl.Burst)
			if err != nil {
				return err
			}

			end := r.end
			if end == "" {
				end = today()
			}

			source := sources.NewMops(
				sources.WithTimeout(cfg.Mops.Timeout.Duration),
				sources.WithEndpoint(cfg.Mops.Endpoint),
				sources.WithReportID(cfg.Mops.ReportID),
				sources.WithUserAgent(cfg.Mops.UserAgent))

			scraper, err := scrapers.NewFromStrings(r.company, r.start, end,
				scrapers.WithSource(source),
				scrapers.WithPacer(pacer),
				scrapers.WithParallel(cfg.Crawl.Parallel))
			if err != nil {
				return err
			}

			zap.S().Infow("try to fetch statements",
				"company", r.company,
				"statement", statementType,
				"start", r.start,
				"end", end,
				"quarters", len(scraper.Quarters()))

			combined, err := scraper.Statements(ctx, statementType)
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if r.output != "" {
				file, err := os.Create(r.output)
				if err != nil {
					zap.S().Errorw("failed to create output file", "error", err, "path", r.output)
					return err
				}
				defer file.Close()
				w = file
			}

			statement := exporters.Statement{Company: r.company, Type: statementType, Combined: combined}
			err = statement.Write(w, format)
			if err != nil {
				return err
			}

			zap.S().Infow("successfully fetched!", "company", r.company, "items", combined.Len(), "output", r.output)
			return nil
		},
	}
}
