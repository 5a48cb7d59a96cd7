package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nzai/finstat/exporters"
	"github.com/nzai/finstat/quotes"
	"github.com/nzai/finstat/sources"
	"github.com/nzai/finstat/utils"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func init() {
	RegisterCommand(&ExportPrices{})
}

type ExportPrices struct {
	config    string
	symbols   string
	prices    string
	start     string
	end       string
	output    string
	noSummary bool
}

func (e *ExportPrices) Command() *cli.Command {
	return &cli.Command{
		Name:    "export",
		Aliases: []string{"ex"},
		Usage:   "export stock prices and their close summary to an excel workbook",
		Flags: []cli.Flag{
			configFlag(&e.config),
			&cli.StringFlag{
				Name:        "symbols",
				Usage:       "specify yahoo finance symbols, eg: 2330.TW,2317.TW",
				Required:    false,
				Destination: &e.symbols,
			},
			&cli.StringFlag{
				Name:        "prices",
				Usage:       "specify price csv `file` with Stock and Close columns instead of downloading",
				Required:    false,
				Destination: &e.prices,
			},
			&cli.StringFlag{
				Name:        "start",
				Aliases:     []string{"s"},
				Usage:       "specify start date `2023-01-01`",
				Required:    false,
				Destination: &e.start,
				Validator:   validateDate,
			},
			&cli.StringFlag{
				Name:        "end",
				Aliases:     []string{"e"},
				Usage:       "specify end date `2023-12-31`, default today",
				Required:    false,
				Destination: &e.end,
				Validator:   validateDate,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "specify workbook `file`",
				Required:    false,
				Value:       "prices.xlsx",
				Destination: &e.output,
			},
			&cli.BoolFlag{
				Name:        "no-summary",
				Usage:       "skip the summary sheet",
				Destination: &e.noSummary,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, done, err := prepare(e.config)
			if err != nil {
				return err
			}
			defer done()

			provider, err := e.provider(cfg.Yahoo.Endpoint, cfg.Yahoo.Timeout.Duration)
			if err != nil {
				return err
			}

			err = exporters.NewExcel(provider).Export(ctx, e.output, !e.noSummary)
			if err != nil {
				return err
			}

			zap.S().Infow("successfully exported!", "output", e.output)
			return nil
		},
	}
}

func (e ExportPrices) provider(endpoint string, timeout time.Duration) (quotes.Provider, error) {
	if e.prices != "" {
		return quotes.NewCSVFile(e.prices), nil
	}

	var symbols []string
	for _, symbol := range strings.Split(e.symbols, ",") {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			symbols = append(symbols, symbol)
		}
	}

	if len(symbols) == 0 {
		return nil, fmt.Errorf("either --symbols or --prices is required")
	}

	if e.start == "" {
		return nil, fmt.Errorf("--start is required when downloading prices")
	}

	end := e.end
	if end == "" {
		end = today()
	}

	start, err := utils.ParseDate(e.start)
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(end)
	if err != nil {
		return nil, err
	}

	if start.After(endDate) {
		return nil, fmt.Errorf("start date %s is later than end date %s", e.start, end)
	}

	return sources.NewYahooPrices(sources.NewYahooFinance(endpoint, timeout), symbols, start, endDate), nil
}
