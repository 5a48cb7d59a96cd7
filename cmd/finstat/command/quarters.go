package command

import (
	"context"
	"fmt"

	"github.com/nzai/finstat/statements"
	"github.com/urfave/cli/v3"
)

func init() {
	RegisterCommand(&Quarters{})
}

type Quarters struct {
	start string
	end   string
}

func (q *Quarters) Command() *cli.Command {
	return &cli.Command{
		Name:    "quarters",
		Aliases: []string{"q"},
		Usage:   "list fiscal quarters intersecting a period",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "start",
				Aliases:     []string{"s"},
				Usage:       "specify start date `2023-01-01`",
				Required:    true,
				Destination: &q.start,
				Validator:   validateDate,
			},
			&cli.StringFlag{
				Name:        "end",
				Aliases:     []string{"e"},
				Usage:       "specify end date `2023-12-31`, default today",
				Required:    false,
				Destination: &q.end,
				Validator:   validateDate,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			end := q.end
			if end == "" {
				end = today()
			}

			dates, err := statements.ParseDateRange(q.start, end)
			if err != nil {
				return err
			}

			for _, quarter := range dates.Quarters() {
				fmt.Println(quarter)
			}

			return nil
		},
	}
}
