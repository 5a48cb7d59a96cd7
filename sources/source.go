package sources

import (
	"context"

	"github.com/nzai/finstat/statements"
)

// StatementSource define quarterly report page source
type StatementSource interface {
	// Fetch report page html of company in quarter
	Fetch(ctx context.Context, company string, quarter statements.Quarter) (string, error)
}
