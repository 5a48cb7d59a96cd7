package statements

import (
	"fmt"

	"github.com/nzai/finstat/constants"
	"github.com/nzai/finstat/tables"
	"go.uber.org/zap"
)

const statementColumns = 3

// Parse select statement table of report page, keyed by code and label
func Parse(document string, statementType StatementType) (*Table, error) {
	index, err := statementType.Index()
	if err != nil {
		return nil, err
	}

	extracted, err := tables.Extract(document)
	if err != nil {
		return nil, NewError(constants.ErrParse, "extract tables failed", err)
	}

	required := requiredTables()
	if len(extracted) < required {
		zap.L().Warn("report page tables missing",
			zap.Int("tables", len(extracted)),
			zap.Int("required", required),
			zap.String("statement", statementType.String()))
		return nil, NewError(constants.ErrParse,
			fmt.Sprintf("document contains %d tables, %s needs at least %d", len(extracted), statementType, required),
			nil)
	}

	raw := extracted[index]
	if raw.Width() < statementColumns {
		return nil, NewError(constants.ErrParse,
			fmt.Sprintf("%s table has %d columns, want at least %d", statementType, raw.Width(), statementColumns),
			nil)
	}

	// two level header collapses to its inner level
	header := raw.Header
	if len(header) > 1 {
		header = header[1:]
	}

	table := NewTable(constants.SeasonColumn)
	if len(header) > 0 {
		names := pad(header[len(header)-1], 2)
		table.KeyNames = [2]string{names[0], names[1]}
	}

	duplicates := 0
	for _, row := range raw.Rows {
		cells := pad(row, statementColumns)
		if !table.Set(Key{Code: cells[0], Label: cells[1]}, cells[2]) {
			duplicates++
		}
	}

	if duplicates > 0 {
		zap.L().Debug("duplicate line items ignored",
			zap.Int("duplicates", duplicates),
			zap.String("statement", statementType.String()))
	}

	return table, nil
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		return row[:width]
	}

	padded := make([]string, width)
	copy(padded, row)
	return padded
}
