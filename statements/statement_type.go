package statements

import (
	"fmt"
	"strings"

	"github.com/nzai/finstat/constants"
)

// StatementType financial statement kind
type StatementType string

const (
	// BalanceSheet 資產負債表
	BalanceSheet StatementType = "資產負債表"
	// ComprehensiveIncome 綜合損益表
	ComprehensiveIncome StatementType = "綜合損益表"
	// CashFlow 現金流量表
	CashFlow StatementType = "現金流量表"
)

var (
	// position of each statement among the tables of a report page
	statementIndexes = map[StatementType]int{
		BalanceSheet:        0,
		ComprehensiveIncome: 1,
		CashFlow:            2,
	}

	statementAliases = map[string]StatementType{
		"balance-sheet":        BalanceSheet,
		"balance":              BalanceSheet,
		"bs":                   BalanceSheet,
		"comprehensive-income": ComprehensiveIncome,
		"income":               ComprehensiveIncome,
		"is":                   ComprehensiveIncome,
		"cash-flow":            CashFlow,
		"cashflow":             CashFlow,
		"cf":                   CashFlow,
	}
)

// StatementTypes all statement types in page order
func StatementTypes() []StatementType {
	return []StatementType{BalanceSheet, ComprehensiveIncome, CashFlow}
}

// ParseStatementType parse statement label or english alias
func ParseStatementType(text string) (StatementType, error) {
	text = strings.TrimSpace(text)
	if _, found := statementIndexes[StatementType(text)]; found {
		return StatementType(text), nil
	}

	if st, found := statementAliases[strings.ToLower(text)]; found {
		return st, nil
	}

	return "", invalidStatementType(text)
}

// Index table position of statement in report page
func (t StatementType) Index() (int, error) {
	index, found := statementIndexes[t]
	if !found {
		return 0, invalidStatementType(string(t))
	}

	return index, nil
}

// Valid statement type recognized
func (t StatementType) Valid() bool {
	_, found := statementIndexes[t]
	return found
}

func (t StatementType) String() string {
	return string(t)
}

func invalidStatementType(text string) *Error {
	return NewError(constants.ErrInvalidStatementType, fmt.Sprintf("Invalid statement type: %s", text), nil)
}

// requiredTables tables a report page must contain for every statement type to resolve
func requiredTables() int {
	count := 0
	for _, index := range statementIndexes {
		if index+1 > count {
			count = index + 1
		}
	}

	return count
}
