package statements

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nzai/finstat/constants"
)

// reportPage build a report page with one two level header table per item set
func reportPage(itemSets ...[][3]string) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for index, items := range itemSets {
		fmt.Fprintf(&sb, "<table><tr><th colspan=\"3\">table %d</th></tr>", index)
		sb.WriteString("<tr><th>代號</th><th>會計項目</th><th>2023年03月31日</th><th>2022年12月31日</th></tr>")
		for _, item := range items {
			fmt.Fprintf(&sb, "<tr><td>%s</td><td>%s</td><td>%s</td><td>ignored</td></tr>", item[0], item[1], item[2])
		}
		sb.WriteString("</table>")
	}
	sb.WriteString("</body></html>")

	return sb.String()
}

func TestParse_SelectsTableByType(t *testing.T) {
	page := reportPage(
		[][3]string{{"1100", "現金及約當現金", "1,000"}},
		[][3]string{{"4000", "營業收入合計", "2,000"}},
		[][3]string{{"A00010", "繼續營業單位稅前淨利", "3,000"}},
	)

	cases := []struct {
		st   StatementType
		key  Key
		want string
	}{
		{BalanceSheet, Key{"1100", "現金及約當現金"}, "1,000"},
		{ComprehensiveIncome, Key{"4000", "營業收入合計"}, "2,000"},
		{CashFlow, Key{"A00010", "繼續營業單位稅前淨利"}, "3,000"},
	}

	for _, _case := range cases {
		table, err := Parse(page, _case.st)
		if err != nil {
			t.Fatalf("Parse(%v) error = %v", _case.st, err)
		}

		if table.Len() != 1 {
			t.Errorf("Parse(%v) rows = %d, want 1", _case.st, table.Len())
		}

		got, found := table.Value(_case.key)
		if !found || got != _case.want {
			t.Errorf("Parse(%v) value = %q, want %q", _case.st, got, _case.want)
		}

		if table.Column != constants.SeasonColumn {
			t.Errorf("Parse(%v) column = %q, want %q", _case.st, table.Column, constants.SeasonColumn)
		}

		if table.KeyNames != [2]string{"代號", "會計項目"} {
			t.Errorf("Parse(%v) key names = %v, outer header level not dropped", _case.st, table.KeyNames)
		}
	}
}

func TestParse_LeadingLayoutTable(t *testing.T) {
	page := "<table></table>" + reportPage(
		[][3]string{{"1100", "現金及約當現金", "1,000"}},
		[][3]string{{"4000", "營業收入合計", "2,000"}},
		[][3]string{{"A00010", "繼續營業單位稅前淨利", "3,000"}},
	)

	table, err := Parse(page, BalanceSheet)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got, _ := table.Value(Key{"1100", "現金及約當現金"}); got != "1,000" {
		t.Errorf("Parse() value = %q, want 1,000", got)
	}
}

func TestParse_InvalidType(t *testing.T) {
	// an empty page would fail extraction, so the error proves no extraction was attempted
	_, err := Parse("", StatementType("股東權益變動表"))
	if !errors.Is(err, constants.ErrInvalidStatementType) {
		t.Fatalf("Parse() error = %v, want %v", err, constants.ErrInvalidStatementType)
	}

	if errors.Is(err, constants.ErrParse) {
		t.Errorf("Parse() error = %v, should not be a parse error", err)
	}
}

func TestParse_MissingTables(t *testing.T) {
	pages := map[string]string{
		"empty":      "",
		"no tables":  "<html><body><p>查詢無資料</p></body></html>",
		"two tables": reportPage([][3]string{{"1100", "現金", "1"}}, [][3]string{{"4000", "收入", "2"}}),
	}

	for name, page := range pages {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(page, BalanceSheet)
			if !errors.Is(err, constants.ErrParse) {
				t.Errorf("Parse() error = %v, want %v", err, constants.ErrParse)
			}
		})
	}
}

func TestParse_NarrowTable(t *testing.T) {
	narrow := "<table><tr><td>1100</td><td>現金</td></tr></table>"
	_, err := Parse(narrow+narrow+narrow, BalanceSheet)
	if !errors.Is(err, constants.ErrParse) {
		t.Errorf("Parse() error = %v, want %v", err, constants.ErrParse)
	}
}

func TestParse_DuplicateKeysKeepFirst(t *testing.T) {
	items := [][3]string{
		{"1100", "現金", "1"},
		{"1100", "現金", "2"},
		{"1170", "應收帳款淨額", ""},
	}
	table, err := Parse(reportPage(items, items, items), BalanceSheet)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("Parse() rows = %d, want 2", table.Len())
	}

	if got, _ := table.Value(Key{"1100", "現金"}); got != "1" {
		t.Errorf("Parse() duplicate value = %q, want 1", got)
	}
}
