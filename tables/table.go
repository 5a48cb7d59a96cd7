// Package tables extracts every html table of a document into plain text grids.
package tables

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Table html table with spans expanded
type Table struct {
	// Header header rows, outermost level first
	Header [][]string
	Rows   [][]string
}

// Width widest row or header level
func (t Table) Width() int {
	width := 0
	for _, row := range t.Header {
		if len(row) > width {
			width = len(row)
		}
	}

	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	return width
}

// Extract parse all tables holding text of html document in document order
func Extract(html string) ([]*Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		zap.L().Warn("parse html document failed", zap.Error(err))
		return nil, err
	}

	var tables []*Table
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		// tables without any text are layout, they take no position
		if strings.TrimSpace(table.Text()) == "" {
			return
		}

		tables = append(tables, parseTable(table))
	})

	zap.L().Debug("extract tables success", zap.Int("tables", len(tables)))

	return tables, nil
}

// parseTable read own rows only, rows of nested tables belong to those tables
func parseTable(table *goquery.Selection) *Table {
	var rows []*goquery.Selection
	headerRows := 0
	table.Children().Each(func(_ int, section *goquery.Selection) {
		switch goquery.NodeName(section) {
		case "thead":
			section.ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
				rows = append(rows, tr)
				headerRows++
			})
		case "tbody", "tfoot":
			section.ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
				rows = append(rows, tr)
			})
		case "tr":
			rows = append(rows, section)
		}
	})

	// without thead, leading rows made of th cells only are header
	if headerRows == 0 {
		for _, tr := range rows {
			cells := tr.ChildrenFiltered("td, th")
			if cells.Length() == 0 || cells.Length() != cells.Filter("th").Length() {
				break
			}
			headerRows++
		}
	}

	grid := expand(rows)

	return &Table{
		Header: grid[:headerRows],
		Rows:   grid[headerRows:],
	}
}

type span struct {
	text string
	rows int
}

// expand repeat spanned cell text over every grid position it covers
func expand(rows []*goquery.Selection) [][]string {
	grid := make([][]string, 0, len(rows))
	pending := make(map[int]*span)
	for _, tr := range rows {
		var line []string

		// fill columns still covered by rowspans from rows above
		carry := func() {
			for {
				column := len(line)
				s, found := pending[column]
				if !found {
					return
				}

				line = append(line, s.text)
				s.rows--
				if s.rows == 0 {
					delete(pending, column)
				}
			}
		}

		tr.ChildrenFiltered("td, th").Each(func(_ int, cell *goquery.Selection) {
			carry()

			text := cleanText(cell.Text())
			colspan := spanAttr(cell, "colspan")
			rowspan := spanAttr(cell, "rowspan")
			for index := 0; index < colspan; index++ {
				if rowspan > 1 {
					pending[len(line)] = &span{text: text, rows: rowspan - 1}
				}
				line = append(line, text)
			}
		})
		carry()

		grid = append(grid, line)
	}

	return grid
}

func spanAttr(cell *goquery.Selection, name string) int {
	value, err := strconv.Atoi(strings.TrimSpace(cell.AttrOr(name, "1")))
	if err != nil || value < 1 {
		return 1
	}

	return value
}

func cleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
