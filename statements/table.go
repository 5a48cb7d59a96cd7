package statements

import (
	"sort"
	"strconv"
	"strings"
)

// Key statement line item, code plus label
type Key struct {
	Code  string
	Label string
}

// Less order by code then label
func (k Key) Less(other Key) bool {
	if k.Code != other.Code {
		return k.Code < other.Code
	}

	return k.Label < other.Label
}

// Table one quarter of one statement, single value column
type Table struct {
	Column   string
	KeyNames [2]string
	keys     []Key
	values   map[Key]string
}

// NewTable create empty table with value column label
func NewTable(column string) *Table {
	return &Table{Column: column, values: make(map[Key]string)}
}

// Set add line item, a key already present keeps its first value
func (t *Table) Set(key Key, value string) bool {
	if _, found := t.values[key]; found {
		return false
	}

	t.keys = append(t.keys, key)
	t.values[key] = value
	return true
}

// Value cell of line item
func (t *Table) Value(key Key) (string, bool) {
	value, found := t.values[key]
	return value, found
}

// Keys line items in document order
func (t *Table) Keys() []Key {
	return append([]Key(nil), t.keys...)
}

// Len line item count
func (t *Table) Len() int {
	return len(t.keys)
}

// Combined outer join of quarterly tables, one column per quarter
type Combined struct {
	KeyNames [2]string
	columns  []string
	keys     []Key
	cells    map[Key]map[string]string
}

// Combine union row keys of tables, drop rows empty in every column
func Combine(tables ...*Table) *Combined {
	combined := &Combined{
		columns: make([]string, 0, len(tables)),
		cells:   make(map[Key]map[string]string),
	}

	for _, table := range tables {
		combined.columns = append(combined.columns, table.Column)
		if combined.KeyNames == [2]string{} {
			combined.KeyNames = table.KeyNames
		}

		for _, key := range table.keys {
			value := table.values[key]
			if value == "" {
				continue
			}

			row, found := combined.cells[key]
			if !found {
				row = make(map[string]string, len(tables))
				combined.cells[key] = row
			}
			row[table.Column] = value
		}
	}

	combined.keys = make([]Key, 0, len(combined.cells))
	for key := range combined.cells {
		combined.keys = append(combined.keys, key)
	}

	sort.Slice(combined.keys, func(i, j int) bool {
		return combined.keys[i].Less(combined.keys[j])
	})

	return combined
}

// Columns quarter labels in chronological order
func (c *Combined) Columns() []string {
	return append([]string(nil), c.columns...)
}

// Keys line items sorted by code then label
func (c *Combined) Keys() []Key {
	return append([]Key(nil), c.keys...)
}

// Len line item count
func (c *Combined) Len() int {
	return len(c.keys)
}

// Value cell at line item and quarter, empty when missing
func (c *Combined) Value(key Key, column string) (string, bool) {
	value, found := c.cells[key][column]
	return value, found
}

// Row cells of line item aligned with Columns
func (c *Combined) Row(key Key) []string {
	row := make([]string, len(c.columns))
	for index, column := range c.columns {
		row[index] = c.cells[key][column]
	}

	return row
}

// Float numeric cell, accounting negatives like (1,234) included
func (c *Combined) Float(key Key, column string) (float64, bool) {
	value, found := c.Value(key, column)
	if !found {
		return 0, false
	}

	return ParseNumber(value)
}

// ParseNumber parse statement amount: thousands separators, parenthesised negatives
func ParseNumber(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	negative := false
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		negative = true
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	text = strings.ReplaceAll(text, ",", "")
	if text == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}

	if negative {
		value = -value
	}

	return value, true
}
