package exporters

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/nzai/finstat/statements"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Format combined statement output format
type Format string

const (
	// CSV comma separated rows
	CSV Format = "csv"
	// JSON one json document
	JSON Format = "json"
	// XLSX excel workbook
	XLSX Format = "xlsx"
)

// ParseFormat parse output format name
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case CSV, JSON, XLSX:
		return Format(name), nil
	default:
		return "", fmt.Errorf("output format invalid: %s", name)
	}
}

// Statement combined statement of one company
type Statement struct {
	Company  string
	Type     statements.StatementType
	Combined *statements.Combined
}

// header code and label column names, with defaults when the page had none
func (s Statement) header() []string {
	names := s.Combined.KeyNames
	if names[0] == "" {
		names[0] = "Code"
	}
	if names[1] == "" {
		names[1] = "Label"
	}

	return append([]string{names[0], names[1]}, s.Combined.Columns()...)
}

// Write write statement to w in format
func (s Statement) Write(w io.Writer, format Format) error {
	switch format {
	case CSV:
		return s.WriteCSV(w)
	case JSON:
		return s.WriteJSON(w)
	case XLSX:
		return s.WriteXLSX(w)
	default:
		return fmt.Errorf("output format invalid: %s", format)
	}
}

// WriteCSV one row per line item
func (s Statement) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	err := writer.Write(s.header())
	if err != nil {
		return err
	}

	for _, key := range s.Combined.Keys() {
		err = writer.Write(append([]string{key.Code, key.Label}, s.Combined.Row(key)...))
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

type statementDocument struct {
	Company   string         `json:"company"`
	Statement string         `json:"statement"`
	Columns   []string       `json:"columns"`
	Rows      []statementRow `json:"rows"`
}

type statementRow struct {
	Code   string            `json:"code"`
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// WriteJSON missing cells are omitted from values
func (s Statement) WriteJSON(w io.Writer) error {
	doc := statementDocument{
		Company:   s.Company,
		Statement: s.Type.String(),
		Columns:   s.Combined.Columns(),
		Rows:      make([]statementRow, 0, s.Combined.Len()),
	}

	for _, key := range s.Combined.Keys() {
		row := statementRow{Code: key.Code, Label: key.Label, Values: make(map[string]string)}
		for _, column := range doc.Columns {
			if value, found := s.Combined.Value(key, column); found {
				row.Values[column] = value
			}
		}
		doc.Rows = append(doc.Rows, row)
	}

	err := sonic.ConfigStd.NewEncoder(w).Encode(doc)
	if err != nil {
		zap.L().Error("encode statement json failed", zap.Error(err))
		return err
	}

	return nil
}

// WriteXLSX one sheet named after the statement type
func (s Statement) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := s.Type.String()
	err := f.SetSheetName(defaultSheet, sheet)
	if err != nil {
		return err
	}

	header := s.header()
	rows := make([][]any, 0, s.Combined.Len()+1)
	rows = append(rows, toAny(header))
	for _, key := range s.Combined.Keys() {
		row := []any{key.Code, key.Label}
		for _, column := range s.Combined.Columns() {
			if value, found := s.Combined.Float(key, column); found {
				row = append(row, value)
				continue
			}

			value, _ := s.Combined.Value(key, column)
			row = append(row, value)
		}
		rows = append(rows, row)
	}

	err = writeRows(f, sheet, rows)
	if err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	if err != nil {
		zap.L().Error("write statement workbook failed", zap.Error(err))
		return err
	}

	return nil
}

func toAny(values []string) []any {
	result := make([]any, len(values))
	for index, value := range values {
		result[index] = value
	}

	return result
}
