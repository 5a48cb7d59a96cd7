package quotes

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nzai/finstat/constants"
	"github.com/nzai/finstat/utils"
	"go.uber.org/zap"
)

// CSVFile price dataset read from csv file with a header row
type CSVFile struct {
	path string
}

// NewCSVFile create csv price provider
func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path: path}
}

// Prices read every row of file
func (s CSVFile) Prices(ctx context.Context) ([]*Price, error) {
	file, err := os.Open(s.path)
	if err != nil {
		zap.L().Error("open price file failed", zap.Error(err), zap.String("path", s.path))
		return nil, err
	}
	defer file.Close()

	prices, err := ReadCSV(file)
	if err != nil {
		zap.L().Error("read price file failed", zap.Error(err), zap.String("path", s.path))
		return nil, err
	}

	return prices, nil
}

// ReadCSV read prices, Stock and Close columns are required, the rest optional
func ReadCSV(r io.Reader) ([]*Price, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, constants.ErrEmptyDataset
		}
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for index, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = index
	}

	for _, required := range []string{"stock", "close"} {
		if _, found := columns[required]; !found {
			return nil, fmt.Errorf("price csv missing column %s", required)
		}
	}

	var prices []*Price
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		price, err := parseRecord(columns, record)
		if err != nil {
			return nil, fmt.Errorf("price csv line %d: %w", line, err)
		}

		prices = append(prices, price)
	}

	return prices, nil
}

func parseRecord(columns map[string]int, record []string) (*Price, error) {
	field := func(name string) string {
		index, found := columns[name]
		if !found || index >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[index])
	}

	price := &Price{Stock: field("stock")}

	var err error
	if text := field("date"); text != "" {
		price.Date, err = utils.ParseDate(text)
		if err != nil {
			return nil, err
		}
	}

	for name, dest := range map[string]*float64{
		"open":  &price.Open,
		"high":  &price.High,
		"low":   &price.Low,
		"close": &price.Close,
	} {
		text := field(name)
		if text == "" {
			if name == "close" {
				return nil, fmt.Errorf("close is empty")
			}
			continue
		}

		*dest, err = strconv.ParseFloat(strings.ReplaceAll(text, ",", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", name, text)
		}
	}

	if text := field("volume"); text != "" {
		price.Volume, err = strconv.ParseUint(strings.ReplaceAll(text, ",", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid volume %q", text)
		}
	}

	return price, nil
}
