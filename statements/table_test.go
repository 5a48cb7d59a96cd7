package statements

import (
	"reflect"
	"testing"
)

func newTable(column string, rows map[string]string) *Table {
	table := NewTable(column)
	for code, value := range rows {
		table.Set(Key{Code: code, Label: "item " + code}, value)
	}

	return table
}

func TestCombine(t *testing.T) {
	first := newTable("2023Q1", map[string]string{"A": "1", "B": "2"})
	second := newTable("2023Q2", map[string]string{"B": "3", "C": "4"})

	combined := Combine(first, second)

	wantKeys := []Key{{"A", "item A"}, {"B", "item B"}, {"C", "item C"}}
	if got := combined.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("Combined.Keys() = %v, want %v", got, wantKeys)
	}

	if got := combined.Columns(); !reflect.DeepEqual(got, []string{"2023Q1", "2023Q2"}) {
		t.Errorf("Combined.Columns() = %v", got)
	}

	cases := []struct {
		key    Key
		column string
		want   string
		found  bool
	}{
		{Key{"A", "item A"}, "2023Q1", "1", true},
		{Key{"A", "item A"}, "2023Q2", "", false},
		{Key{"B", "item B"}, "2023Q1", "2", true},
		{Key{"B", "item B"}, "2023Q2", "3", true},
		{Key{"C", "item C"}, "2023Q1", "", false},
		{Key{"C", "item C"}, "2023Q2", "4", true},
	}

	for _, _case := range cases {
		got, found := combined.Value(_case.key, _case.column)
		if got != _case.want || found != _case.found {
			t.Errorf("Combined.Value(%v, %s) = %q %v, want %q %v", _case.key, _case.column, got, found, _case.want, _case.found)
		}
	}

	if got := combined.Row(Key{"C", "item C"}); !reflect.DeepEqual(got, []string{"", "4"}) {
		t.Errorf("Combined.Row() = %v", got)
	}
}

func TestCombine_DropsEmptyRows(t *testing.T) {
	first := newTable("2023Q1", map[string]string{"A": "1", "E": ""})
	second := newTable("2023Q2", map[string]string{"E": "", "F": ""})

	combined := Combine(first, second)
	if combined.Len() != 1 {
		t.Fatalf("Combined.Len() = %d, want 1", combined.Len())
	}

	if got := combined.Keys()[0]; got.Code != "A" {
		t.Errorf("Combined.Keys()[0] = %v, want A", got)
	}
}

func TestCombined_Float(t *testing.T) {
	table := newTable("2023Q1", map[string]string{"A": "1,234", "B": "(5,678)", "C": "-", "D": "12.5"})
	combined := Combine(table)

	cases := []struct {
		code  string
		want  float64
		found bool
	}{
		{"A", 1234, true},
		{"B", -5678, true},
		{"C", 0, false},
		{"D", 12.5, true},
		{"Z", 0, false},
	}

	for _, _case := range cases {
		got, found := combined.Float(Key{_case.code, "item " + _case.code}, "2023Q1")
		if got != _case.want || found != _case.found {
			t.Errorf("Combined.Float(%s) = %v %v, want %v %v", _case.code, got, found, _case.want, _case.found)
		}
	}
}
