package testutil

import (
	"reflect"
	"testing"

	"github.com/leengari/anyframe/internal/anyvalue"
	"github.com/leengari/anyframe/internal/frame"
)

// AssertRowCount checks if the table has the expected number of rows
func AssertRowCount(t *testing.T, table *frame.Table, expected int, context string) {
	t.Helper()
	if actual := int(table.NumRows()); actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnNames checks the table's column names, in order
func AssertColumnNames(t *testing.T, table *frame.Table, expected []string, context string) {
	t.Helper()
	actual := table.ColumnNames()
	if len(actual) != len(expected) {
		t.Errorf("%s: expected %d columns, got %d (%v)", context, len(expected), len(actual), actual)
		return
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("%s: expected column %d to be '%s', got '%s'", context, i, expected[i], actual[i])
		}
	}
}

// AssertCell checks the unwrapped value stored at (row, col)
func AssertCell(t *testing.T, table *frame.Table, row, col int, expected interface{}, context string) {
	t.Helper()
	s, err := table.Value(row, col)
	if err != nil {
		t.Errorf("%s: reading cell (%d, %d): %v", context, row, col, err)
		return
	}
	if actual := anyvalue.UnwrapAny(s); !reflect.DeepEqual(actual, expected) {
		t.Errorf("%s: cell (%d, %d) expected %v (%T), got %v (%T)", context, row, col, expected, expected, actual, actual)
	}
}

// AssertNullCell checks that the cell at (row, col) is absent
func AssertNullCell(t *testing.T, table *frame.Table, row, col int, context string) {
	t.Helper()
	s, err := table.Value(row, col)
	if err != nil {
		t.Errorf("%s: reading cell (%d, %d): %v", context, row, col, err)
		return
	}
	if s.IsValid() {
		t.Errorf("%s: expected NULL at (%d, %d), got: %v", context, row, col, s)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
