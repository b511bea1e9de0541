package storage

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/leengari/anyframe/internal/anyvalue"
	"github.com/leengari/anyframe/internal/frame"
	"github.com/leengari/anyframe/internal/testutil"
)

const ordersDoc = `{
  "columns": [
    {"name": "id", "type": "uint32"},
    {"name": "product", "type": "utf8"},
    {"name": "amount", "type": "float64"},
    {"name": "paid", "type": "bool"},
    {"name": "tag", "type": "binary"}
  ],
  "rows": [
    [1, "Laptop", 999.99, true, "/wA="],
    [2, "Mouse", 25.5, false, null],
    [3, "Keyboard", null, true, "AQI="]
  ]
}`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rows.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test document: %v", err)
	}
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadTable(t *testing.T) {
	table, err := LoadTable(writeDoc(t, ordersDoc), discardLogger())
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	defer table.Release()

	testutil.AssertRowCount(t, table, 3, "orders")
	testutil.AssertColumnNames(t, table, []string{"id", "product", "amount", "paid", "tag"}, "orders")
	testutil.AssertCell(t, table, 0, 0, uint32(1), "orders")
	testutil.AssertCell(t, table, 1, 1, "Mouse", "orders")
	testutil.AssertCell(t, table, 0, 2, 999.99, "orders")
	testutil.AssertCell(t, table, 1, 3, false, "orders")
	testutil.AssertNullCell(t, table, 2, 2, "orders")
	testutil.AssertNullCell(t, table, 1, 4, "orders")

	s, err := table.Value(0, 4)
	testutil.AssertNoError(t, err, "binary cell")
	if got := anyvalue.Unwrap(s, anyvalue.Binary); string(got) != "\xff\x00" {
		t.Errorf("Expected bytes ff00, got %x", got)
	}
}

func TestFrameRowsNullInFirstRowKeepsType(t *testing.T) {
	doc, err := DecodeDocument(strings.NewReader(`{
	  "columns": [{"name": "n", "type": "int16"}],
	  "rows": [[null], [7]]
	}`))
	testutil.AssertNoError(t, err, "DecodeDocument")

	rows, err := doc.FrameRows()
	testutil.AssertNoError(t, err, "FrameRows")

	if got := anyvalue.TagOf(rows[0].Values[0]); got != arrow.INT16 {
		t.Errorf("Expected typed null INT16, got %s", got)
	}
	if got := anyvalue.Unwrap(rows[1].Values[0], anyvalue.Int16); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
}

func TestFrameRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown type",
			doc:  `{"columns": [{"name": "d", "type": "date32"}], "rows": [[1]]}`,
			want: anyvalue.ErrUnsupportedTag,
		},
		{
			name: "wrong json kind",
			doc:  `{"columns": [{"name": "s", "type": "utf8"}], "rows": [[1]]}`,
		},
		{
			name: "out of range",
			doc:  `{"columns": [{"name": "b", "type": "int8"}], "rows": [[300]]}`,
		},
		{
			name: "short row",
			doc:  `{"columns": [{"name": "a", "type": "int8"}, {"name": "b", "type": "int8"}], "rows": [[1]]}`,
		},
	}

	for _, tt := range tests {
		doc, err := DecodeDocument(strings.NewReader(tt.doc))
		if err != nil {
			t.Fatalf("%s: DecodeDocument failed: %v", tt.name, err)
		}
		_, err = doc.FrameRows()
		if err == nil {
			t.Errorf("%s: expected an error, got nil", tt.name)
			continue
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestLoadTableEmptyRows(t *testing.T) {
	path := writeDoc(t, `{"columns": [{"name": "a", "type": "int64"}], "rows": []}`)

	_, err := LoadTable(path, discardLogger())
	if !errors.Is(err, frame.ErrNoRows) {
		t.Errorf("Expected ErrNoRows, got %v", err)
	}
}

func TestDecodeDocumentRejectsUnknownFields(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader(`{"columns": [], "rows": [], "extra": 1}`))
	testutil.AssertError(t, err, "unknown field")
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.json"), discardLogger())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
