package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/scalar"

	"github.com/leengari/anyframe/internal/anyvalue"
	"github.com/leengari/anyframe/internal/dataframe"
	"github.com/leengari/anyframe/internal/frame"
)

// DecodeDocument reads a JSON row document from r
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse row document: %w", err)
	}
	return &doc, nil
}

// Names returns the declared column names in order
func (d *Document) Names() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// FrameRows converts every JSON row into a row of scalars typed by the
// declared columns.
func (d *Document) FrameRows() ([]frame.Row, error) {
	types := make([]arrow.DataType, len(d.Columns))
	for i, c := range d.Columns {
		dt, err := anyvalue.ParseDataType(c.Type)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}
		types[i] = dt
	}

	rows := make([]frame.Row, len(d.Rows))
	for i, raw := range d.Rows {
		if len(raw) != len(types) {
			return nil, fmt.Errorf("row %d: expected %d values, got %d", i, len(types), len(raw))
		}
		values := make([]scalar.Scalar, len(raw))
		for j, cell := range raw {
			s, err := decodeCell(cell, types[j])
			if err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", i, d.Columns[j].Name, err)
			}
			values[j] = s
		}
		rows[i] = frame.NewRow(values...)
	}
	return rows, nil
}

// decodeCell turns one JSON value into a scalar of type dt
func decodeCell(raw json.RawMessage, dt arrow.DataType) (scalar.Scalar, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return anyvalue.WrapAny(nil, dt)
	}

	var v any
	switch dt.ID() {
	case arrow.BOOL:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		v = b
	case arrow.STRING, arrow.LARGE_STRING:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		v = s
	case arrow.BINARY:
		var b []byte
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		v = b
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64,
		arrow.FLOAT32, arrow.FLOAT64:
		n, err := parseNumber(raw, dt)
		if err != nil {
			return nil, err
		}
		v = n
	case arrow.NULL:
		return nil, fmt.Errorf("null column holds %s", raw)
	}

	return anyvalue.WrapAny(v, dt)
}

// parseNumber parses a JSON number into the Go type WrapAny expects for dt
func parseNumber(raw json.RawMessage, dt arrow.DataType) (any, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	s := n.String()

	switch dt.ID() {
	case arrow.INT8:
		i, err := strconv.ParseInt(s, 10, 8)
		return int8(i), err
	case arrow.INT16:
		i, err := strconv.ParseInt(s, 10, 16)
		return int16(i), err
	case arrow.INT32:
		i, err := strconv.ParseInt(s, 10, 32)
		return int32(i), err
	case arrow.INT64:
		return strconv.ParseInt(s, 10, 64)
	case arrow.UINT8:
		u, err := strconv.ParseUint(s, 10, 8)
		return uint8(u), err
	case arrow.UINT16:
		u, err := strconv.ParseUint(s, 10, 16)
		return uint16(u), err
	case arrow.UINT32:
		u, err := strconv.ParseUint(s, 10, 32)
		return uint32(u), err
	case arrow.UINT64:
		return strconv.ParseUint(s, 10, 64)
	case arrow.FLOAT32:
		f, err := strconv.ParseFloat(s, 32)
		return float32(f), err
	case arrow.FLOAT64:
		return strconv.ParseFloat(s, 64)
	}
	return nil, fmt.Errorf("%s is not numeric", dt)
}

// LoadDocument reads and decodes the row document at path
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeDocument(f)
}

// LoadTable loads the row document at path and assembles it into a table
// named after the declared columns.
func LoadTable(path string, logger *slog.Logger) (*frame.Table, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	rows, err := doc.FrameRows()
	if err != nil {
		return nil, fmt.Errorf("failed to convert rows in %s: %w", path, err)
	}

	a := dataframe.NewAssembler(nil)
	a.AddObserver(dataframe.NewLoggingObserver(logger))

	table, err := a.TableFromRows(rows, doc.Names())
	if err != nil {
		return nil, fmt.Errorf("failed to build table from %s: %w", path, err)
	}

	logger.Info("table loaded",
		slog.String("path", path),
		slog.Int64("rows", table.NumRows()),
		slog.Int("columns", table.NumCols()),
	)

	return table, nil
}
