package frame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
)

// ErrNoRows is returned when a schema has to be inferred from an empty row set.
var ErrNoRows = errors.New("no rows to infer a schema from")

// RowShapeError reports a row whose length differs from the schema
type RowShapeError struct {
	Row      int // 0-based position of the row in the input
	Expected int // schema column count
	Got      int // row length
}

func (e *RowShapeError) Error() string {
	return fmt.Sprintf("row %d has %d values, schema has %d columns", e.Row, e.Got, e.Expected)
}

// TypeMismatchError reports a cell whose scalar type disagrees with its column
type TypeMismatchError struct {
	Row      int
	Column   int
	Name     string         // column name (may be synthetic)
	Expected arrow.DataType // column type
	Got      arrow.DataType // scalar type
}

func (e *TypeMismatchError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("type mismatch in column %d", e.Column))

	if e.Name != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Name))
	}

	parts = append(parts, fmt.Sprintf("at row %d", e.Row))

	if e.Expected != nil {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	}

	if e.Got != nil {
		parts = append(parts, fmt.Sprintf("got %s", e.Got))
	}

	return strings.Join(parts, " - ")
}

// ColumnCountError reports a name or field list whose length does not match
// the table's column count.
type ColumnCountError struct {
	Op       string // "rename", "named fields", ...
	Expected int
	Got      int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("%s: expected %d names, got %d", e.Op, e.Expected, e.Got)
}

// DuplicateColumnError reports a column name used twice in one table.
type DuplicateColumnError struct {
	Name  string
	First int
	Again int
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column name %q at positions %d and %d", e.Name, e.First, e.Again)
}
