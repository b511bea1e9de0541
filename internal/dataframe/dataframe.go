// Package dataframe holds the row and table helpers: building rows from
// scalars, describing fields, naming schemas after an existing table, and
// assembling a named table from rows.
//
// Errors from the frame package are returned as they are.
package dataframe

import (
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/arrow/scalar"
	"github.com/google/uuid"

	"github.com/leengari/anyframe/internal/frame"
)

// FieldDesc is a (name, type) pair describing one column.
type FieldDesc struct {
	Name string
	Type arrow.DataType
}

// MakeRow wraps values as a row. A schema derived from it without names
// uses column_0, column_1, ...
func MakeRow(values ...scalar.Scalar) frame.Row {
	return frame.NewRow(values...)
}

// MakeFields maps each descriptor to a field, keeping order.
func MakeFields(desc []FieldDesc) []arrow.Field {
	fields := make([]arrow.Field, len(desc))
	for i, d := range desc {
		fields[i] = arrow.Field{Name: d.Name, Type: d.Type, Nullable: true}
	}
	return fields
}

// NamedFields pairs the table's column types with names, by position.
// names must have one entry per column.
func NamedFields(t *frame.Table, names []string) ([]arrow.Field, error) {
	types := t.DataTypes()
	if len(names) != len(types) {
		return nil, &frame.ColumnCountError{Op: "named fields", Expected: len(types), Got: len(names)}
	}

	desc := make([]FieldDesc, len(names))
	for i, name := range names {
		desc[i] = FieldDesc{Name: name, Type: types[i]}
	}
	return MakeFields(desc), nil
}

// NamedSchema is the schema of NamedFields(t, names). It is what t.Schema()
// returns after t.SetColumnNames(names).
func NamedSchema(t *frame.Table, names []string) (*arrow.Schema, error) {
	fields, err := NamedFields(t, names)
	if err != nil {
		return nil, err
	}
	return arrow.NewSchema(fields, nil), nil
}

// Assembler builds tables from rows and reports each step to its observers.
type Assembler struct {
	mem       memory.Allocator
	observers []Observer
}

// NewAssembler creates an Assembler allocating from mem.
// A nil mem uses memory.DefaultAllocator.
func NewAssembler(mem memory.Allocator) *Assembler {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &Assembler{
		mem:       mem,
		observers: make([]Observer, 0),
	}
}

var defaultAssembler = NewAssembler(nil)

// TableFromRows builds a table with the default assembler.
func TableFromRows(rows []frame.Row, names []string) (*frame.Table, error) {
	return defaultAssembler.TableFromRows(rows, names)
}

// TableFromRows infers the schema from rows[0], transposes every row
// against it, then renames the columns to names.
func (a *Assembler) TableFromRows(rows []frame.Row, names []string) (*frame.Table, error) {
	buildID := uuid.New().String()

	// 1. Infer
	a.notify(Event{Type: EventInferStart, BuildID: buildID, Data: len(rows)})
	if len(rows) == 0 {
		a.notify(Event{Type: EventInferEnd, BuildID: buildID, Data: frame.ErrNoRows})
		return nil, frame.ErrNoRows
	}
	schema := frame.SchemaFromRow(rows[0])
	a.notify(Event{Type: EventInferEnd, BuildID: buildID, Data: schema.String()})

	// 2. Transpose
	a.notify(Event{Type: EventBuildStart, BuildID: buildID})
	table, err := frame.FromRows(a.mem, rows, schema)
	if err != nil {
		a.notify(Event{Type: EventBuildEnd, BuildID: buildID, Data: err})
		return nil, err
	}
	a.notify(Event{Type: EventBuildEnd, BuildID: buildID, Data: table.NumRows()})

	// 3. Rename
	a.notify(Event{Type: EventRenameStart, BuildID: buildID, Data: names})
	if err := table.SetColumnNames(names); err != nil {
		table.Release()
		a.notify(Event{Type: EventRenameEnd, BuildID: buildID, Data: err})
		return nil, err
	}
	a.notify(Event{Type: EventRenameEnd, BuildID: buildID})

	return table, nil
}

// AddObserver registers an observer to receive build events
func (a *Assembler) AddObserver(observer Observer) {
	a.observers = append(a.observers, observer)
}

// RemoveObserver unregisters an observer
func (a *Assembler) RemoveObserver(observer Observer) {
	for i, o := range a.observers {
		if o == observer {
			a.observers = append(a.observers[:i], a.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (a *Assembler) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range a.observers {
		observer.OnEvent(event)
	}
}
