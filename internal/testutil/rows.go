package testutil

import (
	"github.com/leengari/anyframe/internal/anyvalue"
	"github.com/leengari/anyframe/internal/frame"
)

// UserRows returns three (id int64, username utf8) rows
func UserRows() []frame.Row {
	return []frame.Row{
		frame.NewRow(anyvalue.Wrap(int64(1), anyvalue.Int64), anyvalue.Wrap("alice", anyvalue.Utf8)),
		frame.NewRow(anyvalue.Wrap(int64(2), anyvalue.Int64), anyvalue.Wrap("bob", anyvalue.Utf8)),
		frame.NewRow(anyvalue.Wrap(int64(3), anyvalue.Int64), anyvalue.Wrap("charlie", anyvalue.Utf8)),
	}
}

// OrderRows returns (id uint32, product utf8, amount float64, paid bool) rows.
// The third order has no amount.
func OrderRows() []frame.Row {
	return []frame.Row{
		frame.NewRow(
			anyvalue.Wrap(uint32(1), anyvalue.UInt32),
			anyvalue.Wrap("Laptop", anyvalue.Utf8),
			anyvalue.Wrap(999.99, anyvalue.Float64),
			anyvalue.Wrap(true, anyvalue.Boolean),
		),
		frame.NewRow(
			anyvalue.Wrap(uint32(2), anyvalue.UInt32),
			anyvalue.Wrap("Mouse", anyvalue.Utf8),
			anyvalue.Wrap(25.50, anyvalue.Float64),
			anyvalue.Wrap(false, anyvalue.Boolean),
		),
		frame.NewRow(
			anyvalue.Wrap(uint32(3), anyvalue.UInt32),
			anyvalue.Wrap("Keyboard", anyvalue.Utf8),
			anyvalue.WrapNull(),
			anyvalue.Wrap(true, anyvalue.Boolean),
		),
	}
}
