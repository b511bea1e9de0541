package frame

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/leengari/anyframe/internal/anyvalue"
)

// Print writes t to w as an aligned text table. Headers show the column
// type, absent cells print as NULL.
func Print(w io.Writer, t *Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	names := t.ColumnNames()
	types := t.DataTypes()

	// Header
	for i, name := range names {
		fmt.Fprintf(tw, "%s (%s)", name, types[i])
		if i < len(names)-1 {
			fmt.Fprintf(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	// Separator
	for i := range names {
		fmt.Fprintf(tw, "---")
		if i < len(names)-1 {
			fmt.Fprintf(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	for r := 0; r < int(t.NumRows()); r++ {
		for c := range names {
			s, err := t.Value(r, c)
			if err != nil {
				return err
			}
			switch v := anyvalue.UnwrapAny(s).(type) {
			case nil:
				fmt.Fprintf(tw, "NULL")
			case []byte:
				fmt.Fprintf(tw, "0x%x", v)
			default:
				fmt.Fprintf(tw, "%v", v)
			}
			if c < len(names)-1 {
				fmt.Fprintf(tw, "\t")
			}
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
