package storage

import "encoding/json"

// Document is the on-disk form of a row set:
//
//	{"columns": [{"name": "id", "type": "int64"}, ...],
//	 "rows":    [[1, "alice"], [2, null], ...]}
//
// Column types use Arrow type names (int64, utf8, large_utf8, binary, bool, ...).
// Binary cells are base64 strings.
type Document struct {
	Columns []ColumnMeta        `json:"columns"`
	Rows    [][]json.RawMessage `json:"rows"`
}

type ColumnMeta struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
