// internal/types/position.go
package types

import "fmt"

// Cursor is the single edit position of a document.
// Row is the 0-based line index.
// Column is the 0-based codepoint index within the line. A column equal to the
// line's codepoint length is the append position.
type Cursor struct {
	Column int
	Row    int
}

// String renders the cursor as "(column,row)".
func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}
