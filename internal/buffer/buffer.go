// internal/buffer/buffer.go
package buffer

import "errors"

var (
	// ErrLineNotFound is returned when a line index does not exist.
	ErrLineNotFound = errors.New("line not found")
	// ErrColumnOutOfRange is returned when a codepoint index is outside a line.
	ErrColumnOutOfRange = errors.New("column out of range")
	// ErrLastLine is returned when removing the only remaining line.
	ErrLastLine = errors.New("cannot remove the last line")
	// ErrNoPath is returned when saving a buffer that has no file path.
	ErrNoPath = errors.New("no file path specified for saving")
)

// LineStore is the ordered line sequence a document is built on.
// Columns are codepoint indices; byte offsets never leave the store.
type LineStore interface {
	Lines() []string
	Line(index int) (string, bool)
	LineCount() int
	LineLength(index int) int

	InsertLine(index int, text string) error
	RemoveLine(index int) (string, error)
	SetLine(index int, text string) error
	AppendToLine(index int, text string) error
	InsertRune(index, col int, r rune) error
	DeleteRune(index, col int) (rune, error)
	SplitLine(index, col int) error

	Bytes() []byte
	FilePath() string
	IsModified() bool
}
