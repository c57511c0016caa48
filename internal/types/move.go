// internal/types/move.go
package types

import "fmt"

// MoveKind tags the variant of a Move.
type MoveKind int

const (
	MoveAbsolute   MoveKind = iota // set column and row
	MoveRelative                   // offset column and row
	MoveEndOfRow                   // last codepoint of a row
	MoveAfterRow                   // append position of a row
	MoveCurrentRow                 // set column, keep row
)

// Move is a cursor movement command. Build it with the constructors below;
// X and Y are interpreted according to Kind.
type Move struct {
	Kind MoveKind
	X    int
	Y    int
}

func Absolute(x, y int) Move  { return Move{Kind: MoveAbsolute, X: x, Y: y} }
func Relative(dx, dy int) Move { return Move{Kind: MoveRelative, X: dx, Y: dy} }
func EndOfRow(y int) Move      { return Move{Kind: MoveEndOfRow, Y: y} }
func AfterRow(y int) Move      { return Move{Kind: MoveAfterRow, Y: y} }
func CurrentRow(x int) Move    { return Move{Kind: MoveCurrentRow, X: x} }

func (k MoveKind) String() string {
	switch k {
	case MoveAbsolute:
		return "absolute"
	case MoveRelative:
		return "relative"
	case MoveEndOfRow:
		return "end-of-row"
	case MoveAfterRow:
		return "after-row"
	case MoveCurrentRow:
		return "current-row"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(k))
	}
}

func (m Move) String() string {
	switch m.Kind {
	case MoveEndOfRow, MoveAfterRow:
		return fmt.Sprintf("%s(%d)", m.Kind, m.Y)
	case MoveCurrentRow:
		return fmt.Sprintf("%s(%d)", m.Kind, m.X)
	default:
		return fmt.Sprintf("%s(%d,%d)", m.Kind, m.X, m.Y)
	}
}
