package core

import (
	"github.com/bethropolis/linecore/internal/event"
	"github.com/bethropolis/linecore/internal/logger"
	"github.com/bethropolis/linecore/internal/types"
)

// MoveCursor resolves mv against the current lines. A move to a row that
// does not exist is ignored; otherwise the row is taken and the column is
// clamped into [0, line length].
//
// EndOfRow lands on the last codepoint (column 0 on an empty line) and
// AfterRow on the append position.
func (d *Document) MoveCursor(mv types.Move) {
	x, y := d.moveTarget(mv)

	if y < 0 || y >= d.buffer.LineCount() {
		logger.DebugTagf("cursor", "MoveCursor: ignoring %v, row %d does not exist", mv, y)
		return
	}

	before := d.cursor
	length := d.buffer.LineLength(y)
	d.cursor.Row = y

	switch mv.Kind {
	case types.MoveEndOfRow:
		d.cursor.Column = max(length-1, 0)
	case types.MoveAfterRow:
		d.cursor.Column = length
	default:
		// A negative column leaves the current one, re-clamped to the new row
		if x >= 0 {
			d.cursor.Column = x
		}
		d.cursor.Column = min(max(d.cursor.Column, 0), length)
	}

	if d.cursor != before {
		d.dispatch(event.TypeCursorMoved, event.CursorMovedData{OldPosition: before, NewPosition: d.cursor})
	}
}

// moveTarget computes the candidate column and row of mv.
func (d *Document) moveTarget(mv types.Move) (x, y int) {
	switch mv.Kind {
	case types.MoveAbsolute:
		return mv.X, mv.Y
	case types.MoveRelative:
		return d.cursor.Column + mv.X, d.cursor.Row + mv.Y
	case types.MoveEndOfRow, types.MoveAfterRow:
		return 0, mv.Y
	case types.MoveCurrentRow:
		return mv.X, d.cursor.Row
	default:
		// Unknown kinds resolve to a row that never exists
		return 0, -1
	}
}
