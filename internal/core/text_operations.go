package core

import (
	"fmt"

	"github.com/bethropolis/linecore/internal/event"
	"github.com/bethropolis/linecore/internal/types"
)

// checkRow fails with ErrLineNotAvailable when the cursor row is gone.
func (d *Document) checkRow(op string) error {
	if _, ok := d.buffer.Line(d.cursor.Row); !ok {
		return fmt.Errorf("%s at %v: %w", op, d.cursor, ErrLineNotAvailable)
	}
	return nil
}

// Insert inserts r at the cursor and advances the cursor by one column.
// '\n' splits the line instead, see InsertNewline.
func (d *Document) Insert(r rune) error {
	if r == '\n' {
		return d.InsertNewline()
	}
	if err := d.checkRow("insert"); err != nil {
		return err
	}

	before := d.cursor
	if err := d.buffer.InsertRune(before.Row, before.Column, r); err != nil {
		return fmt.Errorf("insert at %v: %w", before, err)
	}
	d.MoveCursor(types.Relative(1, 0))

	d.modified(event.EditInsert, string(r), before)
	return nil
}

// InsertText inserts every rune of s, stopping at the first failure.
func (d *Document) InsertText(s string) error {
	for _, r := range s {
		if err := d.Insert(r); err != nil {
			return err
		}
	}
	return nil
}

// InsertNewline splits the current line at the cursor and moves the cursor to
// the start of the new second half.
func (d *Document) InsertNewline() error {
	if err := d.checkRow("insert newline"); err != nil {
		return err
	}

	before := d.cursor
	if err := d.buffer.SplitLine(before.Row, before.Column); err != nil {
		return fmt.Errorf("insert newline at %v: %w", before, err)
	}
	d.MoveCursor(types.Absolute(0, before.Row+1))

	d.modified(event.EditSplit, "\n", before)
	return nil
}

// Remove deletes backward from the cursor. Inside a line it removes the
// codepoint before the cursor; at column 0 of a later row it joins the row
// onto the previous one. At the start of the document it fails with
// ErrInvalidMove and changes nothing.
func (d *Document) Remove() error {
	if err := d.checkRow("remove"); err != nil {
		return err
	}

	before := d.cursor
	prevCol, prevRow := before.Column-1, before.Row-1
	length := d.buffer.LineLength(before.Row)

	switch {
	case prevCol >= 0 && prevCol < length:
		r, err := d.buffer.DeleteRune(before.Row, prevCol)
		if err != nil {
			return fmt.Errorf("remove at %v: %w", before, err)
		}
		d.MoveCursor(types.Relative(-1, 0))
		d.modified(event.EditDelete, string(r), before)

	case prevCol < 0 && prevRow >= 0 && d.buffer.LineCount() > 1:
		removed, err := d.buffer.RemoveLine(before.Row)
		if err != nil {
			return fmt.Errorf("remove at %v: %w", before, err)
		}
		d.MoveCursor(types.AfterRow(prevRow))
		if removed != "" {
			if err := d.buffer.AppendToLine(prevRow, removed); err != nil {
				return fmt.Errorf("remove at %v: %w", before, err)
			}
		}
		d.modified(event.EditJoin, "\n", before)

	default:
		return fmt.Errorf("remove at %v: %w", before, ErrInvalidMove)
	}
	return nil
}

func (d *Document) modified(kind event.EditKind, text string, before types.Cursor) {
	d.dispatch(event.TypeBufferModified, event.BufferModifiedData{
		Kind:         kind,
		Text:         text,
		CursorBefore: before,
		CursorAfter:  d.cursor,
	})
}
