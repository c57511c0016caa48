// internal/core/document.go
package core

import (
	"fmt"
	"io"

	"github.com/bethropolis/linecore/internal/buffer"
	"github.com/bethropolis/linecore/internal/event"
	"github.com/bethropolis/linecore/internal/logger"
	"github.com/bethropolis/linecore/internal/types"
)

// Document is a line store paired with its single cursor. It has no
// internal locking; callers issue operations one at a time.
type Document struct {
	buffer       buffer.LineStore
	cursor       types.Cursor
	eventManager *event.Manager
}

// NewDocument creates a document over buf with the cursor at (0,0).
func NewDocument(buf buffer.LineStore) *Document {
	if buf == nil || buf.LineCount() == 0 {
		buf = buffer.NewSliceBuffer()
	}
	return &Document{buffer: buf}
}

// New creates a document holding one empty line.
func New() *Document {
	return NewDocument(buffer.NewSliceBuffer())
}

// FromText creates a document by splitting text on '\n'.
func FromText(text string) *Document {
	return NewDocument(buffer.Parse(text))
}

// Open loads path into a new document. A missing file opens empty.
func Open(path string) (*Document, error) {
	buf := buffer.NewSliceBuffer()
	if err := buf.Load(path); err != nil {
		return nil, err
	}
	logger.Debugf("Document: opened '%s' with %d line(s)", path, buf.LineCount())
	return NewDocument(buf), nil
}

// SetEventManager sets the event manager for dispatching events
func (d *Document) SetEventManager(mgr *event.Manager) {
	d.eventManager = mgr
}

// Buffer returns the document's line store.
func (d *Document) Buffer() buffer.LineStore {
	return d.buffer
}

// Cursor returns the current cursor position.
func (d *Document) Cursor() types.Cursor {
	return d.cursor
}

// Line returns line index, or false if it does not exist.
func (d *Document) Line(index int) (string, bool) {
	return d.buffer.Line(index)
}

// Lines returns a copy of all lines.
func (d *Document) Lines() []string {
	return d.buffer.Lines()
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return d.buffer.LineCount()
}

// Text returns the lines joined by '\n'.
func (d *Document) Text() string {
	return string(d.buffer.Bytes())
}

// FilePath returns the path the document was loaded from or last saved to.
func (d *Document) FilePath() string {
	return d.buffer.FilePath()
}

// IsModified reports unsaved changes.
func (d *Document) IsModified() bool {
	return d.buffer.IsModified()
}

// Save writes the document to path, or to its own path when path is empty.
// Storage errors are returned wrapped, never interpreted.
func (d *Document) Save(path string) error {
	saver, ok := d.buffer.(interface{ Save(string) error })
	if !ok {
		return fmt.Errorf("line store %T does not support saving", d.buffer)
	}
	if err := saver.Save(path); err != nil {
		return err
	}
	d.dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: d.buffer.FilePath()})
	return nil
}

func (d *Document) dispatch(eventType event.Type, data interface{}) {
	if d.eventManager != nil {
		d.eventManager.Dispatch(eventType, data)
	}
}

// WriteTo writes the persisted form of the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if wt, ok := d.buffer.(io.WriterTo); ok {
		return wt.WriteTo(w)
	}
	n, err := w.Write(append(d.buffer.Bytes(), '\n'))
	return int64(n), err
}
