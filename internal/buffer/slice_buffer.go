// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/linecore/internal/utils"
)

// SliceBuffer stores each line as its own byte slice.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool // Track if buffer has unsaved changes
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		// An empty document is one empty line, never zero lines
		lines: [][]byte{{}},
	}
}

// Parse builds a buffer by splitting text on '\n'. Text ending in '\n'
// yields a trailing empty line.
func Parse(text string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.setContent([]byte(text))
	return sb
}

func (sb *SliceBuffer) setContent(content []byte) {
	parts := bytes.Split(content, []byte("\n"))
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = append([]byte(nil), p...)
	}
	sb.lines = lines
}

// RuneLength returns the codepoint count of a raw line.
func RuneLength(line []byte) int {
	return utf8.RuneCount(line)
}

// Lines returns a copy of every line.
func (sb *SliceBuffer) Lines() []string {
	out := make([]string, len(sb.lines))
	for i, l := range sb.lines {
		out[i] = string(l)
	}
	return out
}

// LineCount returns the number of lines, always at least one.
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns the content of line index, or false if it does not exist.
func (sb *SliceBuffer) Line(index int) (string, bool) {
	if !sb.valid(index) {
		return "", false
	}
	return string(sb.lines[index]), true
}

// LineLength returns the codepoint count of line index, 0 if it does not exist.
func (sb *SliceBuffer) LineLength(index int) int {
	if !sb.valid(index) {
		return 0
	}
	return RuneLength(sb.lines[index])
}

// Bytes joins the lines with '\n' without a trailing separator.
func (sb *SliceBuffer) Bytes() []byte {
	var buffer bytes.Buffer
	for i, line := range sb.lines {
		buffer.Write(line)
		if i < len(sb.lines)-1 {
			buffer.WriteByte('\n')
		}
	}
	return buffer.Bytes()
}

// String implements fmt.Stringer.
func (sb *SliceBuffer) String() string {
	return string(sb.Bytes())
}

// IsModified returns true if the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// MarkSaved clears the modified flag.
func (sb *SliceBuffer) MarkSaved() {
	sb.modified = false
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

func (sb *SliceBuffer) SetFilePath(path string) {
	sb.filePath = path
}

func (sb *SliceBuffer) valid(index int) bool {
	return index >= 0 && index < len(sb.lines)
}

func (sb *SliceBuffer) lineErr(index int) error {
	return fmt.Errorf("line index %d out of bounds (0-%d): %w", index, len(sb.lines)-1, ErrLineNotFound)
}

// --- Buffer Modification Methods ---

// InsertLine inserts text as a new line at index. index may equal LineCount
// to append.
func (sb *SliceBuffer) InsertLine(index int, text string) error {
	if text != "" && strings.IndexByte(text, '\n') >= 0 {
		return fmt.Errorf("insert line %d: text contains a line separator", index)
	}
	if index < 0 || index > len(sb.lines) {
		return sb.lineErr(index)
	}
	sb.lines = append(sb.lines, nil)
	copy(sb.lines[index+1:], sb.lines[index:])
	sb.lines[index] = []byte(text)
	sb.modified = true
	return nil
}

// RemoveLine removes line index and returns its content.
func (sb *SliceBuffer) RemoveLine(index int) (string, error) {
	if !sb.valid(index) {
		return "", sb.lineErr(index)
	}
	if len(sb.lines) == 1 {
		return "", ErrLastLine
	}
	removed := string(sb.lines[index])
	sb.lines = append(sb.lines[:index], sb.lines[index+1:]...)
	sb.modified = true
	return removed, nil
}

// SetLine replaces the content of line index.
func (sb *SliceBuffer) SetLine(index int, text string) error {
	if !sb.valid(index) {
		return sb.lineErr(index)
	}
	if strings.IndexByte(text, '\n') >= 0 {
		return fmt.Errorf("set line %d: text contains a line separator", index)
	}
	sb.lines[index] = []byte(text)
	sb.modified = true
	return nil
}

// AppendToLine appends text to the end of line index.
func (sb *SliceBuffer) AppendToLine(index int, text string) error {
	if !sb.valid(index) {
		return sb.lineErr(index)
	}
	if text == "" {
		return nil
	}
	sb.lines[index] = append(sb.lines[index], text...)
	sb.modified = true
	return nil
}

// InsertRune inserts r before codepoint col of line index. A col past the
// end appends.
func (sb *SliceBuffer) InsertRune(index, col int, r rune) error {
	if !sb.valid(index) {
		return sb.lineErr(index)
	}
	line := sb.lines[index]
	offset := utils.CharByteOffset(line, col)

	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)

	newLine := make([]byte, 0, len(line)+n)
	newLine = append(newLine, line[:offset]...)
	newLine = append(newLine, enc[:n]...)
	newLine = append(newLine, line[offset:]...)
	sb.lines[index] = newLine
	sb.modified = true
	return nil
}

// DeleteRune removes codepoint col of line index and returns it.
func (sb *SliceBuffer) DeleteRune(index, col int) (rune, error) {
	if !sb.valid(index) {
		return 0, sb.lineErr(index)
	}
	line := sb.lines[index]
	length := RuneLength(line)
	if col < 0 || col >= length {
		return 0, fmt.Errorf("delete at %d in line %d of length %d: %w", col, index, length, ErrColumnOutOfRange)
	}

	offset := utils.CharByteOffset(line, col)
	r, size := utf8.DecodeRune(line[offset:])
	if col == length-1 {
		// Last codepoint: truncate rather than splice
		sb.lines[index] = line[:offset]
	} else {
		sb.lines[index] = append(line[:offset:offset], line[offset+size:]...)
	}
	sb.modified = true
	return r, nil
}

// SplitLine cuts line index before codepoint col. The left half stays at index
// and the right half becomes line index+1.
func (sb *SliceBuffer) SplitLine(index, col int) error {
	if !sb.valid(index) {
		return sb.lineErr(index)
	}
	line := sb.lines[index]
	offset := utils.CharByteOffset(line, col)

	right := append([]byte(nil), line[offset:]...)
	left := line[:offset:offset]

	sb.lines[index] = left
	sb.lines = append(sb.lines, nil)
	copy(sb.lines[index+2:], sb.lines[index+1:])
	sb.lines[index+1] = right
	sb.modified = true
	return nil
}

// Ensure SliceBuffer satisfies the LineStore interface
var _ LineStore = (*SliceBuffer)(nil)
