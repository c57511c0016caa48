// internal/buffer/persist.go
package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Load reads a file into the buffer, replacing existing content. A missing
// file gives an empty buffer bound to filePath.
func (sb *SliceBuffer) Load(filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{{}}
			sb.filePath = filePath
			sb.modified = false
			return nil
		}
		return fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}
	sb.setContent(content)
	sb.filePath = filePath
	sb.modified = false
	return nil
}

// WriteTo writes the persisted form: every line followed by '\n'. A final
// empty line is the one implied by a trailing separator and is not written,
// so text ending in '\n' round-trips byte for byte.
func (sb *SliceBuffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64

	lines := sb.lines
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	for _, line := range lines {
		written, err := bw.Write(line)
		n += int64(written)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// Save writes the buffer to filePath, or to the stored path when filePath is
// empty, and syncs it to disk.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" { // Allow overriding path during save
		path = filePath
	}
	if path == "" {
		return ErrNoPath
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file '%s': %w", path, err)
	}
	if _, err := sb.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("failed to sync file '%s': %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}
