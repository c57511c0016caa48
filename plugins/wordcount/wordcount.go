// plugins/wordcount/wordcount.go
package wordcount

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/linecore/internal/plugin"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// Stats summarises a document.
type Stats struct {
	Lines      int
	Words      int
	Codepoints int
	Graphemes  int
	Bytes      int
}

func (s Stats) String() string {
	return fmt.Sprintf("Lines: %d, Words: %d, Chars: %d, Graphemes: %d, Bytes: %d",
		s.Lines, s.Words, s.Codepoints, s.Graphemes, s.Bytes)
}

// Count computes Stats for text split into lineCount lines.
func Count(text []byte, lineCount int) Stats {
	return Stats{
		Lines:      lineCount,
		Words:      len(bytes.Fields(text)),
		Codepoints: utf8.RuneCount(text),
		Graphemes:  uniseg.GraphemeClusterCount(string(text)),
		Bytes:      len(text),
	}
}

// WordCount is a simple plugin to count lines, words, characters and bytes.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "wordcount"
}

// Initialize registers the wc command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	stats := Count(p.api.GetBufferBytes(), p.api.GetLineCount())
	p.api.SetStatusMessage("%s", stats)
	return nil
}
