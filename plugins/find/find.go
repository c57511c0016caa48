// plugins/find/find.go
package find

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bethropolis/linecore/internal/logger"
	"github.com/bethropolis/linecore/internal/plugin"
	"github.com/bethropolis/linecore/internal/types"
	"github.com/bethropolis/linecore/internal/utils"
)

// Ensure Find implements plugin.Plugin
var _ plugin.Plugin = (*Find)(nil)

// ErrNotFound is returned when a search has no match.
var ErrNotFound = errors.New("pattern not found")

// Find moves the cursor to regular expression matches.
//
//	find <regex>    next match after the cursor
//	rfind <regex>   last match before the cursor
//	findnext        repeat the last search forward
type Find struct {
	api plugin.EditorAPI

	mutex     sync.Mutex // Protects lastRegex
	lastRegex *regexp.Regexp
}

// New creates a new instance of the Find plugin.
func New() plugin.Plugin {
	return &Find{}
}

// Name returns the unique name of the plugin.
func (p *Find) Name() string {
	return "find"
}

// Initialize registers the search commands.
func (p *Find) Initialize(api plugin.EditorAPI) error {
	p.api = api
	commands := map[string]plugin.CommandFunc{
		"find":     p.search(true),
		"rfind":    p.search(false),
		"findnext": p.findNext,
	}
	for name, fn := range commands {
		if err := api.RegisterCommand(name, fn); err != nil {
			return fmt.Errorf("failed to register '%s' command: %w", name, err)
		}
	}
	return nil
}

// Shutdown has nothing to release.
func (p *Find) Shutdown() error {
	return nil
}

func (p *Find) search(forward bool) plugin.CommandFunc {
	return func(args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("missing search pattern")
		}
		re, err := regexp.Compile(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("invalid search pattern: %w", err)
		}
		p.mutex.Lock()
		p.lastRegex = re
		p.mutex.Unlock()

		cursor := p.api.GetCursor()
		if forward {
			// Skip a match under the cursor
			cursor.Column++
		}
		return p.jump(re, cursor, forward)
	}
}

func (p *Find) findNext(args []string) error {
	p.mutex.Lock()
	re := p.lastRegex
	p.mutex.Unlock()
	if re == nil {
		return fmt.Errorf("no previous search")
	}
	cursor := p.api.GetCursor()
	cursor.Column++
	return p.jump(re, cursor, true)
}

func (p *Find) jump(re *regexp.Regexp, from types.Cursor, forward bool) error {
	found, ok := Search(p.api.GetLines(), re, from, forward)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, re)
	}
	logger.DebugTagf("find", "find: %s matched at %v", re, found)
	p.api.MoveCursor(types.Absolute(found.Column, found.Row))
	return nil
}

// Search returns the position of the first match of re at or after from
// (forward) or the last match starting before from (backward). Columns are
// codepoint indices. It does not wrap around.
func Search(lines []string, re *regexp.Regexp, from types.Cursor, forward bool) (types.Cursor, bool) {
	if from.Row < 0 || from.Row >= len(lines) {
		return types.Cursor{}, false
	}

	if forward {
		for row := from.Row; row < len(lines); row++ {
			line := []byte(lines[row])
			start := 0
			if row == from.Row {
				start = utils.CharByteOffset(line, from.Column)
				if from.Column > utf8.RuneCount(line) {
					continue
				}
			}
			if loc := re.FindIndex(line[start:]); loc != nil {
				return types.Cursor{Column: utf8.RuneCount(line[:start+loc[0]]), Row: row}, true
			}
		}
		return types.Cursor{}, false
	}

	for row := from.Row; row >= 0; row-- {
		line := []byte(lines[row])
		end := len(line)
		if row == from.Row {
			end = utils.CharByteOffset(line, from.Column)
		}
		// A match must start before end but may extend past it
		var last []int
		for _, loc := range re.FindAllIndex(line, -1) {
			if row != from.Row || loc[0] < end {
				last = loc
			}
		}
		if last != nil {
			return types.Cursor{Column: utf8.RuneCount(line[:last[0]]), Row: row}, true
		}
	}
	return types.Cursor{}, false
}
