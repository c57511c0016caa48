package commands

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/bethropolis/linecore/internal/logger"
	"github.com/bethropolis/linecore/internal/plugin"
)

var (
	// ErrUnknownCommand is returned by Execute for an unregistered name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command gets malformed arguments.
	ErrUsage = errors.New("invalid arguments")
)

type entry struct {
	fn  plugin.CommandFunc
	raw bool
}

// Registry maps command names to functions.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]entry)}
}

// Register adds a command whose arguments are split on whitespace.
func (r *Registry) Register(name string, fn plugin.CommandFunc) error {
	return r.add(name, entry{fn: fn})
}

// RegisterRaw adds a command that receives everything after its name as a
// single argument. A remainder written as a Go quoted string is unquoted.
func (r *Registry) RegisterRaw(name string, fn plugin.CommandFunc) error {
	return r.add(name, entry{fn: fn, raw: true})
}

func (r *Registry) add(name string, e entry) error {
	if name == "" || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("invalid command name %q", name)
	}
	if e.fn == nil {
		return fmt.Errorf("command '%s' has no function", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	r.commands[name] = e
	logger.DebugTagf("commands", "Registry: Registered command '%s'", name)
	return nil
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute parses one command line and runs it. Blank lines are ignored.
func (r *Registry) Execute(line string) error {
	line = strings.TrimLeft(line, " \t")
	if strings.TrimSpace(line) == "" {
		return nil
	}
	name, rest, _ := strings.Cut(line, " ")
	name = strings.TrimSpace(name)

	r.mu.RLock()
	e, exists := r.commands[name]
	r.mu.RUnlock()
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	var args []string
	if e.raw {
		text, err := rawArgument(rest)
		if err != nil {
			return fmt.Errorf("%s: %w: %v", name, ErrUsage, err)
		}
		args = []string{text}
	} else {
		args = strings.Fields(rest)
	}

	logger.DebugTagf("commands", "Registry: Executing command '%s' with args %q", name, args)
	if err := e.fn(args); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func rawArgument(rest string) (string, error) {
	trimmed := strings.TrimSpace(rest)
	if strings.HasPrefix(trimmed, `"`) || strings.HasPrefix(trimmed, "`") {
		return strconv.Unquote(trimmed)
	}
	return rest, nil
}
