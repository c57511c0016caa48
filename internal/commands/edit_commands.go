package commands

import (
	"fmt"
	"strconv"

	"github.com/bethropolis/linecore/internal/plugin"
	"github.com/bethropolis/linecore/internal/types"
)

// RegisterEditCommands registers the editing primitives under their script names:
//
//	insert <text>        insert text at the cursor ("\n" splits lines)
//	newline [n]          split the line at the cursor
//	backspace [n]        delete backward
//	move abs <x> <y>     absolute move
//	move rel <dx> <dy>   relative move
//	move end <y>         last codepoint of row y
//	move after <y>       append position of row y
//	move col <x>         column on the current row
//	write [path]         save the document
//	print                show the document
//	cursor               show the cursor
//	line <n>             show one line
func RegisterEditCommands(reg *Registry, api plugin.EditorAPI) error {
	raw := map[string]plugin.CommandFunc{
		"insert": func(args []string) error {
			return api.InsertText(args[0])
		},
	}
	split := map[string]plugin.CommandFunc{
		"newline":   repeat(api.InsertNewline),
		"backspace": repeat(api.Remove),
		"move": func(args []string) error {
			mv, err := ParseMove(args)
			if err != nil {
				return err
			}
			api.MoveCursor(mv)
			return nil
		},
		"write": func(args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			if err := api.SaveBuffer(path); err != nil {
				return err
			}
			api.SetStatusMessage("written %s", api.GetFilePath())
			return nil
		},
		"print": func(args []string) error {
			api.SetStatusMessage("%s", api.GetBufferBytes())
			return nil
		},
		"cursor": func(args []string) error {
			api.SetStatusMessage("%v", api.GetCursor())
			return nil
		},
		"line": func(args []string) error {
			ints, err := parseInts(args, 1)
			if err != nil {
				return err
			}
			text, ok := api.GetLine(ints[0])
			if !ok {
				return fmt.Errorf("line %d: %w", ints[0], ErrUsage)
			}
			api.SetStatusMessage("%s", text)
			return nil
		},
	}

	for name, fn := range raw {
		if err := reg.RegisterRaw(name, fn); err != nil {
			return err
		}
	}
	for name, fn := range split {
		if err := reg.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// repeat runs op once, or n times when a count argument is given.
func repeat(op func() error) plugin.CommandFunc {
	return func(args []string) error {
		n := 1
		if len(args) > 0 {
			ints, err := parseInts(args, 1)
			if err != nil {
				return err
			}
			if ints[0] < 1 {
				return fmt.Errorf("count %d: %w", ints[0], ErrUsage)
			}
			n = ints[0]
		}
		for i := 0; i < n; i++ {
			if err := op(); err != nil {
				return err
			}
		}
		return nil
	}
}

// ParseMove builds a movement command from "abs x y", "rel dx dy", "end y",
// "after y" or "col x".
func ParseMove(args []string) (types.Move, error) {
	if len(args) == 0 {
		return types.Move{}, fmt.Errorf("move: missing kind: %w", ErrUsage)
	}
	kind, operands := args[0], args[1:]
	switch kind {
	case "abs", "absolute":
		v, err := parseInts(operands, 2)
		if err != nil {
			return types.Move{}, err
		}
		return types.Absolute(v[0], v[1]), nil
	case "rel", "relative":
		v, err := parseInts(operands, 2)
		if err != nil {
			return types.Move{}, err
		}
		return types.Relative(v[0], v[1]), nil
	case "end":
		v, err := parseInts(operands, 1)
		if err != nil {
			return types.Move{}, err
		}
		return types.EndOfRow(v[0]), nil
	case "after":
		v, err := parseInts(operands, 1)
		if err != nil {
			return types.Move{}, err
		}
		return types.AfterRow(v[0]), nil
	case "col":
		v, err := parseInts(operands, 1)
		if err != nil {
			return types.Move{}, err
		}
		return types.CurrentRow(v[0]), nil
	default:
		return types.Move{}, fmt.Errorf("move kind %q: %w", kind, ErrUsage)
	}
}

func parseInts(args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("want %d number(s), got %d: %w", want, len(args), ErrUsage)
	}
	out := make([]int, want)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number: %w", a, ErrUsage)
		}
		out[i] = n
	}
	return out, nil
}
