package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/linecore/internal/core"
	"github.com/bethropolis/linecore/internal/plugin/plugintest"
	"github.com/bethropolis/linecore/internal/types"
)

func newEditRegistry(t *testing.T, text string) (*Registry, *plugintest.API) {
	t.Helper()
	api := plugintest.NewAPI(core.FromText(text))
	reg := NewRegistry()
	require.NoError(t, RegisterEditCommands(reg, api))
	return reg, api
}

func run(t *testing.T, reg *Registry, lines ...string) {
	t.Helper()
	for _, l := range lines {
		require.NoError(t, reg.Execute(l), l)
	}
}

func TestEditCommands_Scenario(t *testing.T) {
	reg, api := newEditRegistry(t, "First line\nSecond line here")

	run(t, reg,
		"insert very ",
		"move after 0",
		`insert " appended"`,
		"move abs 11 0",
		"newline",
	)

	assert.Equal(t, []string{"very First ", "line appended", "Second line here"}, api.GetLines())
	assert.Equal(t, types.Cursor{Column: 0, Row: 1}, api.GetCursor())
}

func TestEditCommands_Backspace(t *testing.T) {
	reg, api := newEditRegistry(t, "ab\ncd")

	run(t, reg, "move abs 1 1", "backspace 2")
	assert.Equal(t, []string{"abd"}, api.GetLines())
	assert.Equal(t, types.Cursor{Column: 2, Row: 0}, api.GetCursor())

	run(t, reg, "move abs 0 0")
	err := reg.Execute("backspace")
	assert.ErrorIs(t, err, core.ErrInvalidMove)

	assert.ErrorIs(t, reg.Execute("backspace 0"), ErrUsage)
	assert.ErrorIs(t, reg.Execute("backspace x"), ErrUsage)
}

func TestEditCommands_Show(t *testing.T) {
	reg, api := newEditRegistry(t, "one\ntwo")

	run(t, reg, "move end 1", "cursor", "line 0", "print")
	assert.Equal(t, []string{"(2,1)", "one", "one\ntwo"}, api.Status())
	assert.ErrorIs(t, reg.Execute("line 9"), ErrUsage)
}

func TestEditCommands_Write(t *testing.T) {
	reg, api := newEditRegistry(t, "text")
	path := filepath.Join(t.TempDir(), "out.txt")

	assert.Error(t, reg.Execute("write"))
	run(t, reg, "write "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "text\n", string(data))
	assert.Equal(t, []string{"written " + path}, api.Status())
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		args []string
		want types.Move
	}{
		{[]string{"abs", "3", "4"}, types.Absolute(3, 4)},
		{[]string{"relative", "-1", "0"}, types.Relative(-1, 0)},
		{[]string{"end", "2"}, types.EndOfRow(2)},
		{[]string{"after", "2"}, types.AfterRow(2)},
		{[]string{"col", "7"}, types.CurrentRow(7)},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.args)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range [][]string{nil, {"abs", "1"}, {"warp", "1"}, {"col", "x"}} {
		_, err := ParseMove(bad)
		assert.ErrorIs(t, err, ErrUsage, bad)
	}
}
