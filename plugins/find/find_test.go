package find

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/linecore/internal/core"
	"github.com/bethropolis/linecore/internal/plugin/plugintest"
	"github.com/bethropolis/linecore/internal/types"
)

func TestSearch(t *testing.T) {
	lines := []string{"héllo world", "say hello", "", "hello again"}
	re := regexp.MustCompile("hel+o")

	tests := []struct {
		name    string
		from    types.Cursor
		forward bool
		want    types.Cursor
		found   bool
	}{
		{"forward same line", types.Cursor{Column: 0, Row: 1}, true, types.Cursor{Column: 4, Row: 1}, true},
		{"forward next line", types.Cursor{Column: 5, Row: 1}, true, types.Cursor{Column: 0, Row: 3}, true},
		{"forward past end", types.Cursor{Column: 1, Row: 3}, true, types.Cursor{}, false},
		{"backward same line", types.Cursor{Column: 9, Row: 1}, false, types.Cursor{Column: 4, Row: 1}, true},
		{"backward previous line", types.Cursor{Column: 0, Row: 3}, false, types.Cursor{Column: 4, Row: 1}, true},
		{"backward none", types.Cursor{Column: 4, Row: 1}, false, types.Cursor{}, false},
		{"row out of range", types.Cursor{Column: 0, Row: 9}, true, types.Cursor{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Search(lines, re, tt.from, tt.forward)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch_CodepointColumns(t *testing.T) {
	lines := []string{"ééé world"}
	got, ok := Search(lines, regexp.MustCompile("world"), types.Cursor{}, true)
	require.True(t, ok)
	assert.Equal(t, types.Cursor{Column: 4, Row: 0}, got)
}

func TestCommands(t *testing.T) {
	api := plugintest.NewAPI(core.FromText("one two\ntwo three\nthree"))
	require.NoError(t, New().Initialize(api))

	require.NoError(t, api.Run("find", "two"))
	assert.Equal(t, types.Cursor{Column: 4, Row: 0}, api.GetCursor())

	require.NoError(t, api.Run("findnext"))
	assert.Equal(t, types.Cursor{Column: 0, Row: 1}, api.GetCursor())

	assert.ErrorIs(t, api.Run("findnext"), ErrNotFound)
	assert.Equal(t, types.Cursor{Column: 0, Row: 1}, api.GetCursor())

	require.NoError(t, api.Run("rfind", "o"))
	assert.Equal(t, types.Cursor{Column: 6, Row: 0}, api.GetCursor())

	assert.Error(t, api.Run("find", "("))
	assert.Error(t, api.Run("find"))
}
