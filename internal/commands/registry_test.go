package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Execute(t *testing.T) {
	reg := NewRegistry()
	var got []string
	require.NoError(t, reg.Register("echo", func(args []string) error {
		got = args
		return nil
	}))

	require.NoError(t, reg.Execute("  echo  a   b "))
	assert.Equal(t, []string{"a", "b"}, got)

	require.NoError(t, reg.Execute("echo"))
	assert.Empty(t, got)
}

func TestRegistry_Raw(t *testing.T) {
	reg := NewRegistry()
	var got string
	require.NoError(t, reg.RegisterRaw("say", func(args []string) error {
		got = args[0]
		return nil
	}))

	tests := []struct {
		line string
		want string
	}{
		{"say very ", "very "},
		{"say  two spaces", " two spaces"},
		{`say " appended"`, " appended"},
		{`say "a\nb"`, "a\nb"},
		{"say `raw\\n`", `raw\n`},
		{"say", ""},
	}
	for _, tt := range tests {
		require.NoError(t, reg.Execute(tt.line), tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}

	err := reg.Execute(`say "unterminated`)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("boom")
	require.NoError(t, reg.Register("fail", func([]string) error { return boom }))

	assert.ErrorIs(t, reg.Execute("nope"), ErrUnknownCommand)
	err := reg.Execute("fail")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fail: boom")
	assert.NoError(t, reg.Execute("   "))
}

func TestRegistry_RegisterValidation(t *testing.T) {
	reg := NewRegistry()
	noop := func([]string) error { return nil }

	require.NoError(t, reg.Register("a", noop))
	assert.Error(t, reg.Register("a", noop))
	assert.Error(t, reg.RegisterRaw("a", noop))
	assert.Error(t, reg.Register("", noop))
	assert.Error(t, reg.Register("two words", noop))
	assert.Error(t, reg.Register("b", nil))
	assert.Equal(t, []string{"a"}, reg.Names())
}
