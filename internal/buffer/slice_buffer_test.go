package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewSliceBuffer_OneEmptyLine(t *testing.T) {
	sb := NewSliceBuffer()

	assert.Equal(t, 1, sb.LineCount())
	line, ok := sb.Line(0)
	assert.True(t, ok)
	assert.Equal(t, "", line)
	assert.False(t, sb.IsModified())
}

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"", []string{""}},
		{"one", []string{"one"}},
		{"one\ntwo", []string{"one", "two"}},
		{"one\ntwo\n", []string{"one", "two", ""}},
		{"\n", []string{"", ""}},
		{"crlf\r\nkept", []string{"crlf\r", "kept"}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).Lines())
		})
	}
}

func TestLine_OutOfRange(t *testing.T) {
	sb := Parse("a\nb")

	_, ok := sb.Line(-1)
	assert.False(t, ok)
	_, ok = sb.Line(2)
	assert.False(t, ok)
	assert.Equal(t, 0, sb.LineLength(5))
}

func TestLineLength_CountsCodepoints(t *testing.T) {
	sb := Parse("héllo\n日本語\n😀")

	assert.Equal(t, 5, sb.LineLength(0))
	assert.Equal(t, 3, sb.LineLength(1))
	assert.Equal(t, 1, sb.LineLength(2))
}

func TestInsertRune(t *testing.T) {
	sb := Parse("héllo")

	require.NoError(t, sb.InsertRune(0, 2, 'X'))
	assert.Equal(t, []string{"héXllo"}, sb.Lines())

	require.NoError(t, sb.InsertRune(0, 99, '!'))
	assert.Equal(t, []string{"héXllo!"}, sb.Lines())
	assert.True(t, sb.IsModified())

	err := sb.InsertRune(3, 0, 'x')
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestDeleteRune(t *testing.T) {
	sb := Parse("añb")

	r, err := sb.DeleteRune(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 'ñ', r)
	assert.Equal(t, "ab", sb.Lines()[0])

	// last codepoint is truncated
	r, err = sb.DeleteRune(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 'b', r)
	assert.Equal(t, "a", sb.Lines()[0])

	_, err = sb.DeleteRune(0, 1)
	assert.ErrorIs(t, err, ErrColumnOutOfRange)
	_, err = sb.DeleteRune(0, -1)
	assert.ErrorIs(t, err, ErrColumnOutOfRange)
}

func TestDeleteRune_DoesNotClobberTail(t *testing.T) {
	sb := Parse("abcdef")
	before := sb.lines[0]

	_, err := sb.DeleteRune(0, 2)
	require.NoError(t, err)

	assert.Equal(t, "abdef", sb.Lines()[0])
	assert.Equal(t, "abcdef", string(before))
}

func TestSplitLine(t *testing.T) {
	sb := Parse("first\nhéllo world\nlast")

	require.NoError(t, sb.SplitLine(1, 5))
	assert.Equal(t, []string{"first", "héllo", " world", "last"}, sb.Lines())

	require.NoError(t, sb.SplitLine(3, 0))
	assert.Equal(t, []string{"first", "héllo", " world", "", "last"}, sb.Lines())

	require.NoError(t, sb.SplitLine(4, 4))
	assert.Equal(t, []string{"first", "héllo", " world", "", "last", ""}, sb.Lines())
}

func TestInsertAndRemoveLine(t *testing.T) {
	sb := Parse("a\nc")

	require.NoError(t, sb.InsertLine(1, "b"))
	require.NoError(t, sb.InsertLine(3, "d"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, sb.Lines())

	assert.ErrorIs(t, sb.InsertLine(9, "x"), ErrLineNotFound)
	assert.Error(t, sb.InsertLine(0, "x\ny"))

	removed, err := sb.RemoveLine(0)
	require.NoError(t, err)
	assert.Equal(t, "a", removed)
	assert.Equal(t, []string{"b", "c", "d"}, sb.Lines())

	_, err = sb.RemoveLine(3)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestRemoveLine_KeepsLastLine(t *testing.T) {
	sb := Parse("only")

	_, err := sb.RemoveLine(0)
	assert.ErrorIs(t, err, ErrLastLine)
	assert.Equal(t, 1, sb.LineCount())
}

func TestSetAndAppendLine(t *testing.T) {
	sb := Parse("a\nb")

	require.NoError(t, sb.SetLine(0, "alpha"))
	require.NoError(t, sb.AppendToLine(1, "eta"))
	assert.Equal(t, []string{"alpha", "beta"}, sb.Lines())

	assert.ErrorIs(t, sb.SetLine(2, "x"), ErrLineNotFound)
	assert.ErrorIs(t, sb.AppendToLine(-1, "x"), ErrLineNotFound)
	assert.Error(t, sb.SetLine(0, "x\n"))
}

func TestBytes(t *testing.T) {
	assert.Equal(t, "a\nb\n", string(Parse("a\nb\n").Bytes()))
	assert.Equal(t, "a\nb", Parse("a\nb").String())
}

func TestSplitLine_Lossless(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringMatching(`[a-zé日😀 ]{0,20}`).Draw(t, "line")
		sb := Parse(line)
		col := rapid.IntRange(0, sb.LineLength(0)+2).Draw(t, "col")

		if err := sb.SplitLine(0, col); err != nil {
			t.Fatalf("split: %v", err)
		}
		lines := sb.Lines()
		if len(lines) != 2 || lines[0]+lines[1] != line {
			t.Fatalf("split %q at %d gave %q", line, col, lines)
		}
	})
}

func TestInsertDeleteRune_Inverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringMatching(`[a-zé日😀 ]{0,20}`).Draw(t, "line")
		sb := Parse(line)
		col := rapid.IntRange(0, sb.LineLength(0)).Draw(t, "col")
		r := rapid.SampledFrom([]rune("xé日😀")).Draw(t, "rune")

		if err := sb.InsertRune(0, col, r); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if got := sb.LineLength(0); got != len([]rune(line))+1 {
			t.Fatalf("length %d after insert into %q", got, line)
		}
		deleted, err := sb.DeleteRune(0, col)
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if deleted != r || sb.Lines()[0] != line {
			t.Fatalf("got %q/%q, want %q/%q", deleted, sb.Lines()[0], r, line)
		}
		if strings.Contains(sb.Lines()[0], "\n") {
			t.Fatal("line contains a separator")
		}
	})
}

func TestRuneLength(t *testing.T) {
	assert.Equal(t, 0, RuneLength(nil))
	assert.Equal(t, 3, RuneLength([]byte("a€b")))
}

func TestModifiedTracking(t *testing.T) {
	sb := Parse("abc")
	assert.False(t, sb.IsModified())

	require.NoError(t, sb.InsertRune(0, 3, 'd'))
	assert.True(t, sb.IsModified())

	sb.MarkSaved()
	assert.False(t, sb.IsModified())

	sb.SetFilePath("notes.txt")
	assert.Equal(t, "notes.txt", sb.FilePath())
	assert.False(t, sb.IsModified())
}
