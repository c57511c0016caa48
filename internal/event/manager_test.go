package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_DispatchInOrder(t *testing.T) {
	m := NewManager()
	var got []string

	m.Subscribe(TypeCursorMoved, func(e Event) bool {
		got = append(got, "first")
		return false
	})
	m.Subscribe(TypeCursorMoved, func(e Event) bool {
		got = append(got, "second")
		data, ok := e.Data.(CursorMovedData)
		assert.True(t, ok)
		assert.Equal(t, 3, data.NewPosition.Column)
		return false
	})

	data := CursorMovedData{}
	data.NewPosition.Column = 3
	m.Dispatch(TypeCursorMoved, data)

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestManager_ConsumedStopsDelivery(t *testing.T) {
	m := NewManager()
	calls := 0

	m.Subscribe(TypeBufferSaved, func(Event) bool { calls++; return true })
	m.Subscribe(TypeBufferSaved, func(Event) bool { calls++; return false })
	m.Dispatch(TypeBufferSaved, BufferSavedData{FilePath: "x"})

	assert.Equal(t, 1, calls)
}

func TestManager_NoHandlers(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Dispatch(TypeAppQuit, AppQuitData{}) })
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "buffer-modified", TypeBufferModified.String())
	assert.Equal(t, "unknown", Type(99).String())
	assert.Equal(t, "join", EditJoin.String())
}
