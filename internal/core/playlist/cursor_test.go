package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorWraps(t *testing.T) {
	cursor := NewCursor([]string{"a.mp3", "b.mp3", "c.mp3"})

	current, ok := cursor.Current()
	require.True(t, ok)
	assert.Equal(t, "a.mp3", current)

	var order []string
	for i := 0; i < 4; i++ {
		track, _ := cursor.Advance()
		order = append(order, track)
	}
	assert.Equal(t, []string{"b.mp3", "c.mp3", "a.mp3", "b.mp3"}, order)
	assert.Equal(t, 1, cursor.Index())

	cursor.Rewind()
	assert.Zero(t, cursor.Index())
}

func TestEmptyCursor(t *testing.T) {
	cursor := NewCursor(nil)

	_, ok := cursor.Current()
	assert.False(t, ok)
	_, ok = cursor.Advance()
	assert.False(t, ok)
	assert.Zero(t, cursor.Len())
}
