package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Equal(t, []string{"q", "ctrl+c"}, km.Quit.Keys())
	assert.Equal(t, []string{"/"}, km.Search.Keys())
	assert.Equal(t, []string{"o"}, km.FilterOrg.Keys())
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("up", km.Up))
	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("", km.Quit))
}

func TestHelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
	assert.NotEmpty(t, km.ClipsHelp())

	full := km.FullHelp()
	require.Len(t, full, 4)
	for _, group := range full {
		assert.NotEmpty(t, group)
	}
}
