package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_StartsEnabled(t *testing.T) {
	assert.True(t, New().IsEnabled())
}

func TestHandleToggle(t *testing.T) {
	tr := New()

	var got []bool
	tr.OnToggle(func(enabled bool) { got = append(got, enabled) })

	tr.handleToggle()
	assert.False(t, tr.IsEnabled())
	tr.handleToggle()
	assert.True(t, tr.IsEnabled())

	assert.Equal(t, []bool{false, true}, got)
}

func TestHandleToggle_NoCallback(t *testing.T) {
	tr := New()

	assert.NotPanics(t, tr.handleToggle)
	assert.False(t, tr.IsEnabled())
}

func TestSetLastCommand_BeforeReady(t *testing.T) {
	assert.NotPanics(t, func() { New().SetLastCommand("volume up") })
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "● Enabled", toggleTitle(true))
	assert.Equal(t, "○ Paused", toggleTitle(false))
	assert.Equal(t, "Last: none", lastCommandTitle(""))
	assert.Equal(t, "Last: play/pause", lastCommandTitle("play/pause"))
}
