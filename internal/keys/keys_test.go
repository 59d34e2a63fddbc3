package keys

import (
	"context"
	"errors"
	"testing"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMediaKey(t *testing.T) {
	tests := []struct {
		cmd  gesture.Command
		want string
	}{
		{gesture.CommandVolumeDown, "audio_vol_down"},
		{gesture.CommandVolumeUp, "audio_vol_up"},
		{gesture.CommandPlayPause, "audio_play"},
	}

	for _, tt := range tests {
		key, err := MediaKey(tt.cmd)
		require.NoError(t, err)
		assert.Equal(t, tt.want, key)
	}

	_, err := MediaKey("mute")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRobotgoPresser_Press(t *testing.T) {
	var tapped []string
	p := &RobotgoPresser{tap: func(key string, _ ...interface{}) error {
		tapped = append(tapped, key)
		return nil
	}}

	require.NoError(t, p.Press(context.Background(), gesture.CommandVolumeUp))
	require.NoError(t, p.Press(context.Background(), gesture.CommandPlayPause))

	assert.Equal(t, []string{"audio_vol_up", "audio_play"}, tapped)
}

func TestRobotgoPresser_TapError(t *testing.T) {
	tapErr := errors.New("no display")
	p := &RobotgoPresser{tap: func(string, ...interface{}) error { return tapErr }}

	err := p.Press(context.Background(), gesture.CommandVolumeDown)

	assert.ErrorIs(t, err, tapErr)
	assert.ErrorContains(t, err, "audio_vol_down")
}

func TestRobotgoPresser_UnknownCommand(t *testing.T) {
	called := false
	p := &RobotgoPresser{tap: func(string, ...interface{}) error {
		called = true
		return nil
	}}

	err := p.Press(context.Background(), "rewind")

	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.False(t, called)
}

func TestDryRunPresser(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewDryRunPresser(zap.New(core))

	require.NoError(t, p.Press(context.Background(), gesture.CommandPlayPause))

	entries := logs.FilterMessage("dry run key press").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "audio_play", entries[0].ContextMap()["key"])
}

func TestNew(t *testing.T) {
	t.Run("robotgo is the default", func(t *testing.T) {
		p, err := New(Config{})
		require.NoError(t, err)
		assert.IsType(t, &RobotgoPresser{}, p)
	})

	t.Run("dry run", func(t *testing.T) {
		p, err := New(Config{Injector: InjectorDryRun})
		require.NoError(t, err)
		assert.IsType(t, &DryRunPresser{}, p)
	})

	t.Run("plugin without config", func(t *testing.T) {
		_, err := New(Config{Injector: InjectorPlugin})
		assert.Error(t, err)
	})

	t.Run("unknown injector", func(t *testing.T) {
		_, err := New(Config{Injector: "xdotool"})
		assert.ErrorContains(t, err, "xdotool")
	})
}
