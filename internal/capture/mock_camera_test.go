package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func closeAll(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}

func TestMockCamera_Playback(t *testing.T) {
	frames := BlankFrames(2)
	defer closeAll(frames)

	cam := NewMockCamera(frames, false)
	require.NoError(t, cam.Open())
	defer cam.Close()

	for i := 0; i < 2; i++ {
		f, err := cam.ReadFrame()
		require.NoError(t, err)
		f.Close()
	}

	_, err := cam.ReadFrame()
	assert.ErrorIs(t, err, ErrNoMoreFrames)
	assert.Equal(t, 2, cam.Reads())
}

func TestMockCamera_Loop(t *testing.T) {
	frames := BlankFrames(1)
	defer closeAll(frames)

	cam := NewMockCamera(frames, true)
	require.NoError(t, cam.Open())
	defer cam.Close()

	for i := 0; i < 5; i++ {
		f, err := cam.ReadFrame()
		require.NoError(t, err, "iteration %d", i)
		f.Close()
	}
}

func TestMockCamera_NotOpen(t *testing.T) {
	frames := BlankFrames(1)
	defer closeAll(frames)

	cam := NewMockCamera(frames, false)

	_, err := cam.ReadFrame()
	assert.ErrorIs(t, err, ErrCameraNotOpen)
	assert.False(t, cam.IsOpen())
}

func TestMockCamera_Reset(t *testing.T) {
	frames := BlankFrames(1)
	defer closeAll(frames)

	cam := NewMockCamera(frames, false)
	require.NoError(t, cam.Open())

	f, err := cam.ReadFrame()
	require.NoError(t, err)
	f.Close()

	cam.Reset()

	f, err = cam.ReadFrame()
	require.NoError(t, err)
	f.Close()
}

func TestMockCamera_ImplementsCamera(t *testing.T) {
	var _ Camera = (*MockCamera)(nil)
}
