package plugin

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptPlugin writes a shell script plugin into a temp dir.
func scriptPlugin(t *testing.T, name, script string) *Plugin {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, name+".sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))

	return &Plugin{
		Manifest: Manifest{
			Name:       name,
			Version:    "1.0.0",
			Executable: name + ".sh",
			Actions:    []string{"volume-up"},
		},
		Path:       dir,
		Executable: path,
	}
}

func TestExecutor_Execute(t *testing.T) {
	plugin := scriptPlugin(t, "ok-plugin", `echo '{"success":true,"data":{"message":"hello world"}}'
`)

	response, err := NewExecutor(5*time.Second).Execute(context.Background(), plugin, &Request{Action: "volume-up"})
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Empty(t, response.Error)

	var data map[string]any
	require.NoError(t, json.Unmarshal(response.Data, &data))
	assert.Equal(t, "hello world", data["message"])
}

func TestExecutor_Execute_ReadsStdin(t *testing.T) {
	plugin := scriptPlugin(t, "echo-plugin", `INPUT=$(cat)
echo "{\"success\":true,\"data\":{\"received\":$INPUT}}"
`)

	request := &Request{
		Action:  "media-play-pause",
		Gesture: "both-hands",
		Params:  json.RawMessage(`{"count":42}`),
	}

	response, err := NewExecutor(5*time.Second).Execute(context.Background(), plugin, request)
	require.NoError(t, err)
	require.True(t, response.Success)

	var data struct {
		Received Request `json:"received"`
	}
	require.NoError(t, json.Unmarshal(response.Data, &data))
	assert.Equal(t, "media-play-pause", data.Received.Action)
	assert.Equal(t, "both-hands", data.Received.Gesture)
	assert.JSONEq(t, `{"count":42}`, string(data.Received.Params))
}

func TestExecutor_Timeout(t *testing.T) {
	plugin := scriptPlugin(t, "slow-plugin", `exec sleep 10
echo '{"success":true}'
`)

	start := time.Now()
	_, err := NewExecutor(100*time.Millisecond).Execute(context.Background(), plugin, &Request{Action: "volume-up"})

	assert.ErrorContains(t, err, "timed out")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestExecutor_Execute_ErrorResponse(t *testing.T) {
	plugin := scriptPlugin(t, "error-plugin", `echo '{"success":false,"error":"something went wrong"}'
`)

	response, err := NewExecutor(5*time.Second).Execute(context.Background(), plugin, &Request{Action: "volume-up"})
	require.NoError(t, err)

	assert.False(t, response.Success)
	assert.Equal(t, "something went wrong", response.Error)
}

func TestExecutor_Execute_InvalidJSON(t *testing.T) {
	plugin := scriptPlugin(t, "bad-plugin", `echo 'not valid json'
`)

	_, err := NewExecutor(5*time.Second).Execute(context.Background(), plugin, &Request{Action: "volume-up"})

	assert.ErrorContains(t, err, "parse plugin response")
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	plugin := scriptPlugin(t, "exit-plugin", `echo "Error: something failed" >&2
exit 1
`)

	_, err := NewExecutor(5*time.Second).Execute(context.Background(), plugin, &Request{Action: "volume-up"})

	assert.ErrorContains(t, err, "something failed")
}

func TestExecutor_Run(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		plugin := scriptPlugin(t, "ok-plugin", `echo '{"success":true}'
`)

		err := NewExecutor(5*time.Second).Run(context.Background(), plugin, &Request{Action: "volume-up"})

		assert.NoError(t, err)
	})

	t.Run("unsuccessful response", func(t *testing.T) {
		plugin := scriptPlugin(t, "error-plugin", `echo '{"success":false,"error":"no audio device"}'
`)

		err := NewExecutor(5*time.Second).Run(context.Background(), plugin, &Request{Action: "volume-up"})

		assert.ErrorIs(t, err, ErrActionFailed)
		assert.ErrorContains(t, err, "no audio device")
	})
}

func TestNewExecutor(t *testing.T) {
	executor := NewExecutor(3 * time.Second)

	require.NotNil(t, executor)
	assert.Equal(t, 3*time.Second, executor.timeout)
}
