// Package main provides the system-control plugin.
// It handles volume and media playback keys. On macOS it drives AppleScript,
// elsewhere it taps the media keys through robotgo.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/go-vgo/robotgo"
)

// Request represents the input from the plugin executor.
type Request struct {
	Action  string          `json:"action"`
	Gesture string          `json:"gesture"`
	Config  json.RawMessage `json:"config,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents the output to the plugin executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// actionHandler defines a function type for handling specific actions.
type actionHandler func() error

// binding holds the two ways an action can be performed.
type binding struct {
	appleScript string
	mediaKey    string
}

var bindings = map[string]binding{
	"volume-up": {
		appleScript: `set volume output volume ((output volume of (get volume settings)) + 10)`,
		mediaKey:    "audio_vol_up",
	},
	"volume-down": {
		appleScript: `set volume output volume ((output volume of (get volume settings)) - 10)`,
		mediaKey:    "audio_vol_down",
	},
	"media-play-pause": {
		// F8/Play-Pause media key.
		appleScript: `tell application "System Events"
	key code 100
end tell`,
		mediaKey: "audio_play",
	},
}

func main() {
	resp := handle(os.Stdin, runtime.GOOS)
	json.NewEncoder(os.Stdout).Encode(resp)
}

// handle decodes one request and runs it.
func handle(r io.Reader, goos string) Response {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return errorResponse(fmt.Sprintf("failed to decode request: %v", err))
	}

	handler, ok := handlerFor(req.Action, goos)
	if !ok {
		return errorResponse(fmt.Sprintf("unknown action: %s", req.Action))
	}

	if err := handler(); err != nil {
		return errorResponse(fmt.Sprintf("action %s failed: %v", req.Action, err))
	}

	return Response{Success: true}
}

// handlerFor picks the implementation of action for the platform.
func handlerFor(action, goos string) (actionHandler, bool) {
	b, ok := bindings[action]
	if !ok {
		return nil, false
	}
	if goos == "darwin" {
		return func() error { return runAppleScript(b.appleScript) }, true
	}
	return func() error { return robotgo.KeyTap(b.mediaKey) }, true
}

func errorResponse(errMsg string) Response {
	return Response{
		Success: false,
		Error:   errMsg,
	}
}

// runAppleScript executes an AppleScript command and returns any error.
func runAppleScript(script string) error {
	cmd := exec.Command("osascript", "-e", script)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, string(output))
	}
	return nil
}
