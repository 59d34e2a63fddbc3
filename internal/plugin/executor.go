package plugin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

const waitDelay = 500 * time.Millisecond

// ErrActionFailed is returned by Run when the plugin reports success=false.
var ErrActionFailed = errors.New("plugin action failed")

// Executor handles the execution of plugins with timeout support.
type Executor struct {
	timeout time.Duration
}

// NewExecutor creates a new Executor with the specified timeout.
func NewExecutor(timeout time.Duration) *Executor {
	return &Executor{
		timeout: timeout,
	}
}

// Execute runs a plugin with the given request and returns the response.
// The request is written to the plugin's stdin as JSON and stdout is parsed as a Response.
// The plugin is killed when the executor timeout or ctx expires.
func (e *Executor) Execute(ctx context.Context, plugin *Plugin, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, plugin.Executable)
	cmd.Dir = plugin.Path
	// Children that inherit stdout must not hold Run open after a kill.
	cmd.WaitDelay = waitDelay

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	cmd.Stdin = bytes.NewReader(reqJSON)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("plugin %s timed out after %s", plugin.Manifest.Name, e.timeout)
	}

	if err != nil {
		if stderrStr := stderr.String(); stderrStr != "" {
			return nil, fmt.Errorf("plugin %s failed: %w, stderr: %s", plugin.Manifest.Name, err, stderrStr)
		}
		return nil, fmt.Errorf("plugin %s failed: %w", plugin.Manifest.Name, err)
	}

	var response Response
	if err := json.Unmarshal(stdout.Bytes(), &response); err != nil {
		return nil, fmt.Errorf("parse plugin response: %w, stdout: %s", err, stdout.String())
	}

	return &response, nil
}

// Run executes the request and turns an unsuccessful response into an error
// wrapping ErrActionFailed.
func (e *Executor) Run(ctx context.Context, plugin *Plugin, req *Request) error {
	resp, err := e.Execute(ctx, plugin, req)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%w: %s %s: %s", ErrActionFailed, plugin.Manifest.Name, req.Action, resp.Error)
	}
	return nil
}
