package gesture

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Cooldown is the minimum time between two fired commands, whatever they are.
const Cooldown = time.Second

// Command is the symbolic name of a media action.
type Command string

const (
	CommandVolumeDown Command = "volume down"
	CommandVolumeUp   Command = "volume up"
	CommandPlayPause  Command = "play/pause"
)

// CommandFor maps a gesture to its command. None maps to no command.
func CommandFor(g Gesture) (Command, bool) {
	switch g {
	case BothHands:
		return CommandPlayPause, true
	case LeftOnly:
		return CommandVolumeDown, true
	case RightOnly:
		return CommandVolumeUp, true
	default:
		return "", false
	}
}

// Outcome describes what a Dispatch call did.
type Outcome int

const (
	// OutcomeNoGesture means the gesture carries no command.
	OutcomeNoGesture Outcome = iota
	// OutcomeSuppressed means the cooldown window was still open.
	OutcomeSuppressed
	// OutcomeFired means the key press was issued.
	OutcomeFired
	// OutcomeFailed means the key press returned an error.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuppressed:
		return "suppressed"
	case OutcomeFired:
		return "fired"
	case OutcomeFailed:
		return "failed"
	default:
		return "no-gesture"
	}
}

// Presser delivers a command to the operating system as a key press.
type Presser interface {
	Press(ctx context.Context, cmd Command) error
}

// Clock supplies timestamps for cooldown comparisons.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// DispatchState is the only state that outlives a frame.
// HasFired is false until the first command fires, which leaves the cooldown
// open for the first gesture.
type DispatchState struct {
	LastCommand     Command
	LastCommandTime time.Time
	HasFired        bool
}

// Dispatcher owns DispatchState and fires commands through a Presser.
type Dispatcher struct {
	presser Presser
	logger  *zap.Logger

	mu    sync.Mutex
	state DispatchState
}

// NewDispatcher creates a Dispatcher with no cooldown active.
func NewDispatcher(presser Presser, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		presser: presser,
		logger:  logger,
	}
}

// Dispatch fires the command mapped to g unless the global cooldown is active.
//
// State is only updated after the key press succeeds. A press error is
// returned and leaves the state untouched.
func (d *Dispatcher) Dispatch(ctx context.Context, g Gesture, now time.Time) (Outcome, error) {
	cmd, ok := CommandFor(g)
	if !ok {
		return OutcomeNoGesture, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// A clock that steps backwards gives a negative elapsed time and stays
	// suppressed, so LastCommandTime never decreases.
	if d.state.HasFired && now.Sub(d.state.LastCommandTime) < Cooldown {
		d.logger.Debug("command suppressed by cooldown",
			zap.String("command", string(cmd)),
			zap.String("last_command", string(d.state.LastCommand)),
			zap.Duration("elapsed", now.Sub(d.state.LastCommandTime)),
		)
		return OutcomeSuppressed, nil
	}

	d.logger.Info(actionMessage(cmd), zap.String("command", string(cmd)))
	if err := d.presser.Press(ctx, cmd); err != nil {
		return OutcomeFailed, fmt.Errorf("press %q: %w", cmd, err)
	}

	d.state = DispatchState{
		LastCommand:     cmd,
		LastCommandTime: now,
		HasFired:        true,
	}
	return OutcomeFired, nil
}

// State returns a snapshot of the dispatch state.
func (d *Dispatcher) State() DispatchState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func actionMessage(cmd Command) string {
	switch cmd {
	case CommandVolumeDown:
		return "decreasing volume"
	case CommandVolumeUp:
		return "increasing volume"
	case CommandPlayPause:
		return "toggling play/pause"
	default:
		return "no action for this gesture"
	}
}
