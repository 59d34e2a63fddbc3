// Package keys delivers gesture commands to the operating system as media key presses.
package keys

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/go-vgo/robotgo"
	"go.uber.org/zap"
)

// ErrUnknownCommand is returned for a command without a key binding.
var ErrUnknownCommand = errors.New("unknown command")

// Injector names accepted by New.
const (
	InjectorRobotgo = "robotgo"
	InjectorPlugin  = "plugin"
	InjectorDryRun  = "dry-run"
)

// mediaKeys maps commands to robotgo key names.
var mediaKeys = map[gesture.Command]string{
	gesture.CommandVolumeDown: "audio_vol_down",
	gesture.CommandVolumeUp:   "audio_vol_up",
	gesture.CommandPlayPause:  "audio_play",
}

// MediaKey returns the robotgo key name bound to cmd.
func MediaKey(cmd gesture.Command) (string, error) {
	key, ok := mediaKeys[cmd]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return key, nil
}

// RobotgoPresser taps media keys in-process.
type RobotgoPresser struct {
	tap func(key string, args ...interface{}) error
}

// NewRobotgoPresser creates a presser backed by robotgo.KeyTap.
func NewRobotgoPresser() *RobotgoPresser {
	return &RobotgoPresser{tap: robotgo.KeyTap}
}

// Press taps the media key bound to cmd.
func (p *RobotgoPresser) Press(_ context.Context, cmd gesture.Command) error {
	key, err := MediaKey(cmd)
	if err != nil {
		return err
	}
	if err := p.tap(key); err != nil {
		return fmt.Errorf("tap %s: %w", key, err)
	}
	return nil
}

// DryRunPresser only logs the key it would have pressed.
type DryRunPresser struct {
	logger *zap.Logger
}

// NewDryRunPresser creates a presser that performs no input injection.
func NewDryRunPresser(logger *zap.Logger) *DryRunPresser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DryRunPresser{logger: logger}
}

// Press logs the key bound to cmd.
func (p *DryRunPresser) Press(_ context.Context, cmd gesture.Command) error {
	key, err := MediaKey(cmd)
	if err != nil {
		return err
	}
	p.logger.Info("dry run key press", zap.String("command", string(cmd)), zap.String("key", key))
	return nil
}

// Config selects and configures a presser.
type Config struct {
	Injector string
	Plugins  *PluginConfig
	Logger   *zap.Logger
}

// New builds the presser named by cfg.Injector.
func New(cfg Config) (gesture.Presser, error) {
	switch cfg.Injector {
	case InjectorRobotgo, "":
		return NewRobotgoPresser(), nil
	case InjectorDryRun:
		return NewDryRunPresser(cfg.Logger), nil
	case InjectorPlugin:
		if cfg.Plugins == nil {
			return nil, errors.New("plugin injector needs a plugin config")
		}
		return NewPluginPresser(*cfg.Plugins, cfg.Logger)
	default:
		return nil, fmt.Errorf("unknown injector %q", cfg.Injector)
	}
}
