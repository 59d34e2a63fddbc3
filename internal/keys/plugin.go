package keys

import (
	"context"
	"fmt"
	"time"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/plugin"
	"go.uber.org/zap"
)

const (
	// SystemControlPlugin is the plugin that owns the media actions.
	SystemControlPlugin = "system-control"
	// DefaultPluginTimeout bounds a single plugin action.
	DefaultPluginTimeout = 5 * time.Second
)

// pluginActions maps commands to system-control plugin actions.
var pluginActions = map[gesture.Command]string{
	gesture.CommandVolumeDown: "volume-down",
	gesture.CommandVolumeUp:   "volume-up",
	gesture.CommandPlayPause:  "media-play-pause",
}

// PluginConfig locates the plugin presser's plugin.
type PluginConfig struct {
	Dir     string
	Name    string
	Timeout time.Duration
}

// PluginPresser runs a plugin action for every command.
type PluginPresser struct {
	plugin   *plugin.Plugin
	executor *plugin.Executor
	logger   *zap.Logger
}

// NewPluginPresser discovers plugins in cfg.Dir and checks that the named
// plugin supports every media action.
func NewPluginPresser(cfg PluginConfig, logger *zap.Logger) (*PluginPresser, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	name := cfg.Name
	if name == "" {
		name = SystemControlPlugin
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultPluginTimeout
	}

	mgr := plugin.NewManager(cfg.Dir, logger)
	if err := mgr.Discover(); err != nil {
		return nil, fmt.Errorf("discover plugins in %s: %w", cfg.Dir, err)
	}

	p, err := mgr.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%s in %s: %w", name, cfg.Dir, err)
	}
	for _, action := range pluginActions {
		if !p.Supports(action) {
			return nil, fmt.Errorf("plugin %s does not support %s", name, action)
		}
	}

	logger.Info("using key plugin", zap.String("plugin", name), zap.String("version", p.Manifest.Version))
	return &PluginPresser{
		plugin:   p,
		executor: plugin.NewExecutor(timeout),
		logger:   logger,
	}, nil
}

// Press runs the plugin action bound to cmd.
func (p *PluginPresser) Press(ctx context.Context, cmd gesture.Command) error {
	action, ok := pluginActions[cmd]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return p.executor.Run(ctx, p.plugin, &plugin.Request{
		Action:  action,
		Gesture: string(cmd),
	})
}
