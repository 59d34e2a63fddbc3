package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/display"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/keys"
	"github.com/ayusman/mudra/internal/logging"
	"github.com/ayusman/mudra/internal/tray"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The preview window and the tray both need the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mudra: load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mudra: %v\n", err)
		os.Exit(1)
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("mudra stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	presser, err := keys.New(keys.Config{
		Injector: cfg.Injector,
		Plugins: &keys.PluginConfig{
			Dir:     cfg.PluginDir,
			Timeout: cfg.PluginTimeout(),
		},
		Logger: logger.Named("keys"),
	})
	if err != nil {
		return fmt.Errorf("key presser: %w", err)
	}

	det, err := detector.NewMediaPipeDetector(detector.DefaultConfig(), logger.Named("detector"))
	if err != nil {
		return fmt.Errorf("hand detector: %w", err)
	}

	var disp display.Display = display.Headless{}
	switch {
	case cfg.ShowWindow && cfg.Tray:
		logger.Warn("preview window is not available in tray mode")
	case cfg.ShowWindow:
		disp = display.NewWindow()
	}

	a := app.New(app.Config{
		Camera:   capture.NewCamera(cfg.CameraID),
		Detector: det,
		Display:  disp,
		Presser:  presser,
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("mudra started",
		zap.Int("camera", cfg.CameraID),
		zap.String("injector", cfg.Injector),
		zap.Bool("window", cfg.ShowWindow && !cfg.Tray),
		zap.Bool("tray", cfg.Tray),
	)

	if !cfg.Tray {
		return a.Run(ctx)
	}
	return runWithTray(ctx, a, logger)
}

// runWithTray runs the tray on the calling goroutine and the frame loop on
// another. Whichever stops first stops the other.
func runWithTray(ctx context.Context, a *app.App, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		logger.Info("gesture control toggled", zap.Bool("enabled", enabled))
	})
	t.OnQuit(cancel)
	a.OnCommand(func(cmd gesture.Command) {
		t.SetLastCommand(string(cmd))
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Run(ctx)
		t.Quit()
	}()
	go func() {
		<-ctx.Done()
		t.Quit()
	}()

	t.Run()
	cancel()
	return <-errCh
}
