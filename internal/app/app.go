// Package app runs the frame loop that connects the camera, the hand detector,
// the gesture core and the key presser.
package app

import (
	"sync"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/display"
	"github.com/ayusman/mudra/internal/gesture"
	"go.uber.org/zap"
)

// Config holds the collaborators the App drives.
type Config struct {
	Camera   capture.Camera
	Detector detector.Detector
	Display  display.Display
	Presser  gesture.Presser
	Clock    gesture.Clock
	Logger   *zap.Logger
}

// App is the frame loop driver. It owns the dispatcher, and with it the only
// state that lives longer than a frame.
type App struct {
	camera     capture.Camera
	detector   detector.Detector
	display    display.Display
	clock      gesture.Clock
	dispatcher *gesture.Dispatcher
	metrics    *Metrics
	logger     *zap.Logger

	mu        sync.RWMutex
	enabled   bool
	callbacks []func(gesture.Command)
}

// New creates an App. Detection starts enabled; a nil Display means headless
// and a nil Clock means the system clock.
func New(config Config) *App {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	disp := config.Display
	if disp == nil {
		disp = display.Headless{}
	}
	clock := config.Clock
	if clock == nil {
		clock = gesture.SystemClock()
	}

	return &App{
		camera:     config.Camera,
		detector:   config.Detector,
		display:    disp,
		clock:      clock,
		dispatcher: gesture.NewDispatcher(config.Presser, logger.Named("dispatch")),
		metrics:    NewMetrics(),
		logger:     logger,
		enabled:    true,
	}
}

// SetEnabled pauses or resumes gesture detection. While paused every frame is
// treated as having no hands.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// OnCommand registers a callback run after every fired command.
// Callbacks run on the frame loop goroutine.
func (a *App) OnCommand(fn func(cmd gesture.Command)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.callbacks = append(a.callbacks, fn)
}

func (a *App) notify(cmd gesture.Command) {
	a.mu.RLock()
	callbacks := append([]func(gesture.Command){}, a.callbacks...)
	a.mu.RUnlock()

	for _, fn := range callbacks {
		fn(cmd)
	}
}

// Dispatcher returns the command dispatcher.
func (a *App) Dispatcher() *gesture.Dispatcher {
	return a.dispatcher
}

// Metrics returns the run counters.
func (a *App) Metrics() *Metrics {
	return a.metrics
}
