package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"go.uber.org/zap"
)

// Run is the frame loop. It returns nil when ctx is cancelled or the user
// presses the quit key, and an error when a collaborator fails: the camera
// cannot deliver a frame, the detector fails or a key press cannot be
// injected. Camera, detector and display are released before Run returns.
//
// For each frame:
// 1. Read and mirror the frame
// 2. Detect hands (skipped while paused)
// 3. Aggregate the hands into one gesture
// 4. Dispatch the gesture with the current time
// 5. Show the frame and check for the quit key
func (a *App) Run(ctx context.Context) error {
	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer a.release()

	started := time.Now()
	a.logger.Info("frame loop started")
	defer func() {
		a.logger.Info("frame loop stopped",
			append(a.metrics.Summary(), zap.Duration("uptime", time.Since(started)))...)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		quit, err := a.step(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if quit {
			a.logger.Info("quit key pressed")
			return nil
		}
	}
}

// step processes a single frame and reports whether the user asked to quit.
func (a *App) step(ctx context.Context) (bool, error) {
	frame, err := a.camera.ReadFrame()
	if err != nil {
		return false, fmt.Errorf("read frame: %w", err)
	}
	defer frame.Close()

	capture.Mirror(frame)

	var hands []detector.HandLandmarks
	if a.IsEnabled() {
		hands, err = a.detector.Detect(frame)
		if err != nil {
			return false, fmt.Errorf("detect hands: %w", err)
		}
	}

	if _, _, err := a.ProcessFrame(ctx, hands, a.clock.Now()); err != nil {
		return false, err
	}

	return a.display.Show(frame, hands), nil
}

// ProcessFrame runs the gesture core on one frame's hands: the aggregator
// once, then the dispatcher once with its result.
func (a *App) ProcessFrame(ctx context.Context, hands []detector.HandLandmarks, now time.Time) (gesture.Gesture, gesture.Outcome, error) {
	g := gesture.Aggregate(gesture.PosesFromLandmarks(hands))

	a.metrics.Frames.Inc()
	a.metrics.Gestures.WithLabelValues(g.String()).Inc()
	if len(hands) > 0 {
		a.logger.Debug(frameMessage(g), zap.Int("hands", len(hands)), zap.Stringer("gesture", g))
	}

	outcome, err := a.dispatcher.Dispatch(ctx, g, now)
	if cmd, ok := gesture.CommandFor(g); ok {
		a.metrics.Dispatches.WithLabelValues(string(cmd), outcome.String()).Inc()
	}
	if err != nil {
		return g, outcome, err
	}

	if outcome == gesture.OutcomeFired {
		cmd, _ := gesture.CommandFor(g)
		a.notify(cmd)
	}
	return g, outcome, nil
}

func frameMessage(g gesture.Gesture) string {
	switch g {
	case gesture.BothHands:
		return "both hands up detected"
	case gesture.LeftOnly:
		return "left hand up detected"
	case gesture.RightOnly:
		return "right hand up detected"
	default:
		return "no significant hand gesture detected"
	}
}

// release closes the collaborators, logging rather than returning errors so
// the loop's own result is kept.
func (a *App) release() {
	if err := a.camera.Close(); err != nil {
		a.logger.Warn("close camera", zap.Error(err))
	}
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			a.logger.Warn("close detector", zap.Error(err))
		}
	}
	if err := a.display.Close(); err != nil {
		a.logger.Warn("close display", zap.Error(err))
	}
}
