package detector

import (
	"errors"
	"strconv"

	"gocv.io/x/gocv"
)

// ErrScriptNotFound is returned when the hand tracking service script cannot be located.
var ErrScriptNotFound = errors.New("hands_service.py not found")

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes a mirrored video frame and returns detected hand landmarks.
	// Returns an empty slice if no hands are detected.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect (default: 2).
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns the settings the controller was tuned with:
// two hands, 0.5 detection and tracking confidence.
func DefaultConfig() Config {
	return Config{
		MaxHands:        2,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}

// args renders the config as command line flags for the service script.
func (c Config) args() []string {
	return []string{
		"--max-hands", strconv.Itoa(c.MaxHands),
		"--min-detection", strconv.FormatFloat(c.MinConfidence, 'f', -1, 64),
		"--min-tracking", strconv.FormatFloat(c.MinTrackingConf, 'f', -1, 64),
	}
}
