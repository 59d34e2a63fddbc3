// Package gesture turns per-frame hand landmarks into media commands.
//
// The package has three stages: a classifier that answers yes/no questions
// about a single hand, an aggregator that reduces every hand in a frame to one
// Gesture, and a Dispatcher that maps the Gesture to a Command and enforces a
// global cooldown between fired commands.
package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// Classifier constants. Coordinates are normalized to [0,1] with the origin at
// the top-left corner, so a raised hand has a smaller Y.
const (
	// RaiseThreshold is the wrist Y below which a hand counts as raised.
	RaiseThreshold = 0.5
	// CenterBand is the half-width of the band around the vertical midline.
	CenterBand = 0.1
	// Midline splits the frame into the left and right slots.
	Midline = 0.5
)

// HandPose is the wrist position of one hand in one frame.
type HandPose struct {
	X     float64
	Y     float64
	Valid bool
}

// PoseFromLandmarks extracts the wrist keypoint from a detected hand.
// A hand without a finite wrist yields an invalid pose.
func PoseFromLandmarks(h detector.HandLandmarks) HandPose {
	wrist, ok := h.Wrist()
	if !ok {
		return HandPose{}
	}
	return HandPose{X: wrist.X, Y: wrist.Y, Valid: true}
}

// PosesFromLandmarks converts every detected hand in a frame.
func PosesFromLandmarks(hands []detector.HandLandmarks) []HandPose {
	poses := make([]HandPose, len(hands))
	for i, h := range hands {
		poses[i] = PoseFromLandmarks(h)
	}
	return poses
}

// IsRaised reports whether the wrist is in the upper half of the frame.
func IsRaised(p HandPose) bool {
	return p.Valid && p.Y < RaiseThreshold
}

// IsCentered reports whether the wrist is inside the band around the midline,
// which approximates a hand held in front of the face.
func IsCentered(p HandPose) bool {
	return p.Valid && math.Abs(p.X-Midline) < CenterBand
}
