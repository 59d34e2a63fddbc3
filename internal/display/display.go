// Package display renders the mirrored camera feed with the detected hand
// skeletons and reports when the user asks to quit.
package display

import (
	"image"
	"image/color"

	"github.com/ayusman/mudra/internal/detector"
	"gocv.io/x/gocv"
)

// Window settings.
const (
	WindowTitle = "Hand Gesture Control"
	// QuitKey closes the window and ends the frame loop.
	QuitKey = 'q'
	// waitMs is how long each frame waits for a key press.
	waitMs = 5
)

var (
	landmarkColor   = color.RGBA{R: 255, G: 0, B: 0, A: 0}
	connectionColor = color.RGBA{R: 255, G: 255, B: 255, A: 0}
)

// Display shows one frame per loop iteration.
type Display interface {
	// Show renders the frame and returns true when the user asked to quit.
	Show(frame *gocv.Mat, hands []detector.HandLandmarks) bool
	Close() error
}

// Window is a Display backed by an OpenCV HighGUI window.
// It must be used from the goroutine that created it.
type Window struct {
	window *gocv.Window
}

// NewWindow opens the preview window.
func NewWindow() *Window {
	return &Window{window: gocv.NewWindow(WindowTitle)}
}

// Show draws the hands onto the frame, shows it and polls the keyboard.
func (w *Window) Show(frame *gocv.Mat, hands []detector.HandLandmarks) bool {
	if frame == nil || frame.Empty() {
		return false
	}
	DrawHands(frame, hands)
	w.window.IMShow(*frame)
	return IsQuitKey(w.window.WaitKey(waitMs))
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.window.Close()
}

// IsQuitKey reports whether a WaitKey result is the quit key.
// WaitKey returns -1 when no key was pressed.
func IsQuitKey(key int) bool {
	return key >= 0 && key&0xFF == QuitKey
}

// Headless is a Display that renders nothing and never asks to quit.
type Headless struct{}

func (Headless) Show(*gocv.Mat, []detector.HandLandmarks) bool { return false }
func (Headless) Close() error                                  { return nil }

// DrawHands draws every landmark and the hand connections onto the frame.
// Keypoints that were not reported are skipped.
func DrawHands(frame *gocv.Mat, hands []detector.HandLandmarks) {
	width, height := frame.Cols(), frame.Rows()
	for i := range hands {
		hand := &hands[i]
		for _, c := range detector.HandConnections {
			a, b := hand.Points[c[0]], hand.Points[c[1]]
			if !a.Valid() || !b.Valid() {
				continue
			}
			gocv.Line(frame, ToPixel(a, width, height), ToPixel(b, width, height), connectionColor, 2)
		}
		for _, p := range hand.Points {
			if !p.Valid() {
				continue
			}
			gocv.Circle(frame, ToPixel(p, width, height), 4, landmarkColor, -1)
		}
	}
}

// ToPixel converts a normalized keypoint to pixel coordinates.
func ToPixel(p detector.Point3D, width, height int) image.Point {
	return image.Pt(int(p.X*float64(width)), int(p.Y*float64(height)))
}
