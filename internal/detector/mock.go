package detector

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	mu       sync.Mutex
	hands    []HandLandmarks
	sequence [][]HandLandmarks
	err      error
	calls    int
	closed   bool
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by every Detect call.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hands = hands
}

// SetSequence sets per-call results. Call n returns sequence[n]; once the
// sequence is used up Detect falls back to the hands from SetHands.
func (m *MockDetector) SetSequence(sequence [][]HandLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sequence = sequence
	m.calls = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := m.calls
	m.calls++

	if m.err != nil {
		return nil, m.err
	}
	if call < len(m.sequence) {
		return m.sequence[call], nil
	}
	return m.hands, nil
}

// Calls returns how many times Detect has been called.
func (m *MockDetector) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Close marks the detector closed.
func (m *MockDetector) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockDetector) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// HandAt returns an open-palm hand whose wrist sits at (x, y) in normalized
// frame coordinates. The fingers extend upward from the wrist.
func HandAt(x, y float64) HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	// Offsets from the wrist, Y decreases going up.
	offsets := [NumLandmarks]Point3D{
		Wrist:     {X: 0, Y: 0},
		ThumbCMC:  {X: 0.05, Y: -0.05, Z: 0.02},
		ThumbMCP:  {X: 0.12, Y: -0.10, Z: 0.03},
		ThumbIP:   {X: 0.18, Y: -0.15, Z: 0.03},
		ThumbTip:  {X: 0.23, Y: -0.20, Z: 0.03},
		IndexMCP:  {X: 0.05, Y: -0.12},
		IndexPIP:  {X: 0.07, Y: -0.25},
		IndexDIP:  {X: 0.08, Y: -0.35},
		IndexTip:  {X: 0.08, Y: -0.45},
		MiddleMCP: {X: 0, Y: -0.14},
		MiddlePIP: {X: 0, Y: -0.28},
		MiddleDIP: {X: 0, Y: -0.40},
		MiddleTip: {X: 0, Y: -0.52},
		RingMCP:   {X: -0.05, Y: -0.12},
		RingPIP:   {X: -0.07, Y: -0.25},
		RingDIP:   {X: -0.08, Y: -0.35},
		RingTip:   {X: -0.08, Y: -0.45},
		PinkyMCP:  {X: -0.10, Y: -0.10},
		PinkyPIP:  {X: -0.13, Y: -0.20},
		PinkyDIP:  {X: -0.15, Y: -0.30},
		PinkyTip:  {X: -0.16, Y: -0.38},
	}

	for i, o := range offsets {
		landmarks.Points[i] = Point3D{X: x + o.X, Y: y + o.Y, Z: o.Z}
	}

	return landmarks
}

// RaisedLeftHand returns a hand raised in the left half of the mirrored frame.
func RaisedLeftHand() HandLandmarks { return HandAt(0.3, 0.3) }

// RaisedRightHand returns a hand raised in the right half of the mirrored frame.
func RaisedRightHand() HandLandmarks { return HandAt(0.7, 0.3) }

// LoweredCenteredHand returns a hand held low in the middle of the frame.
func LoweredCenteredHand() HandLandmarks { return HandAt(0.5, 0.9) }

// HandWithoutWrist returns a hand whose wrist keypoint was not reported.
func HandWithoutWrist() HandLandmarks {
	h := HandAt(0.3, 0.3)
	h.Points[Wrist] = missingPoint()
	return h
}
