package display

import (
	"image"
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

func TestIsQuitKey(t *testing.T) {
	tests := []struct {
		name string
		key  int
		want bool
	}{
		{"no key", -1, false},
		{"q", 'q', true},
		{"q with modifier bits", 0x100000 | 'q', true},
		{"Q", 'Q', false},
		{"escape", 27, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsQuitKey(tt.key))
		})
	}
}

func TestToPixel(t *testing.T) {
	assert.Equal(t, image.Pt(320, 240), ToPixel(detector.Point3D{X: 0.5, Y: 0.5}, 640, 480))
	assert.Equal(t, image.Pt(0, 0), ToPixel(detector.Point3D{}, 640, 480))
	assert.Equal(t, image.Pt(640, 480), ToPixel(detector.Point3D{X: 1, Y: 1}, 640, 480))
}

func TestDrawHands(t *testing.T) {
	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	DrawHands(&frame, []detector.HandLandmarks{detector.RaisedLeftHand()})

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	assert.Greater(t, gocv.CountNonZero(gray), 0)
}

func TestDrawHands_SkipsMissingPoints(t *testing.T) {
	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	hand := detector.HandLandmarks{}
	for i := range hand.Points {
		hand.Points[i] = detector.Point3D{X: math.NaN(), Y: math.NaN()}
	}

	assert.NotPanics(t, func() { DrawHands(&frame, []detector.HandLandmarks{hand}) })

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	assert.Equal(t, 0, gocv.CountNonZero(gray))
}

func TestHeadless(t *testing.T) {
	var d Display = Headless{}

	assert.False(t, d.Show(nil, nil))
	assert.NoError(t, d.Close())
}
