package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		poses []HandPose
		want  Gesture
	}{
		{"no hands", nil, None},
		{"raised left", []HandPose{pose(0.3, 0.3)}, LeftOnly},
		{"raised right", []HandPose{pose(0.7, 0.3)}, RightOnly},
		{"raised at midline counts as right", []HandPose{pose(0.5, 0.3)}, RightOnly},
		{"raised left and right", []HandPose{pose(0.3, 0.3), pose(0.7, 0.2)}, BothHands},
		{"raised right then left", []HandPose{pose(0.7, 0.2), pose(0.3, 0.3)}, BothHands},
		{"lowered centered hand", []HandPose{pose(0.5, 0.9)}, BothHands},
		{"lowered centered beats raised left", []HandPose{pose(0.3, 0.3), pose(0.55, 0.8)}, BothHands},
		{"lowered off-center hand", []HandPose{pose(0.2, 0.9)}, None},
		{"two lowered off-center hands", []HandPose{pose(0.2, 0.9), pose(0.8, 0.7)}, None},
		{"crossed hands both left", []HandPose{pose(0.2, 0.3), pose(0.4, 0.1)}, LeftOnly},
		{"crossed hands both right", []HandPose{pose(0.6, 0.3), pose(0.9, 0.1)}, RightOnly},
		{"missing wrist ignored", []HandPose{{X: 0.5, Y: 0.9}}, None},
		{"missing wrist next to raised left", []HandPose{{}, pose(0.3, 0.3)}, LeftOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.poses))
		})
	}
}

func TestEvaluate_Flags(t *testing.T) {
	t.Run("raised centered hand sets slot not both flag", func(t *testing.T) {
		s := Evaluate([]HandPose{pose(0.45, 0.2)})

		assert.Equal(t, FrameState{LeftUp: true}, s)
	})

	t.Run("lowered centered hand sets both flag only", func(t *testing.T) {
		s := Evaluate([]HandPose{pose(0.5, 0.9)})

		assert.Equal(t, FrameState{BothFlag: true}, s)
	})

	t.Run("two raised hands set both slots", func(t *testing.T) {
		s := Evaluate([]HandPose{pose(0.3, 0.3), pose(0.7, 0.3)})

		assert.Equal(t, FrameState{LeftUp: true, RightUp: true}, s)
	})
}

func TestFrameState_GesturePriority(t *testing.T) {
	tests := []struct {
		state FrameState
		want  Gesture
	}{
		{FrameState{}, None},
		{FrameState{LeftUp: true}, LeftOnly},
		{FrameState{RightUp: true}, RightOnly},
		{FrameState{LeftUp: true, RightUp: true}, BothHands},
		{FrameState{BothFlag: true}, BothHands},
		{FrameState{LeftUp: true, BothFlag: true}, BothHands},
		{FrameState{RightUp: true, BothFlag: true}, BothHands},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.Gesture(), "%+v", tt.state)
	}
}

func TestGesture_String(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "both-hands", BothHands.String())
	assert.Equal(t, "left-only", LeftOnly.String())
	assert.Equal(t, "right-only", RightOnly.String())
}
