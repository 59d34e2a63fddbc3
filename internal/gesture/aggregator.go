package gesture

// Gesture is the symbolic classification of a whole frame.
type Gesture int

const (
	None Gesture = iota
	BothHands
	LeftOnly
	RightOnly
)

// String returns the log name of the gesture.
func (g Gesture) String() string {
	switch g {
	case BothHands:
		return "both-hands"
	case LeftOnly:
		return "left-only"
	case RightOnly:
		return "right-only"
	default:
		return "none"
	}
}

// FrameState holds the per-frame flags gathered from every hand.
type FrameState struct {
	LeftUp   bool
	RightUp  bool
	BothFlag bool
}

// Evaluate classifies each hand and collects the frame flags.
//
// A raised hand marks the slot of the half it sits in. A hand that is not
// raised but sits in the center band marks BothFlag. Slots are positional, so
// two raised hands on the same side only set that side.
func Evaluate(poses []HandPose) FrameState {
	var s FrameState
	for _, p := range poses {
		if IsRaised(p) {
			if p.X < Midline {
				s.LeftUp = true
			} else {
				s.RightUp = true
			}
			continue
		}
		if IsCentered(p) {
			s.BothFlag = true
		}
	}
	return s
}

// Gesture resolves the flags in priority order; the first match wins.
func (s FrameState) Gesture() Gesture {
	switch {
	case (s.LeftUp && s.RightUp) || s.BothFlag:
		return BothHands
	case s.LeftUp:
		return LeftOnly
	case s.RightUp:
		return RightOnly
	default:
		return None
	}
}

// Aggregate reduces all hands seen in a frame to a single gesture.
func Aggregate(poses []HandPose) Gesture {
	return Evaluate(poses).Gesture()
}
