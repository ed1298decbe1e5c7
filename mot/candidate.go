package mot

import (
	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/pkg/errors"
)

// trackCandidate is the mutable per-track bookkeeping kept while a pass over
// the detections is running: last matched box, last matched frame and the
// accumulated detection list. Finalized into an immutable Track when the pass
// completes.
type trackCandidate struct {
	id        int
	lastBox   Rectangle
	lastFrame int
	frames    []Detection

	// Optional 8-D bounding box Kalman filter [cx, cy, w, h, vx, vy, vw, vh].
	// Nil unless the tracker runs with motion prediction enabled.
	motion    *kalman_filter.KalmanBBox
	predicted Rectangle
}

func newTrackCandidate(id int, detection Detection, predictMotion bool) *trackCandidate {
	candidate := &trackCandidate{
		id:        id,
		lastBox:   detection.Box,
		lastFrame: detection.FrameIndex,
		frames:    []Detection{detection},
		predicted: detection.Box,
	}
	if predictMotion {
		center := detection.Box.Center()

		// Kalman filter props
		uCx := 1.0
		uCy := 1.0
		uW := 0.0
		uH := 0.0
		stdDevA := 2.0
		stdDevMCx := 0.1
		stdDevMCy := 0.1
		stdDevMW := 0.1
		stdDevMH := 0.1
		candidate.motion = kalman_filter.NewKalmanBBox(
			1.0, uCx, uCy, uW, uH,
			stdDevA, stdDevMCx, stdDevMCy, stdDevMW, stdDevMH,
			kalman_filter.WithStateBBox(center.X, center.Y, detection.Box.Width, detection.Box.Height),
		)
	}
	return candidate
}

// matchBox returns the box new detections are scored against: the Kalman
// prediction when motion prediction is on, the last matched box otherwise.
func (candidate *trackCandidate) matchBox() Rectangle {
	if candidate.motion != nil {
		return candidate.predicted
	}
	return candidate.lastBox
}

// predictNextPosition executes the Kalman filter prediction step
func (candidate *trackCandidate) predictNextPosition() {
	if candidate.motion == nil {
		return
	}
	candidate.motion.Predict()
	cx, cy, w, h := candidate.motion.GetState()
	candidate.predicted = Rectangle{
		X:      cx - w/2.0,
		Y:      cy - h/2.0,
		Width:  w,
		Height: h,
	}
}

// update appends the matched detection and advances the candidate state.
// The raw detection is stored untouched; only the matching box is smoothed
// when the motion model is active.
func (candidate *trackCandidate) update(detection Detection) error {
	candidate.frames = append(candidate.frames, detection)
	candidate.lastFrame = detection.FrameIndex
	candidate.lastBox = detection.Box

	if candidate.motion != nil {
		center := detection.Box.Center()
		err := candidate.motion.Update(center.X, center.Y, detection.Box.Width, detection.Box.Height)
		if err != nil {
			return errors.Wrapf(err, "Can't update motion model for track %d", candidate.id)
		}
		cx, cy, w, h := candidate.motion.GetState()
		candidate.lastBox = Rectangle{
			X:      cx - w/2.0,
			Y:      cy - h/2.0,
			Width:  w,
			Height: h,
		}
	}
	return nil
}

// expired reports whether the candidate can no longer be matched at the given
// frame: the gap since its last update exceeds maxMissedFrames.
func (candidate *trackCandidate) expired(frameIndex, maxMissedFrames int) bool {
	return frameIndex-candidate.lastFrame > maxMissedFrames+1
}
