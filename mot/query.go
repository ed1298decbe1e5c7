package mot

import "sort"

// Interpolator answers "where is this track at frame N" for arbitrary frame
// indices, including frames the detector never sampled. It is a pure lookup
// over an immutable track: no state, no I/O, safe for concurrent use from a
// rendering loop.
type Interpolator struct {
	// SampleRate is the interval (in frames) at which the detection source
	// was run. Queries further than SampleRate*2 outside the track's span
	// are rejected outright.
	SampleRate int
	// MaxMissedFrames bounds the widest real gap interpolation will bridge.
	// Wider gaps are treated as a genuine disappearance.
	MaxMissedFrames int
}

// NewInterpolator creates an Interpolator for the given detector sampling
// rate and gap tolerance.
func NewInterpolator(sampleRate, maxMissedFrames int) Interpolator {
	return Interpolator{
		SampleRate:      sampleRate,
		MaxMissedFrames: maxMissedFrames,
	}
}

// At returns the best-estimate detection for the track at the target frame
// index, or false when the track is absent there. Stored frames are returned
// exactly; frames between two stored detections are linearly interpolated
// component-wise (box and confidence). There is no extrapolation past either
// end of the track: the first and last stored boxes are not carried outward,
// which avoids ghost boxes lingering before a face appears or after it leaves.
func (interp Interpolator) At(track Track, frameIndex int) (Detection, bool) {
	if len(track.Frames) == 0 {
		return Detection{}, false
	}

	// Cheap rejection far outside the track's span
	tolerance := interp.SampleRate * 2
	if frameIndex < track.StartFrame()-tolerance || frameIndex > track.EndFrame()+tolerance {
		return Detection{}, false
	}

	// Frames are sorted by frame index, locate the bracketing detections
	idx := sort.Search(len(track.Frames), func(i int) bool {
		return track.Frames[i].FrameIndex >= frameIndex
	})
	if idx < len(track.Frames) && track.Frames[idx].FrameIndex == frameIndex {
		return track.Frames[idx], true
	}
	if idx == 0 || idx == len(track.Frames) {
		return Detection{}, false
	}

	prev := track.Frames[idx-1]
	next := track.Frames[idx]

	// A gap wider than the tracker tolerates is a real disappearance, not a
	// sampling artifact: only exact frames answer inside it.
	if next.FrameIndex-prev.FrameIndex-1 > interp.MaxMissedFrames {
		return Detection{}, false
	}

	t := float64(frameIndex-prev.FrameIndex) / float64(next.FrameIndex-prev.FrameIndex)
	return Detection{
		FrameIndex: frameIndex,
		Box: Rectangle{
			X:      lerp(prev.Box.X, next.Box.X, t),
			Y:      lerp(prev.Box.Y, next.Box.Y, t),
			Width:  lerp(prev.Box.Width, next.Box.Width, t),
			Height: lerp(prev.Box.Height, next.Box.Height, t),
		},
		Score: lerp(prev.Score, next.Score, t),
	}, true
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
