package mot

import "sort"

// Detection is a single face observation: one bounding box with a detector
// confidence score at one frame. Produced once by the detection source and
// never mutated by the tracker.
type Detection struct {
	FrameIndex int
	Box        Rectangle
	Score      float64
}

// NewDetection creates a detection for the given frame
func NewDetection(frameIndex int, box Rectangle, score float64) Detection {
	return Detection{
		FrameIndex: frameIndex,
		Box:        box,
		Score:      score,
	}
}

// sortedFrameIndices returns the frame indices present in the detection map
// in ascending order.
func sortedFrameIndices(detectionsByFrame map[int][]Detection) []int {
	frames := make([]int, 0, len(detectionsByFrame))
	for frameIndex := range detectionsByFrame {
		frames = append(frames, frameIndex)
	}
	sort.Ints(frames)
	return frames
}
