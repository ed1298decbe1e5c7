package mot

import (
	"math"
	"testing"
)

func sampleTrack() Track {
	return Track{
		ID: 1,
		Frames: []Detection{
			NewDetection(10, NewRect(0, 0, 100, 100), 0.8),
			NewDetection(20, NewRect(10, 20, 120, 140), 0.4),
		},
	}
}

func TestInterpolatorExactFrame(t *testing.T) {
	interp := NewInterpolator(5, 15)
	track := sampleTrack()

	detection, ok := interp.At(track, 10)
	if !ok {
		t.Fatal("Expected stored frame to be present")
	}
	if detection != track.Frames[0] {
		t.Errorf("Expected stored detection back, got %+v", detection)
	}
}

func TestInterpolatorMidpoint(t *testing.T) {
	interp := NewInterpolator(5, 15)

	detection, ok := interp.At(sampleTrack(), 15)
	if !ok {
		t.Fatal("Expected interpolated frame to be present")
	}
	if detection.FrameIndex != 15 {
		t.Errorf("Expected frame index 15, got %d", detection.FrameIndex)
	}
	wantBox := NewRect(5, 10, 110, 120)
	if detection.Box != wantBox {
		t.Errorf("Expected midpoint box %+v, got %+v", wantBox, detection.Box)
	}
	if math.Abs(detection.Score-0.6) > eps {
		t.Errorf("Expected midpoint score 0.6, got %v", detection.Score)
	}
}

func TestInterpolatorFractionalPosition(t *testing.T) {
	interp := NewInterpolator(5, 15)

	detection, ok := interp.At(sampleTrack(), 12)
	if !ok {
		t.Fatal("Expected interpolated frame to be present")
	}
	if math.Abs(detection.Box.X-2.0) > eps {
		t.Errorf("Expected X 2.0 at t=0.2, got %v", detection.Box.X)
	}
	if math.Abs(detection.Box.Height-108.0) > eps {
		t.Errorf("Expected Height 108.0 at t=0.2, got %v", detection.Box.Height)
	}
}

func TestInterpolatorOutOfRange(t *testing.T) {
	interp := NewInterpolator(5, 15)
	track := sampleTrack()

	// Tolerance is sampleRate*2 = 10 frames around [10, 20]
	if _, ok := interp.At(track, 500); ok {
		t.Error("Query far past the track should be absent")
	}
	if _, ok := interp.At(track, -100); ok {
		t.Error("Query far before the track should be absent")
	}
}

func TestInterpolatorNoExtrapolationPastEnds(t *testing.T) {
	interp := NewInterpolator(5, 15)
	track := sampleTrack()

	// Inside the tolerance window but before the first stored frame: the
	// zero-pad boundary policy returns absent rather than a ghost box.
	if _, ok := interp.At(track, 8); ok {
		t.Error("Query before the first detection should be absent")
	}
	if _, ok := interp.At(track, 22); ok {
		t.Error("Query after the last detection should be absent")
	}
}

func TestInterpolatorRealGap(t *testing.T) {
	// Two detections 19 empty frames apart with a gap tolerance of 15:
	// the face genuinely disappeared, only exact frames answer.
	interp := NewInterpolator(5, 15)
	track := Track{
		ID: 1,
		Frames: []Detection{
			NewDetection(0, NewRect(0, 0, 100, 100), 0.8),
			NewDetection(20, NewRect(300, 0, 100, 100), 0.8),
		},
	}

	if _, ok := interp.At(track, 10); ok {
		t.Error("Interpolating across a real gap should be absent")
	}
	if _, ok := interp.At(track, 0); !ok {
		t.Error("Exact frame before the gap should be present")
	}
	if _, ok := interp.At(track, 20); !ok {
		t.Error("Exact frame after the gap should be present")
	}
}

func TestInterpolatorGapAtTolerance(t *testing.T) {
	// Gap of exactly maxMissedFrames empty frames still interpolates
	interp := NewInterpolator(5, 15)
	track := Track{
		ID: 1,
		Frames: []Detection{
			NewDetection(0, NewRect(0, 0, 100, 100), 0.8),
			NewDetection(16, NewRect(32, 0, 100, 100), 0.8),
		},
	}

	detection, ok := interp.At(track, 8)
	if !ok {
		t.Fatal("Gap at the tolerance boundary should interpolate")
	}
	if math.Abs(detection.Box.X-16.0) > eps {
		t.Errorf("Expected X 16.0 at the midpoint, got %v", detection.Box.X)
	}
}

func TestInterpolatorEmptyTrack(t *testing.T) {
	interp := NewInterpolator(5, 15)

	if _, ok := interp.At(Track{ID: 1}, 0); ok {
		t.Error("Empty track should always be absent")
	}
}

func TestInterpolatorDeterminism(t *testing.T) {
	interp := NewInterpolator(5, 15)
	track := sampleTrack()

	first, okFirst := interp.At(track, 13)
	second, okSecond := interp.At(track, 13)
	if okFirst != okSecond || first != second {
		t.Error("Identical queries must yield identical results")
	}
}
