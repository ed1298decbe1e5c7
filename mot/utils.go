package mot

// Area ratio window for size compatibility between two boxes.
const (
	minAreaRatio = 0.5
	maxAreaRatio = 2.0
)

// IoU calculates Intersection over Union between two rectangles.
// 1.0 = identical boxes, 0.0 = disjoint.
func IoU(r1, r2 Rectangle) float64 {
	xA := maxFloat64(r1.X, r2.X)
	yA := maxFloat64(r1.Y, r2.Y)
	xB := minFloat64(r1.X+r1.Width, r2.X+r2.Width)
	yB := minFloat64(r1.Y+r1.Height, r2.Y+r2.Height)

	interArea := maxFloat64(0, xB-xA) * maxFloat64(0, yB-yA)
	if interArea == 0 {
		return 0.0
	}

	r1Area := r1.Area()
	r2Area := r2.Area()

	return interArea / (r1Area + r2Area - interArea)
}

// normalizedCenterDistance returns the Euclidean distance between two box
// centers divided by the average of the boxes' half-perimeters (width+height)/2.
// Scale invariant: ~0 for coincident boxes, ~1 when centers are one face apart.
func normalizedCenterDistance(r1, r2 Rectangle) float64 {
	dist := euclideanDistance(r1.Center(), r2.Center())
	scale := ((r1.Width+r1.Height)/2.0 + (r2.Width+r2.Height)/2.0) / 2.0
	if scale <= 0 {
		return 0.0
	}
	return dist / scale
}

// sizeCompatible reports whether the ratio of the two boxes' areas lies in
// the (minAreaRatio, maxAreaRatio) window.
func sizeCompatible(r1, r2 Rectangle) bool {
	a1 := r1.Area()
	a2 := r2.Area()
	if a1 <= 0 || a2 <= 0 {
		return false
	}
	ratio := a1 / a2
	return ratio > minAreaRatio && ratio < maxAreaRatio
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
