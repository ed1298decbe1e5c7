package mot

import (
	"sort"

	"github.com/arthurkushman/go-hungarian"
)

// MatchingAlgorithm is for algorithm type for matching detections to tracks
type MatchingAlgorithm uint16

const (
	// MatchingAlgorithmGreedy assigns detections best-score-first in
	// confidence order. Default: defines the contract's tie-break semantics.
	MatchingAlgorithmGreedy MatchingAlgorithm = iota
	// MatchingAlgorithmHungarian uses the Hungarian algorithm (Kuhn-Munkres)
	// for optimal per-frame assignment over the same score matrix.
	MatchingAlgorithmHungarian

	// Fallback matching limits: rescue a low-IoU pair only when the centers
	// are closer than maxFallbackCenterDist half-perimeters and the box
	// sizes are compatible.
	maxFallbackCenterDist = 2.0
	fallbackBase          = 0.5
	fallbackSlope         = 0.2
)

// matchScore computes the combined compatibility score between a detection
// box and a candidate's match box. Pure IoU when it clears the threshold;
// otherwise a center-distance fallback rescues fast-moving or rapidly
// resizing faces that IoU alone would miss.
func matchScore(detection, candidate Rectangle, matchThreshold float64) float64 {
	iouValue := IoU(detection, candidate)
	if iouValue >= matchThreshold {
		return iouValue
	}
	centerDist := normalizedCenterDistance(detection, candidate)
	if centerDist < maxFallbackCenterDist && sizeCompatible(detection, candidate) {
		return maxFloat64(iouValue, fallbackBase-fallbackSlope*centerDist)
	}
	return iouValue
}

// assign maps each position of the confidence-ordered detection list to the
// index of the live candidate it matched, or -1 when the detection should
// spawn a new track. Each candidate receives at most one detection.
func (tracker *Tracker) assign(ordered []int, detections []Detection, live []*trackCandidate) []int {
	switch tracker.config.Algorithm {
	case MatchingAlgorithmHungarian:
		return tracker.assignHungarian(ordered, detections, live)
	default:
		return tracker.assignGreedy(ordered, detections, live)
	}
}

// assignGreedy walks detections best-confidence-first; each one takes the
// unmatched candidate with the highest combined score, ties broken by the
// first-encountered (oldest) candidate.
func (tracker *Tracker) assignGreedy(ordered []int, detections []Detection, live []*trackCandidate) []int {
	assignments := make([]int, len(ordered))
	taken := make([]bool, len(live))
	for position, orderedIndex := range ordered {
		detection := detections[orderedIndex]
		bestCandidate := -1
		bestScore := -1.0
		for candidateIndex, candidate := range live {
			if taken[candidateIndex] {
				continue
			}
			score := matchScore(detection.Box, candidate.matchBox(), tracker.config.MatchThreshold)
			if score > bestScore {
				bestScore = score
				bestCandidate = candidateIndex
			}
		}
		if bestCandidate >= 0 && bestScore >= tracker.config.MatchThreshold {
			assignments[position] = bestCandidate
			taken[bestCandidate] = true
		} else {
			assignments[position] = -1
		}
	}
	return assignments
}

// assignHungarian solves the optimal one-to-one assignment over the score
// matrix. The matrix is padded to square with zero scores; dummy pairs and
// pairs below the match threshold are discarded afterwards.
func (tracker *Tracker) assignHungarian(ordered []int, detections []Detection, live []*trackCandidate) []int {
	assignments := make([]int, len(ordered))
	for position := range assignments {
		assignments[position] = -1
	}
	if len(live) == 0 || len(ordered) == 0 {
		return assignments
	}

	numCandidates := len(live)
	numDetections := len(ordered)
	paddedSize := maxInt(numCandidates, numDetections)
	scoreMatrix := make([][]float64, paddedSize)
	for i := 0; i < paddedSize; i++ {
		scoreMatrix[i] = make([]float64, paddedSize)
	}
	for i := 0; i < numCandidates; i++ {
		candidateBox := live[i].matchBox()
		for j := 0; j < numDetections; j++ {
			detection := detections[ordered[j]]
			scoreMatrix[i][j] = matchScore(detection.Box, candidateBox, tracker.config.MatchThreshold)
		}
	}

	solved := hungarian.SolveMax(scoreMatrix)

	// The solver returns a map; collect and order matches by detection
	// position so the result is deterministic.
	type matchPair struct {
		candidateIndex int
		position       int
	}
	matches := make([]matchPair, 0, numDetections)
	for candidateIndex, row := range solved {
		for position := range row {
			if candidateIndex < numCandidates && position < numDetections {
				matches = append(matches, matchPair{candidateIndex: candidateIndex, position: position})
			}
			break
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].position < matches[j].position })

	for _, match := range matches {
		if scoreMatrix[match.candidateIndex][match.position] >= tracker.config.MatchThreshold {
			assignments[match.position] = match.candidateIndex
		}
	}
	return assignments
}
