package mot

// Config holds the tuning knobs of a tracking pass.
type Config struct {
	// Minimum combined score required to assign a detection to a live track
	// candidate. In [0, 1].
	MatchThreshold float64
	// Longest gap (in frame indices) a candidate tolerates without a match
	// before it is expired for matching purposes.
	MaxMissedFrames int
	// Tracks with fewer stored detections are dropped from the output.
	// Removes spurious single-frame false positives.
	MinTrackLength int
	// Algorithm used to assign detections to candidates within a frame.
	Algorithm MatchingAlgorithm
	// When true, candidates carry a Kalman bounding box filter and new
	// detections are matched against the predicted box instead of the last
	// observed one.
	PredictMotion bool
}

// DefaultConfig returns the default tracking configuration.
func DefaultConfig() Config {
	return Config{
		MatchThreshold:  0.2,
		MaxMissedFrames: 15,
		MinTrackLength:  2,
		Algorithm:       MatchingAlgorithmGreedy,
		PredictMotion:   false,
	}
}

// Tracker is a batch multi-object tracker over per-frame face detections.
// It converts independent, noisy per-frame bounding boxes into stable,
// identity-persistent tracks using greedy (or optionally Hungarian)
// frame-by-frame assignment. A Tracker holds no state between calls:
// every Process call is an independent, deterministic pass.
type Tracker struct {
	config Config
}

// NewTracker creates a new instance of Tracker with the specified configuration.
func NewTracker(config Config) *Tracker {
	return &Tracker{config: config}
}

// NewDefaultTracker creates a Tracker with default configuration.
func NewDefaultTracker() *Tracker {
	return &Tracker{config: DefaultConfig()}
}

// Process runs a single tracking pass over the complete per-video detection
// set and returns the finalized track set. Frame indices are processed in
// ascending order; only frames with at least one detection need be present.
// Empty input yields an empty track list. The confidence scores are used for
// matching priority only: callers are expected to threshold low-confidence
// detections upstream.
func (tracker *Tracker) Process(detectionsByFrame map[int][]Detection) ([]Track, error) {
	live := make([]*trackCandidate, 0)
	finished := make([]*trackCandidate, 0)
	nextID := 1

	for _, frameIndex := range sortedFrameIndices(detectionsByFrame) {
		detections := detectionsByFrame[frameIndex]
		if len(detections) == 0 {
			continue
		}

		// Retire candidates whose gap since last update is beyond recovery.
		// Finished tracks are appended once and never re-scanned.
		stillLive := make([]*trackCandidate, 0, len(live))
		for _, candidate := range live {
			if candidate.expired(frameIndex, tracker.config.MaxMissedFrames) {
				finished = append(finished, candidate)
			} else {
				stillLive = append(stillLive, candidate)
			}
		}
		live = stillLive

		// Advance time for all live candidates via Kalman filter
		if tracker.config.PredictMotion {
			for _, candidate := range live {
				candidate.predictNextPosition()
			}
		}

		// Best detections get first pick of a match
		ordered := orderByConfidence(detections)
		assignments := tracker.assign(ordered, detections, live)

		for position, orderedIndex := range ordered {
			detection := detections[orderedIndex]
			candidateIndex := assignments[position]
			if candidateIndex >= 0 {
				err := live[candidateIndex].update(detection)
				if err != nil {
					return nil, err
				}
				continue
			}
			// Unmatched detections spawn new candidates; ids are handed out
			// in frame-then-confidence order and never reused.
			live = append(live, newTrackCandidate(nextID, detection, tracker.config.PredictMotion))
			nextID++
		}
	}

	finished = append(finished, live...)
	return finalizeTracks(finished, tracker.config.MinTrackLength), nil
}
