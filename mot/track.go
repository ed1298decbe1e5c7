package mot

import "sort"

// Track is a time-ordered sequence of detections believed to be the same
// physical face, with a stable integer id. Frames is non-empty and strictly
// increasing in FrameIndex. Tracks are read-only once produced; they belong
// to a single processed video and ids are never reused within a run.
type Track struct {
	ID     int
	Frames []Detection
}

// StartFrame returns the frame index of the first detection
func (track Track) StartFrame() int {
	return track.Frames[0].FrameIndex
}

// EndFrame returns the frame index of the last detection
func (track Track) EndFrame() int {
	return track.Frames[len(track.Frames)-1].FrameIndex
}

// Len returns the number of stored detections
func (track Track) Len() int {
	return len(track.Frames)
}

// finalizeTracks folds candidate state into immutable Track values, drops
// tracks shorter than minTrackLength and orders the result by descending
// length (longest-lived tracks first, ties by ascending id).
func finalizeTracks(candidates []*trackCandidate, minTrackLength int) []Track {
	tracks := make([]Track, 0, len(candidates))
	for _, candidate := range candidates {
		if len(candidate.frames) < minTrackLength {
			continue
		}
		tracks = append(tracks, Track{
			ID:     candidate.id,
			Frames: candidate.frames,
		})
	}
	sort.Slice(tracks, func(i, j int) bool {
		if len(tracks[i].Frames) == len(tracks[j].Frames) {
			return tracks[i].ID < tracks[j].ID
		}
		return len(tracks[i].Frames) > len(tracks[j].Frames)
	})
	return tracks
}
