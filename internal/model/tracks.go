package model

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/StianHa02/BlurThatGuyProject/mot"
)

// FrameBox is one stored track detection on the wire.
type FrameBox struct {
	FrameIndex int        `json:"frameIndex"`
	Box        [4]float64 `json:"box"`
	Score      float64    `json:"score"`
}

// TrackRecord is one finalized track.
type TrackRecord struct {
	ID         int        `json:"id"`
	StartFrame int        `json:"startFrame"`
	EndFrame   int        `json:"endFrame"`
	Frames     []FrameBox `json:"frames"`
}

// TrackFile is the output of one tracking run. RunID identifies the run;
// SampleRate is carried over from the detection file so frame queries can
// derive their tolerance without re-reading the detector configuration.
type TrackFile struct {
	RunID      string        `json:"runId"`
	VideoID    string        `json:"videoId,omitempty"`
	SampleRate int           `json:"sampleRate"`
	Tracks     []TrackRecord `json:"tracks"`
}

// NewTrackFile wraps a finalized track set for serialization.
func NewTrackFile(runID, videoID string, sampleRate int, tracks []mot.Track) *TrackFile {
	records := make([]TrackRecord, 0, len(tracks))
	for _, track := range tracks {
		frames := make([]FrameBox, 0, len(track.Frames))
		for _, d := range track.Frames {
			frames = append(frames, FrameBox{
				FrameIndex: d.FrameIndex,
				Box:        [4]float64{d.Box.X, d.Box.Y, d.Box.Width, d.Box.Height},
				Score:      d.Score,
			})
		}
		records = append(records, TrackRecord{
			ID:         track.ID,
			StartFrame: track.StartFrame(),
			EndFrame:   track.EndFrame(),
			Frames:     frames,
		})
	}
	return &TrackFile{
		RunID:      runID,
		VideoID:    videoID,
		SampleRate: sampleRate,
		Tracks:     records,
	}
}

// Find returns the record with the given track id.
func (f *TrackFile) Find(id int) (*TrackRecord, bool) {
	for i := range f.Tracks {
		if f.Tracks[i].ID == id {
			return &f.Tracks[i], true
		}
	}
	return nil, false
}

// ToTrack converts the record back into the library shape for frame queries.
func (r *TrackRecord) ToTrack() mot.Track {
	frames := make([]mot.Detection, 0, len(r.Frames))
	for _, f := range r.Frames {
		frames = append(frames, mot.NewDetection(
			f.FrameIndex,
			mot.NewRect(f.Box[0], f.Box[1], f.Box[2], f.Box[3]),
			f.Score,
		))
	}
	return mot.Track{ID: r.ID, Frames: frames}
}

// WriteTracks writes a track file to disk.
func WriteTracks(path string, f *TrackFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errors.Wrap(err, "can't encode track file")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "can't write track file %s", path)
	}
	return nil
}

// ReadTracks loads a track file from disk.
func ReadTracks(path string) (*TrackFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read track file %s", path)
	}
	trackFile := &TrackFile{}
	if err := json.Unmarshal(data, trackFile); err != nil {
		return nil, errors.Wrapf(err, "can't decode track file %s", path)
	}
	return trackFile, nil
}
