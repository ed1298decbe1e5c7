package model

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/StianHa02/BlurThatGuyProject/mot"
)

// BoxScore is one detection on the wire: [x, y, width, height] in source
// pixel coordinates plus the detector confidence.
type BoxScore struct {
	Box   [4]float64 `json:"box"`
	Score float64    `json:"score"`
}

// FrameDetections groups the detections of one sampled frame.
type FrameDetections struct {
	FrameIndex int        `json:"frameIndex"`
	Detections []BoxScore `json:"detections"`
}

// DetectionFile is the detector output for one processed video. Only frames
// with at least one detection need to appear.
type DetectionFile struct {
	VideoID    string            `json:"videoId,omitempty"`
	SampleRate int               `json:"sampleRate"`
	Frames     []FrameDetections `json:"frames"`
}

// ReadDetections loads a detection file from disk.
func ReadDetections(path string) (*DetectionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read detections file %s", path)
	}
	detFile := &DetectionFile{}
	if err := json.Unmarshal(data, detFile); err != nil {
		return nil, errors.Wrapf(err, "can't decode detections file %s", path)
	}
	return detFile, nil
}

// ByFrame converts the file into the tracker's input shape.
func (f *DetectionFile) ByFrame() map[int][]mot.Detection {
	byFrame := make(map[int][]mot.Detection, len(f.Frames))
	for _, frame := range f.Frames {
		detections := make([]mot.Detection, 0, len(frame.Detections))
		for _, d := range frame.Detections {
			detections = append(detections, mot.NewDetection(
				frame.FrameIndex,
				mot.NewRect(d.Box[0], d.Box[1], d.Box[2], d.Box[3]),
				d.Score,
			))
		}
		byFrame[frame.FrameIndex] = append(byFrame[frame.FrameIndex], detections...)
	}
	return byFrame
}
