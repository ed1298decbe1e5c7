package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/StianHa02/BlurThatGuyProject/internal/model"
)

func TestRunTrackAndQuery(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "detections.json")
	output := filepath.Join(dir, "tracks.json")

	content := []byte(`{
  "videoId": "clip-1",
  "sampleRate": 5,
  "frames": [
    {"frameIndex": 0, "detections": [{"box": [10, 10, 50, 50], "score": 0.9}]},
    {"frameIndex": 5, "detections": [{"box": [12, 11, 50, 51], "score": 0.85}]},
    {"frameIndex": 10, "detections": [{"box": [14, 12, 50, 52], "score": 0.88}]}
  ]
}`)
	if err := os.WriteFile(input, content, 0644); err != nil {
		t.Fatalf("Could not write detections: %v", err)
	}

	if err := runTrack("", input, output); err != nil {
		t.Fatalf("runTrack failed: %v", err)
	}

	trackFile, err := model.ReadTracks(output)
	if err != nil {
		t.Fatalf("ReadTracks failed: %v", err)
	}
	if len(trackFile.Tracks) != 1 {
		t.Fatalf("Expected 1 track, got %d", len(trackFile.Tracks))
	}
	if trackFile.RunID == "" {
		t.Error("Expected a run id in the track file")
	}
	if trackFile.SampleRate != 5 {
		t.Errorf("Expected sampleRate carried over, got %d", trackFile.SampleRate)
	}

	// Query an unsampled frame between two detections
	resultPath := filepath.Join(dir, "query.json")
	resultFile, err := os.Create(resultPath)
	if err != nil {
		t.Fatalf("Could not create result file: %v", err)
	}
	if err := runQuery("", output, 1, 7, resultFile); err != nil {
		t.Fatalf("runQuery failed: %v", err)
	}
	resultFile.Close()

	data, err := os.ReadFile(resultPath)
	if err != nil {
		t.Fatalf("Could not read result: %v", err)
	}
	result := queryResult{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Could not decode result: %v", err)
	}
	if !result.Present {
		t.Fatal("Expected interpolated frame 7 to be present")
	}
	if result.Box == nil {
		t.Fatal("Expected a box in the result")
	}
	if result.Box[0] <= 12 || result.Box[0] >= 14 {
		t.Errorf("Expected interpolated X between 12 and 14, got %v", result.Box[0])
	}
}

func TestRunTrackMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := runTrack("", filepath.Join(dir, "missing.json"), filepath.Join(dir, "out.json"))
	if err == nil {
		t.Error("Expected error for missing input file")
	}
}
