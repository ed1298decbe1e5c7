package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/StianHa02/BlurThatGuyProject/mot"
)

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()

	if conf.Tracker.MatchThreshold != 0.2 {
		t.Errorf("Expected default matchThreshold 0.2, got %v", conf.Tracker.MatchThreshold)
	}
	if conf.Tracker.MaxMissedFrames != 15 {
		t.Errorf("Expected default maxMissedFrames 15, got %d", conf.Tracker.MaxMissedFrames)
	}
	if conf.Tracker.Algorithm != "greedy" {
		t.Errorf("Expected default algorithm greedy, got %q", conf.Tracker.Algorithm)
	}
	if conf.Query.SampleRate != 5 {
		t.Errorf("Expected default sampleRate 5, got %d", conf.Query.SampleRate)
	}
}

func TestInitConfigEmptyPathUsesDefaults(t *testing.T) {
	conf, err := InitConfig("")
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if conf.Tracker.MinTrackLength != 2 {
		t.Errorf("Expected default minTrackLength 2, got %d", conf.Tracker.MinTrackLength)
	}
}

func TestInitConfigOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`tracker:
  matchThreshold: 0.1
  maxMissedFrames: 20
  minTrackLength: 3
  algorithm: hungarian
query:
  sampleRate: 10
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Could not write config: %v", err)
	}

	conf, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if conf.Tracker.MatchThreshold != 0.1 {
		t.Errorf("Expected matchThreshold 0.1, got %v", conf.Tracker.MatchThreshold)
	}
	if conf.Tracker.MaxMissedFrames != 20 {
		t.Errorf("Expected maxMissedFrames 20, got %d", conf.Tracker.MaxMissedFrames)
	}
	if conf.Query.SampleRate != 10 {
		t.Errorf("Expected sampleRate 10, got %d", conf.Query.SampleRate)
	}

	options, err := conf.TrackerOptions()
	if err != nil {
		t.Fatalf("TrackerOptions failed: %v", err)
	}
	if options.Algorithm != mot.MatchingAlgorithmHungarian {
		t.Errorf("Expected hungarian matching, got %d", options.Algorithm)
	}
}

func TestTrackerOptionsRejectsUnknownAlgorithm(t *testing.T) {
	conf := DefaultConfig()
	conf.Tracker.Algorithm = "kalman-hungarian-plus"

	if _, err := conf.TrackerOptions(); err == nil {
		t.Error("Expected error for unknown algorithm")
	}
}
