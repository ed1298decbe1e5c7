package config

import (
	"fmt"

	"github.com/StianHa02/BlurThatGuyProject/mot"
)

// TrackerConfig holds the tracking pass parameters.
type TrackerConfig struct {
	MatchThreshold  float64 `yaml:"matchThreshold"`
	MaxMissedFrames int     `yaml:"maxMissedFrames"`
	MinTrackLength  int     `yaml:"minTrackLength"`
	Algorithm       string  `yaml:"algorithm"`
	PredictMotion   bool    `yaml:"predictMotion"`
}

// QueryConfig holds frame query parameters.
type QueryConfig struct {
	// SampleRate is the detector sampling interval in frames. Used as the
	// fallback when a track file does not carry its own.
	SampleRate int `yaml:"sampleRate"`
}

type Config struct {
	Tracker TrackerConfig `yaml:"tracker"`
	Query   QueryConfig   `yaml:"query"`
}

func DefaultConfig() *Config {
	defaults := mot.DefaultConfig()
	return &Config{
		Tracker: TrackerConfig{
			MatchThreshold:  defaults.MatchThreshold,
			MaxMissedFrames: defaults.MaxMissedFrames,
			MinTrackLength:  defaults.MinTrackLength,
			Algorithm:       "greedy",
			PredictMotion:   defaults.PredictMotion,
		},
		Query: QueryConfig{
			SampleRate: 5,
		},
	}
}

// TrackerOptions maps the YAML tracker section onto the library configuration.
func (c *Config) TrackerOptions() (mot.Config, error) {
	options := mot.Config{
		MatchThreshold:  c.Tracker.MatchThreshold,
		MaxMissedFrames: c.Tracker.MaxMissedFrames,
		MinTrackLength:  c.Tracker.MinTrackLength,
		PredictMotion:   c.Tracker.PredictMotion,
	}
	switch c.Tracker.Algorithm {
	case "", "greedy":
		options.Algorithm = mot.MatchingAlgorithmGreedy
	case "hungarian":
		options.Algorithm = mot.MatchingAlgorithmHungarian
	default:
		return mot.Config{}, fmt.Errorf("unknown matching algorithm: %q", c.Tracker.Algorithm)
	}
	return options, nil
}
