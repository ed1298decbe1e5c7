package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/StianHa02/BlurThatGuyProject/internal/config"
	"github.com/StianHa02/BlurThatGuyProject/internal/model"
	"github.com/StianHa02/BlurThatGuyProject/mot"
	"github.com/StianHa02/BlurThatGuyProject/pkg/log"
)

var (
	trackInput  string
	trackOutput string
)

var trackCommand = &cobra.Command{
	Use:   "track",
	Short: "Build face tracks from per-frame detections",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrack(configFile, trackInput, trackOutput)
	},
}

func runTrack(configPath, input, output string) error {
	logger := log.NewLogger()

	conf, err := config.InitConfig(configPath)
	if err != nil {
		return err
	}
	options, err := conf.TrackerOptions()
	if err != nil {
		return err
	}

	detFile, err := model.ReadDetections(input)
	if err != nil {
		return err
	}

	runID := uuid.New()
	logger.Infof("run %s: tracking %d sampled frames (threshold=%.2f maxMissed=%d minLen=%d)",
		runID, len(detFile.Frames), options.MatchThreshold, options.MaxMissedFrames, options.MinTrackLength)

	tracker := mot.NewTracker(options)
	tracks, err := tracker.Process(detFile.ByFrame())
	if err != nil {
		return err
	}

	trackFile := model.NewTrackFile(runID.String(), detFile.VideoID, detFile.SampleRate, tracks)
	if err := model.WriteTracks(output, trackFile); err != nil {
		return err
	}

	logger.Infof("run %s: wrote %d tracks to %s", runID, len(tracks), output)
	return nil
}

func init() {
	trackCommand.Flags().StringVarP(&trackInput, "input", "i", "", "Path to detections JSON file")
	trackCommand.Flags().StringVarP(&trackOutput, "output", "o", "tracks.json", "Path to output tracks JSON file")
	trackCommand.MarkFlagRequired("input")
}
