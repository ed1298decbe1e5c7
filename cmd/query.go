package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/StianHa02/BlurThatGuyProject/internal/config"
	"github.com/StianHa02/BlurThatGuyProject/internal/model"
	"github.com/StianHa02/BlurThatGuyProject/mot"
)

var (
	queryTracksPath string
	queryTrackID    int
	queryFrame      int
)

// queryResult is the shell-facing answer for a single frame query.
type queryResult struct {
	Present bool        `json:"present"`
	TrackID int         `json:"trackId"`
	Frame   int         `json:"frame"`
	Box     *[4]float64 `json:"box,omitempty"`
	Score   float64     `json:"score,omitempty"`
}

var queryCommand = &cobra.Command{
	Use:   "query",
	Short: "Estimate a track's bounding box at a frame",
	Long: `Runs the frame interpolator for one track and one frame index and prints the
estimated box as JSON. Frames between detector samples are interpolated;
frames outside the track (or across a real gap) report present=false.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(configFile, queryTracksPath, queryTrackID, queryFrame, os.Stdout)
	},
}

func runQuery(configPath, tracksPath string, trackID, frame int, out *os.File) error {
	conf, err := config.InitConfig(configPath)
	if err != nil {
		return err
	}

	trackFile, err := model.ReadTracks(tracksPath)
	if err != nil {
		return err
	}
	record, found := trackFile.Find(trackID)
	if !found {
		return errors.Errorf("no track with id %d in %s", trackID, tracksPath)
	}

	sampleRate := trackFile.SampleRate
	if sampleRate == 0 {
		sampleRate = conf.Query.SampleRate
	}
	interp := mot.NewInterpolator(sampleRate, conf.Tracker.MaxMissedFrames)

	result := queryResult{TrackID: trackID, Frame: frame}
	if detection, ok := interp.At(record.ToTrack(), frame); ok {
		result.Present = true
		result.Box = &[4]float64{detection.Box.X, detection.Box.Y, detection.Box.Width, detection.Box.Height}
		result.Score = detection.Score
	}

	data, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "can't encode query result")
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func init() {
	queryCommand.Flags().StringVarP(&queryTracksPath, "tracks", "t", "tracks.json", "Path to tracks JSON file")
	queryCommand.Flags().IntVar(&queryTrackID, "track-id", 0, "Track id to query")
	queryCommand.Flags().IntVar(&queryFrame, "frame", 0, "Frame index to query")
	queryCommand.MarkFlagRequired("track-id")
	queryCommand.MarkFlagRequired("frame")
}
