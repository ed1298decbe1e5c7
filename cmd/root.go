package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/StianHa02/BlurThatGuyProject/pkg/log"
)

var (
	logLevel   string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "blurtrack",
	Short: "blurtrack builds face tracks for video blurring",
	Long: `blurtrack turns per-frame face detections into stable, identity-persistent
tracks and answers per-frame box queries for preview and export.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.InitLog(logLevel)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (defaults apply when empty)")

	rootCmd.AddCommand(trackCommand)
	rootCmd.AddCommand(queryCommand)
}
