package replay

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/ghostreplay/log"
	"github.com/mpapenbr/ghostreplay/pkg/config"
)

func NewReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "commands to replay recorded ghost karts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger()
		},
	}

	cmd.PersistentFlags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	cmd.PersistentFlags().StringVar(&config.LogFormat,
		"log-format",
		"text",
		"controls the log output format (json, text)")

	cmd.AddCommand(NewPlayCmd())
	cmd.AddCommand(NewGenerateCmd())
	return cmd
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func setupLogger() {
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.DebugLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	log.ResetDefault(logger)
}
