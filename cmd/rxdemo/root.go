package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/subject"
)

var (
	flagLogLevel string
	flagLogFile  string
	flagKeys     string

	logger   = zerolog.Nop()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:                "rxdemo",
	Short:              "Drive a publish subject from the command line",
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info",
		"log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "",
		"write logs to a rotated file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&flagKeys, "keys", "uuid",
		"subscription id format (uuid, ulid)")

	rootCmd.AddCommand(playgroundCmd, runCmd)
}

func setupLogging(*cobra.Command, []string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", flagLogLevel)
	}

	if flagLogFile == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()
		closeLog = func() error { return nil }
		return nil
	}

	rotated := &lumberjack.Logger{
		Filename:   flagLogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}
	logger = zerolog.New(rotated).Level(level).With().Timestamp().Logger()
	closeLog = rotated.Close
	return nil
}

func closeLogging(*cobra.Command, []string) error {
	return closeLog()
}

func keyGenerator(name string) (subject.KeyGenerator, error) {
	switch strings.ToLower(name) {
	case "", "uuid":
		return subject.UUIDKeys(), nil
	case "ulid":
		return subject.ULIDKeys(), nil
	default:
		return nil, errors.Errorf("unknown key format %q", name)
	}
}
