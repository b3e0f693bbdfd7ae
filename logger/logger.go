package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timestampFormat = "06-01-02 15:04:05"

//
// Config describes where logs go and how verbose they are.
//
type Config struct {
	Level      string // debug, info, warn, error
	OutputFile string // Optional. Logs are always written to the console writer as well.
	MaxSize    int    // Megabytes before the output file is rotated.
	MaxBackups int    // Rotated files to keep.
	MaxAge     int    // Days to keep rotated files.
	Compress   bool   // Whether rotated files are gzipped.
}

//
// New builds a logger from the provided configuration. Console output goes to the provided writer
// (normally os.Stderr so that it never mixes with command output).
//
func New(cfg Config, console io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()

	//
	// Determine the log level. An empty level means "info".
	//
	level := logrus.InfoLevel

	if cfg.Level != "" {
		var err error

		level, err = logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
		}
	}

	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})

	//
	// Tee into a rotating file if one was asked for.
	//
	writers := []io.Writer{console}

	if cfg.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0755); err != nil {
			return nil, errors.Wrap(err, "failed to create log directory")
		}

		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.OutputFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}

	logger.SetOutput(io.MultiWriter(writers...))

	return logger, nil
}
