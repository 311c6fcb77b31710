// Package logging routes the standard logger to a rotating file. The
// terminal belongs to the picker, so nothing is logged to stderr.
package logging

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"

	"countrypick/internal/config"
)

// Setup points the standard logger at the configured file. An empty file
// name discards log output. The returned closer flushes the file.
func Setup(settings config.LogSettings) io.Closer {
	if settings.File == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}
	}

	logFile := &lumberjack.Logger{
		Filename:   settings.File,
		MaxSize:    settings.MaxSizeMB, // megabytes
		MaxBackups: settings.MaxBackups,
		Compress:   false,
	}
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags)
	return logFile
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
