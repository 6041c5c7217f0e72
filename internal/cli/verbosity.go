package cli

import (
	"io"
	"log/slog"

	"github.com/trypinnacle/pinnacle-go/internal/constants"
)

// SetVerbosity sets the level of the default logger from the count of verbose flags.
//
// It has the same behavior as slog.SetLogLoggerLevel.
func SetVerbosity(level int) {
	slog.SetLogLoggerLevel(getLevel(level))
}

// SetSlog sets the level of the default logger and, when jsonLogs is set, makes it write JSON records to w.
func SetSlog(level int, jsonLogs bool, w io.Writer) {
	if jsonLogs {
		slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: getLevel(level)})))
		return
	}

	SetVerbosity(level)
}

func getLevel(level int) slog.Level {
	switch level {
	case 0:
		return constants.DefaultLogLevel
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
