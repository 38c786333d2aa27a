// Package zerolog bridges an MCL action onto rs/zerolog.
package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/emc2/mcl/action"
	"github.com/emc2/mcl/core"
)

// New returns an action forwarding every message to l. WithLevel is
// used rather than the per-level helpers so the backend's own filter
// still applies.
//
// FatalLevel maps to zerolog's Error so that library code never calls
// os.Exit.
func New(l zerolog.Logger) action.Action {
	return func(level core.Level, msg string) {
		zlvl := toZerologLevel(level)
		if zlvl < l.GetLevel() {
			return
		}
		l.WithLevel(zlvl).Msg(msg)
	}
}

// toZerologLevel converts a core.Level to the closest zerolog level.
func toZerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.FatalLevel, core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.MsgLevel, core.InfoLevel:
		return zerolog.InfoLevel
	case core.VerboseLevel, core.DebugLevel:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
