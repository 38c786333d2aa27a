// Package logrus bridges an MCL action onto sirupsen/logrus.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/emc2/mcl/action"
	"github.com/emc2/mcl/core"
)

// New returns an action forwarding every message to l. A nil l falls
// back to the logrus standard logger.
//
// FatalLevel maps to logrus's Error so that library code never calls
// os.Exit.
func New(l *logrus.Logger) action.Action {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return func(level core.Level, msg string) {
		l.Log(toLogrusLevel(level), msg)
	}
}

// toLogrusLevel converts a core.Level to the closest logrus level.
func toLogrusLevel(level core.Level) logrus.Level {
	switch level {
	case core.FatalLevel, core.ErrorLevel:
		return logrus.ErrorLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.MsgLevel, core.InfoLevel:
		return logrus.InfoLevel
	case core.VerboseLevel, core.DebugLevel:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
