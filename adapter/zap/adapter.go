// Package zap bridges an MCL action onto go.uber.org/zap.
package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emc2/mcl/action"
	"github.com/emc2/mcl/core"
)

// New returns an action forwarding every message to l. The backend's
// own level filter still applies on top of MCL's gating; Check avoids
// any work for entries the backend would drop.
//
// FatalLevel maps to zap's Error so that library code never calls
// os.Exit.
func New(l *zap.Logger) action.Action {
	if l == nil {
		l = zap.NewNop()
	}
	return func(level core.Level, msg string) {
		if ce := l.Check(toZapLevel(level), msg); ce != nil {
			ce.Write()
		}
	}
}

// toZapLevel converts a core.Level to the closest zapcore level. The
// Msg and Verbose severities have no zap equivalent and collapse onto
// Info and Debug respectively.
func toZapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.FatalLevel, core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.MsgLevel, core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
