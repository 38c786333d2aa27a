package logger

import "github.com/emc2/mcl/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	FatalLevel   = core.FatalLevel
	ErrorLevel   = core.ErrorLevel
	WarnLevel    = core.WarnLevel
	MsgLevel     = core.MsgLevel
	InfoLevel    = core.InfoLevel
	VerboseLevel = core.VerboseLevel
	DebugLevel   = core.DebugLevel
	TraceLevel   = core.TraceLevel
	NoneLevel    = core.NoneLevel
	AllLevel     = core.AllLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
