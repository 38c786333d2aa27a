package core

import "strings"

// Level represents the severity of a log message. Lower values are
// more severe. The numeric values are a fixed contract: external code
// may persist them or pass them across process boundaries.
type Level int8

const (
	// FatalLevel for fatal conditions
	FatalLevel Level = 0
	// ErrorLevel for non-fatal errors
	ErrorLevel Level = 1
	// WarnLevel for likely problems
	WarnLevel Level = 2
	// MsgLevel for terse messages during normal operation
	MsgLevel Level = 3
	// InfoLevel for progress messages during normal operation
	InfoLevel Level = 4
	// VerboseLevel for verbose messages during normal operation
	VerboseLevel Level = 5
	// DebugLevel for debug messages
	DebugLevel Level = 6
	// TraceLevel for trace debugging
	TraceLevel Level = 7

	// NoneLevel suppresses all messages above the hardwire threshold
	NoneLevel Level = -1
	// AllLevel permits all messages below the omission threshold
	AllLevel Level = 0x7f
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case FatalLevel:
		return "FATAL"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case MsgLevel:
		return "MSG"
	case InfoLevel:
		return "INFO"
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	case NoneLevel:
		return "NONE"
	case AllLevel:
		return "ALL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "FATAL":
		return FatalLevel
	case "ERROR":
		return ErrorLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "MSG":
		return MsgLevel
	case "INFO":
		return InfoLevel
	case "VERBOSE":
		return VerboseLevel
	case "DEBUG":
		return DebugLevel
	case "TRACE":
		return TraceLevel
	case "NONE":
		return NoneLevel
	case "ALL":
		return AllLevel
	default:
		return InfoLevel
	}
}

// Clamp constrains lvl to lie within [min, max]. Out-of-range input
// is adjusted silently, never rejected.
func Clamp(lvl, min, max Level) Level {
	if lvl > max {
		return max
	}
	if lvl < min {
		return min
	}
	return lvl
}
