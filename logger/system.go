package logger

import (
	"fmt"

	"github.com/emc2/mcl/action"
	"github.com/emc2/mcl/core"
)

// System is a named logging channel holding exactly one piece of
// mutable state: its current threshold level. Systems are created by
// Registry.Define and live for the life of the process.
//
// Each fixed-level method below repeats the same two checks against
// core.MaxDynamicLevel and core.MinDynamicLevel. The repetition is
// the point: with the call-site level and both bounds constant, the
// compiler resolves the checks per method. A method above the ceiling
// folds to an empty body and inlines away at the call site, so
// neither the format string nor any lazy argument (fmt.Stringer,
// error) is ever observed. A method below the floor emits with no
// threshold comparison at all.
type System struct {
	name   string
	level  core.Level
	action action.Action
}

// Name returns the name the system was defined under.
func (s *System) Name() string {
	return s.name
}

// Level returns the current threshold. When dynamic level control is
// compiled out, this always reports the compile-time maximum.
func (s *System) Level() core.Level {
	if !core.DynamicLevels {
		return core.MaxDynamicLevel
	}
	return s.level
}

// SetLevel changes the threshold, clamping it into the dynamic
// range. Out-of-range input is adjusted silently. When dynamic level
// control is compiled out, SetLevel is a no-op.
func (s *System) SetLevel(level core.Level) {
	if !core.DynamicLevels {
		return
	}
	s.level = core.ClampDynamic(level)
}

// Enabled reports whether a message at level would currently emit.
// Useful to skip expensive argument preparation in hot paths.
func (s *System) Enabled(level core.Level) bool {
	if level > core.MaxDynamicLevel {
		return false
	}
	if !core.DynamicLevels || level < core.MinDynamicLevel {
		return true
	}
	return s.level >= level
}

// Fatalf logs a formatted message at the fatal level.
func (s *System) Fatalf(format string, args ...interface{}) {
	if core.FatalLevel > core.MaxDynamicLevel {
		return
	}
	if core.DynamicLevels && core.FatalLevel >= core.MinDynamicLevel && s.level < core.FatalLevel {
		return
	}
	s.emit(core.FatalLevel, format, args)
}

// Errorf logs a formatted message at the error level.
func (s *System) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel > core.MaxDynamicLevel {
		return
	}
	if core.DynamicLevels && core.ErrorLevel >= core.MinDynamicLevel && s.level < core.ErrorLevel {
		return
	}
	s.emit(core.ErrorLevel, format, args)
}

// Warnf logs a formatted message at the warning level.
func (s *System) Warnf(format string, args ...interface{}) {
	if core.WarnLevel > core.MaxDynamicLevel {
		return
	}
	if core.DynamicLevels && core.WarnLevel >= core.MinDynamicLevel && s.level < core.WarnLevel {
		return
	}
	s.emit(core.WarnLevel, format, args)
}

// Msgf logs a formatted message at the message level.
func (s *System) Msgf(format string, args ...interface{}) {
	if core.MsgLevel > core.MaxDynamicLevel {
		return
	}
	if core.DynamicLevels && core.MsgLevel >= core.MinDynamicLevel && s.level < core.MsgLevel {
		return
	}
	s.emit(core.MsgLevel, format, args)
}

// Infof logs a formatted message at the info level.
func (s *System) Infof(format string, args ...interface{}) {
	if core.InfoLevel > core.MaxDynamicLevel {
		return
	}
	if core.DynamicLevels && core.InfoLevel >= core.MinDynamicLevel && s.level < core.InfoLevel {
		return
	}
	s.emit(core.InfoLevel, format, args)
}

// Verbosef logs a formatted message at the verbose level.
func (s *System) Verbosef(format string, args ...interface{}) {
	if core.VerboseLevel > core.MaxDynamicLevel {
		return
	}
	if core.DynamicLevels && core.VerboseLevel >= core.MinDynamicLevel && s.level < core.VerboseLevel {
		return
	}
	s.emit(core.VerboseLevel, format, args)
}

// Debugf logs a formatted message at the debug level.
func (s *System) Debugf(format string, args ...interface{}) {
	if core.DebugLevel > core.MaxDynamicLevel {
		return
	}
	if core.DynamicLevels && core.DebugLevel >= core.MinDynamicLevel && s.level < core.DebugLevel {
		return
	}
	s.emit(core.DebugLevel, format, args)
}

// Tracef logs a formatted message at the trace level.
func (s *System) Tracef(format string, args ...interface{}) {
	if core.TraceLevel > core.MaxDynamicLevel {
		return
	}
	if core.DynamicLevels && core.TraceLevel >= core.MinDynamicLevel && s.level < core.TraceLevel {
		return
	}
	s.emit(core.TraceLevel, format, args)
}

// Logf logs at an arbitrary level. The gate here runs at runtime, so
// unlike the fixed-level methods, nothing folds away; prefer those in
// hot paths.
func (s *System) Logf(level core.Level, format string, args ...interface{}) {
	if !s.Enabled(level) {
		return
	}
	s.emit(level, format, args)
}

// emit formats and hands the message to the action. Formatting cost
// is only paid once the gate has passed.
func (s *System) emit(level core.Level, format string, args []interface{}) {
	if len(args) == 0 {
		s.action(level, format)
		return
	}
	s.action(level, fmt.Sprintf(format, args...))
}
