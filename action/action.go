package action

import (
	"io"
	"os"
	"strings"

	"github.com/emc2/mcl/core"
)

// Action consumes one log message. It is the single pluggable point
// of the library: anything honoring the (level, message) pair may be
// substituted. An Action has no return value and no way to signal
// failure; a broken sink simply loses messages.
type Action func(level core.Level, msg string)

// Discard is an Action that drops every message.
var Discard Action = func(core.Level, string) {}

// NewWriterAction returns an Action that writes messages at WarnLevel
// or lower (Fatal, Error, Warn) to urgent and everything else to
// normal. A trailing newline is appended when the message lacks one.
func NewWriterAction(urgent, normal io.Writer) Action {
	return func(level core.Level, msg string) {
		w := normal
		if level <= core.WarnLevel {
			w = urgent
		}
		writeLine(w, msg)
	}
}

// Default returns an Action routing urgent messages to stderr and the
// rest to stdout. The streams are resolved at call time, so output
// follows reassignments of os.Stdout and os.Stderr.
func Default() Action {
	return func(level core.Level, msg string) {
		if level <= core.WarnLevel {
			writeLine(os.Stderr, msg)
		} else {
			writeLine(os.Stdout, msg)
		}
	}
}

func writeLine(w io.Writer, msg string) {
	if strings.HasSuffix(msg, "\n") {
		io.WriteString(w, msg)
		return
	}
	io.WriteString(w, msg+"\n")
}
