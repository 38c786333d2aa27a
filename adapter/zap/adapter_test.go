package zap

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/emc2/mcl/core"
)

func TestAdapter_LevelMapping(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	act := New(zap.New(obs))

	cases := []struct {
		level core.Level
		want  zapcore.Level
	}{
		{core.FatalLevel, zapcore.ErrorLevel},
		{core.ErrorLevel, zapcore.ErrorLevel},
		{core.WarnLevel, zapcore.WarnLevel},
		{core.MsgLevel, zapcore.InfoLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.VerboseLevel, zapcore.DebugLevel},
		{core.DebugLevel, zapcore.DebugLevel},
		{core.TraceLevel, zapcore.DebugLevel},
	}

	for i, c := range cases {
		act(c.level, "message")

		all := logs.All()
		if len(all) != i+1 {
			t.Fatalf("%v: entry was not recorded", c.level)
		}
		entry := all[i]
		if entry.Level != c.want {
			t.Errorf("%v mapped to %v, want %v", c.level, entry.Level, c.want)
		}
		if entry.Message != "message" {
			t.Errorf("%v: message = %q", c.level, entry.Message)
		}
	}
}

func TestAdapter_RespectsBackendFilter(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	act := New(zap.New(obs))

	act(core.InfoLevel, "filtered")
	if logs.Len() != 0 {
		t.Errorf("backend-filtered entry was recorded: %v", logs.All())
	}

	act(core.ErrorLevel, "kept")
	if logs.Len() != 1 {
		t.Error("entry above the backend filter was dropped")
	}
}

func TestNew_NilLogger(t *testing.T) {
	act := New(nil)
	act(core.ErrorLevel, "goes nowhere")
}
