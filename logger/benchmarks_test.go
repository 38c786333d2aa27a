package logger

import (
	"testing"

	"github.com/emc2/mcl/action"
)

func benchSystem(b *testing.B, initial Level) *System {
	b.Helper()

	reg := NewRegistry(action.Discard)
	sys, err := reg.Define("bench", initial)
	if err != nil {
		b.Fatalf("Define failed: %v", err)
	}
	return sys
}

// Hardwired tier: emit with no threshold comparison.
func BenchmarkHardwired(b *testing.B) {
	sys := benchSystem(b, WarnLevel)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sys.Errorf("fixed message")
	}
}

// Dynamic tier, threshold permits the message.
func BenchmarkDynamicEmitting(b *testing.B) {
	sys := benchSystem(b, VerboseLevel)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sys.Verbosef("fixed message")
	}
}

// Dynamic tier, threshold suppresses the message. One comparison,
// no formatting.
func BenchmarkDynamicSuppressed(b *testing.B) {
	sys := benchSystem(b, WarnLevel)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sys.Verbosef("value %d %d %d", i, i, i)
	}
}

// Eliminated tier: the method body folds to nothing.
func BenchmarkCompiledOut(b *testing.B) {
	sys := benchSystem(b, VerboseLevel)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sys.Tracef("value %d %d %d", i, i, i)
	}
}
