package core

// The dynamic range and the dynamic-control flag are compile-time
// constants so that the per-level gate in the logger package folds to
// either an unconditional emit, a single threshold comparison, or an
// empty function body. They are selected with build tags; see the
// package documentation.

// Fails to compile when the dynamic range is inverted.
const _ = uint8(MaxDynamicLevel - MinDynamicLevel)

// ClampDynamic constrains lvl to the configured dynamic range.
func ClampDynamic(lvl Level) Level {
	return Clamp(lvl, MinDynamicLevel, MaxDynamicLevel)
}
