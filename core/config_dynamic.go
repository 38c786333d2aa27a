//go:build !mcl_static

package core

// DynamicLevels reports whether logging-system thresholds can be
// changed at runtime. Built without the mcl_static tag, they can.
const DynamicLevels = true
