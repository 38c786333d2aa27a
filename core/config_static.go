//go:build mcl_static

package core

// DynamicLevels is pinned off by the mcl_static tag: thresholds are
// fixed, SetLevel is a no-op, and every level inside the dynamic
// range behaves as hardwired.
const DynamicLevels = false
