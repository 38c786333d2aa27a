//go:build mcl_all

package core

// Full dynamic range: nothing hardwired, nothing eliminated.
const (
	MinDynamicLevel Level = FatalLevel
	MaxDynamicLevel Level = AllLevel
)
