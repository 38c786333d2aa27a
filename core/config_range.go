//go:build !mcl_all

package core

const (
	// MinDynamicLevel is the lowest level a logging system's
	// threshold may take. Statements below it are hardwired on and
	// cannot be silenced.
	MinDynamicLevel Level = WarnLevel

	// MaxDynamicLevel is the highest level a logging system's
	// threshold may take. Statements above it are eliminated at
	// compile time and have no runtime cost.
	MaxDynamicLevel Level = VerboseLevel
)
