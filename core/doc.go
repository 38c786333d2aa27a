// Package core defines the shared types used across the MCL library.
//
// It provides the Level type with its eight named severities (Fatal=0
// through Trace=7, lower is more severe) plus the NoneLevel and
// AllLevel sentinels, the Clamp function, and the compile-time
// configuration constants that drive level gating.
//
// The configuration constants are deliberately constants, not
// variables. The logger package compares each call site's severity
// against MinDynamicLevel and MaxDynamicLevel with both operands
// known at compile time, so the toolchain folds the comparison away:
// call sites above the ceiling reduce to empty inlinable functions,
// call sites below the floor emit with no threshold check at all.
//
// Two build tags select alternate configurations:
//
//	mcl_all     widens the dynamic range to [Fatal, All], so no
//	            statement is hardwired and none is eliminated.
//	mcl_static  disables runtime level control entirely; SetLevel
//	            becomes a no-op and Level always reports the
//	            compile-time maximum.
//
// A configuration whose minimum exceeds its maximum does not compile.
package core
