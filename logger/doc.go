// Package logger is the public API of MCL. Most users only need to
// import this package.
//
// A logging system is a named channel with a single mutable severity
// threshold. Systems are created with Define and looked up elsewhere
// with Declare, mirroring the definition/declaration split of the
// classic macro loggers this library descends from:
//
//	reg := logger.NewRegistry(nil)
//	sys, err := reg.Define("frontend", logger.InfoLevel)
//	...
//	same, err := reg.Declare("frontend")
//
// Every severity gets one call-site operation, Fatalf through Tracef,
// each taking a printf-style template. Which of them do anything is
// decided at compile time by the constants in the core package:
//
//   - levels above core.MaxDynamicLevel are eliminated; the methods
//     fold to empty bodies, inline away, and never evaluate their
//     formatting work.
//   - levels below core.MinDynamicLevel are hardwired on; they emit
//     without consulting the system's threshold.
//   - levels in between compare against the threshold, which SetLevel
//     adjusts at runtime (always clamped into the dynamic range).
//
// The package-level Define, Declare and their Must variants operate
// on a process-wide default registry writing to stderr/stdout.
//
// Nothing in this package is synchronized. The threshold cell carries
// no atomicity or ordering guarantees: concurrent SetLevel and logging
// on the same system is an unspecified interleaving, and callers that
// need more must lock around it themselves. Define all systems during
// program initialization. This is a deliberate trade for minimal
// overhead on the logging path.
package logger
