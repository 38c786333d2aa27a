// Package action defines the output side of MCL.
//
// An Action is a plain function taking a severity level and an
// already-formatted message. The library never interprets the message
// further: no timestamps, no rotation, no buffering. The Default
// action routes Fatal, Error and Warn to stderr and all other levels
// to stdout; NewWriterAction does the same routing over a caller
// supplied writer pair, which is the usual hook for tests.
//
// Adapters bridging an Action onto zap, zerolog and logrus live under
// the adapter directory.
package action
