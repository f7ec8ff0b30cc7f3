// Package log provides structured logging for the molecule toolkit.
//
// Package: log
// Title: Structured Logging
// Description: Implements a leveled logger with persistent context fields,
//              JSON, text and console output formats, integration with the
//              structured error package and a timer for operation durations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Removed async buffering and audit level, stderr default output
//
// Usage:
//
//	import mdwlog "github.com/msto63/molecule/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithField("component", "formula-parser")
//
//	logger.Debug("parsed formula", mdwlog.Fields{"input": "H2O", "atoms": 3})
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.Stop()
package log
