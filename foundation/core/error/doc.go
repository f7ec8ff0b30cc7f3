// Package error provides structured error handling for the molecule toolkit.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements an error type carrying a code, a severity, the failing
//              operation and arbitrary details. Domain packages such as the
//              formula parser keep their own error values and convert into
//              this type at the logging boundary.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Formula syntax codes, errors.As based lookups
//
// Usage:
//
//	import mdwerror "github.com/msto63/molecule/foundation/core/error"
//
//	err := mdwerror.New("max_depth must not be negative").
//		WithCode(mdwerror.CodeInvalidConfig).
//		WithOperation("parser.New").
//		WithDetail("max_depth", -1)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
//		// reject configuration
//	}
package error
