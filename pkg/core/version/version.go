// ============================================================================
// molecule - Chemical Formula Atom Counter
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and its components
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all molecule components
const (
	// Application version
	Application = "0.1.0"

	// Component versions
	Parser   = "0.1.0"
	Engine   = "0.1.0"
	Explorer = "0.1.0"
)

// Set at build time via -ldflags "-X github.com/msto63/molecule/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "engine":
		return Engine
	case "explorer":
		return Explorer
	default:
		return Application
	}
}

// Info returns a one-line description of the build
func Info() string {
	return fmt.Sprintf("molecule %s (commit %s, built %s, %s %s/%s)",
		Application, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
