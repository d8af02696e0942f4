// ============================================================================
// Lovelace - Scripting Language Runtime
// ============================================================================
//
// Package:     version
// Description: Central version management for the runtime and its tools
// Author:      Mike Stoffels
// Created:     2025-02-08
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the Lovelace components
const (
	// Release version of the module
	Platform = "0.1.0"

	// Component versions
	Lexer       = "0.1.0"
	Parser      = "0.1.0"
	Interpreter = "0.1.0"
	CLI         = "0.1.0"
)

// Build metadata, set via -ldflags "-X .../version.GitCommit=..."
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "interpreter":
		return Interpreter
	case "cli":
		return CLI
	default:
		return Platform
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information
func Get() Info {
	return Info{
		Version:   Platform,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the build information on one line
func (i Info) String() string {
	return fmt.Sprintf("lovelace %s (commit %s, built %s, %s %s)",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
