// ============================================================================
// textkit - UTF-8 text buffers and views
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Module version of the textx library
	Library = "0.1.0"

	// CLI version
	CLI = "0.1.0"
)

// Set at build time with -ldflags "-X github.com/msto63/textkit/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Library   string `json:"library" yaml:"library"`
	CLI       string `json:"cli" yaml:"cli"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Library:   Library,
		CLI:       CLI,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("textkit %s (textx %s, commit %s, %s, %s)", i.CLI, i.Library, i.Commit, i.GoVersion, i.Platform)
}
