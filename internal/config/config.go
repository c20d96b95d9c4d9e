// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The calseq Authors

package config

// StructuredConfig is the top-level configuration container for the calseq
// tool. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the tool version.
	App App `envPrefix:"APP_"`

	// History holds configuration for the local request history store.
	History History `envPrefix:"HISTORY_"`

	// Run holds settings that shape the rendered keyword program.
	Run Run `envPrefix:"RUN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running tool
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// History holds settings for the SQLite request history store.
type History struct {
	// DSN is the path of the SQLite database file holding the archive of
	// validated exposure requests.
	// Env: HISTORY_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Disabled skips history recording entirely when true.
	// Env: HISTORY_DISABLED
	Disabled bool `env:"DISABLED"`
}

// Run holds settings that shape the rendered keyword program.
type Run struct {
	// Repeats is how many times the set of sequence files is visited in
	// the rendered program. Defaults to 1.
	// Env: RUN_REPEATS
	Repeats int `env:"REPEATS"`

	// LampsOff appends lamp power-off steps at the end of the rendered
	// program.
	// Env: RUN_LAMPS_OFF
	LampsOff bool `env:"LAMPS_OFF"`
}

// GetStructuredConfig loads, merges, and validates the tool configuration
// from all available sources in the following priority order (first source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
