// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"

	"github.com/MKhiriev/openclaw-configure/internal/environment"
)

const (
	DefaultStateDir         = "/data/.openclaw"
	DefaultWorkspaceDir     = "/data/workspace"
	DefaultCustomConfigFile = "/app/config/openclaw.json"
	DefaultLogLevel         = "info"

	// ConfigFileName is the name of the generated file inside the state
	// directory when no explicit path is configured.
	ConfigFileName = "openclaw.json"
	// BackupFileName is the name of the backup copy inside the state directory.
	BackupFileName = ConfigFileName + ".backup"
)

// Settings is the top-level configuration container for a single run.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type Settings struct {
	// Paths holds every file and directory location used by the run.
	Paths Paths `envPrefix:"OPENCLAW_"`

	// Run holds switches controlling how the run behaves.
	Run Run `envPrefix:"OPENCLAW_CONFIGURE_"`
}

// Paths holds file-system locations.
type Paths struct {
	// StateDir holds the generated config and its backup. Trailing slashes
	// are trimmed.
	// Env: OPENCLAW_STATE_DIR
	StateDir string `env:"STATE_DIR"`

	// WorkspaceDir is the agent workspace; it is created if missing and
	// written into agents.defaults.workspace.
	// Env: OPENCLAW_WORKSPACE_DIR
	WorkspaceDir string `env:"WORKSPACE_DIR"`

	// ConfigFile is the generated configuration file. It is also the
	// persisted layer read on the next run.
	// Env: OPENCLAW_CONFIG_PATH
	ConfigFile string `env:"CONFIG_PATH"`

	// CustomConfigFile is an optional user-supplied base document.
	// Env: OPENCLAW_CUSTOM_CONFIG
	CustomConfigFile string `env:"CUSTOM_CONFIG"`

	// BackupFile is always <StateDir>/openclaw.json.backup.
	BackupFile string
}

// Run holds run-time switches.
type Run struct {
	// SkipPersisted disables merging the previously generated file.
	// Env: OPENCLAW_CONFIGURE_SKIP_PERSISTED
	SkipPersisted bool `env:"SKIP_PERSISTED"`

	// DryRun prints the merged document instead of writing files.
	// Env: OPENCLAW_CONFIGURE_DRY_RUN
	DryRun bool `env:"DRY_RUN"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: OPENCLAW_CONFIGURE_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// PrettyLogs switches logs to the human-readable console format.
	// Env: OPENCLAW_CONFIGURE_PRETTY_LOGS
	PrettyLogs bool `env:"PRETTY_LOGS"`

	// EnvFile is an optional dotenv file overlaid under the process
	// environment.
	// Env: OPENCLAW_CONFIGURE_ENV_FILE
	EnvFile string `env:"ENV_FILE"`
}

// GetSettings loads, merges, resolves and validates the settings from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Defaults
//  2. Environment snapshot
//  3. Command-line flags (only flags explicitly set; flags may be nil)
func GetSettings(snap environment.Snapshot, flags *pflag.FlagSet) (*Settings, error) {
	return newSettingsBuilder().
		withDefaults().
		withEnv(snap).
		withFlags(flags).
		build()
}

func defaultSettings() *Settings {
	return &Settings{
		Paths: Paths{
			StateDir:         DefaultStateDir,
			WorkspaceDir:     DefaultWorkspaceDir,
			CustomConfigFile: DefaultCustomConfigFile,
		},
		Run: Run{
			LogLevel: DefaultLogLevel,
		},
	}
}
