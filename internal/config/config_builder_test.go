// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/openclaw-configure/internal/environment"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func snapshot(vars map[string]string) environment.Snapshot {
	return environment.FromMap(vars)
}

// ── GetSettings ───────────────────────────────────────────────────────────────

// TestGetSettings_Defaults verifies the values used when nothing is set.
func TestGetSettings_Defaults(t *testing.T) {
	s, err := GetSettings(snapshot(nil), nil)
	require.NoError(t, err)

	assert.Equal(t, "/data/.openclaw", s.Paths.StateDir)
	assert.Equal(t, "/data/workspace", s.Paths.WorkspaceDir)
	assert.Equal(t, "/data/.openclaw/openclaw.json", s.Paths.ConfigFile)
	assert.Equal(t, "/data/.openclaw/openclaw.json.backup", s.Paths.BackupFile)
	assert.Equal(t, "/app/config/openclaw.json", s.Paths.CustomConfigFile)
	assert.Equal(t, "info", s.Run.LogLevel)
	assert.False(t, s.Run.SkipPersisted)
	assert.False(t, s.Run.DryRun)
}

// TestGetSettings_EnvOverridesDefaults verifies environment values and the
// trailing slash trimming of directories.
func TestGetSettings_EnvOverridesDefaults(t *testing.T) {
	s, err := GetSettings(snapshot(map[string]string{
		"OPENCLAW_STATE_DIR":             "/state///",
		"OPENCLAW_WORKSPACE_DIR":         "/ws/",
		"OPENCLAW_CUSTOM_CONFIG":         "/etc/custom.json",
		"OPENCLAW_CONFIGURE_LOG_LEVEL":   "DEBUG",
		"OPENCLAW_CONFIGURE_DRY_RUN":     "true",
		"OPENCLAW_CONFIGURE_ENV_FILE":    "/run/.env",
		"OPENCLAW_CONFIGURE_PRETTY_LOGS": "1",
	}), nil)
	require.NoError(t, err)

	assert.Equal(t, "/state", s.Paths.StateDir)
	assert.Equal(t, "/ws", s.Paths.WorkspaceDir)
	assert.Equal(t, "/state/openclaw.json", s.Paths.ConfigFile)
	assert.Equal(t, "/state/openclaw.json.backup", s.Paths.BackupFile)
	assert.Equal(t, "/etc/custom.json", s.Paths.CustomConfigFile)
	assert.Equal(t, "debug", s.Run.LogLevel)
	assert.True(t, s.Run.DryRun)
	assert.True(t, s.Run.PrettyLogs)
	assert.Equal(t, "/run/.env", s.Run.EnvFile)
}

// TestGetSettings_ExplicitConfigPath verifies that OPENCLAW_CONFIG_PATH is
// used as-is while the backup stays in the state directory.
func TestGetSettings_ExplicitConfigPath(t *testing.T) {
	s, err := GetSettings(snapshot(map[string]string{
		"OPENCLAW_STATE_DIR":   "/state",
		"OPENCLAW_CONFIG_PATH": "/elsewhere/cfg.json",
	}), nil)
	require.NoError(t, err)

	assert.Equal(t, "/elsewhere/cfg.json", s.Paths.ConfigFile)
	assert.Equal(t, "/state/openclaw.json.backup", s.Paths.BackupFile)
}

// TestGetSettings_FlagsOverrideEnv verifies the last-wins order.
func TestGetSettings_FlagsOverrideEnv(t *testing.T) {
	flags := newFlagSet(t,
		"--state-dir", "/flag-state",
		"-c", "/flag/cfg.json",
		"--skip-persisted",
		"--log-level", "warn",
	)

	s, err := GetSettings(snapshot(map[string]string{
		"OPENCLAW_STATE_DIR":           "/env-state",
		"OPENCLAW_WORKSPACE_DIR":       "/env-ws",
		"OPENCLAW_CONFIGURE_LOG_LEVEL": "debug",
	}), flags)
	require.NoError(t, err)

	assert.Equal(t, "/flag-state", s.Paths.StateDir)
	assert.Equal(t, "/env-ws", s.Paths.WorkspaceDir)
	assert.Equal(t, "/flag/cfg.json", s.Paths.ConfigFile)
	assert.Equal(t, "/flag-state/openclaw.json.backup", s.Paths.BackupFile)
	assert.True(t, s.Run.SkipPersisted)
	assert.Equal(t, "warn", s.Run.LogLevel)
}

// TestGetSettings_UnsetFlagsDoNotOverride verifies that registered but unset
// flags leave lower layers untouched.
func TestGetSettings_UnsetFlagsDoNotOverride(t *testing.T) {
	s, err := GetSettings(snapshot(map[string]string{
		"OPENCLAW_STATE_DIR": "/env-state",
	}), newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, "/env-state", s.Paths.StateDir)
}

func TestGetSettings_InvalidEnvBool(t *testing.T) {
	s, err := GetSettings(snapshot(map[string]string{
		"OPENCLAW_CONFIGURE_SKIP_PERSISTED": "maybe",
	}), nil)

	assert.Nil(t, s)
	require.Error(t, err)
}

func TestGetSettings_InvalidLogLevel(t *testing.T) {
	_, err := GetSettings(snapshot(map[string]string{
		"OPENCLAW_CONFIGURE_LOG_LEVEL": "loud",
	}), nil)

	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

// ── settingsBuilder ───────────────────────────────────────────────────────────

func TestNewSettingsBuilder_InitialState(t *testing.T) {
	b := newSettingsBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

// TestBuild_EmptyBuilder verifies that with no layers the paths are missing
// and validation fails.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newSettingsBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidPaths)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newSettingsBuilder()
	b.err = assert.AnError

	s, err := b.build()
	assert.Nil(t, s)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayerWins verifies that non-zero fields of later layers
// override earlier ones, and zero fields do not.
func TestBuild_LaterLayerWins(t *testing.T) {
	b := newSettingsBuilder()
	b.layers = append(b.layers,
		&Settings{Paths: Paths{StateDir: "/a", WorkspaceDir: "/w"}, Run: Run{LogLevel: "info", DryRun: true}},
		&Settings{Paths: Paths{StateDir: "/b"}},
	)

	s, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/b", s.Paths.StateDir)
	assert.Equal(t, "/w", s.Paths.WorkspaceDir)
	assert.True(t, s.Run.DryRun)
}

func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newSettingsBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.layers)
}

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newSettingsBuilder()
	assert.Same(t, b, b.withEnv(snapshot(nil)))
	assert.Len(t, b.layers, 1)
}

func TestTrimTrailingSlashes(t *testing.T) {
	assert.Equal(t, "/data", trimTrailingSlashes("/data/"))
	assert.Equal(t, "/data", trimTrailingSlashes("/data"))
	assert.Equal(t, "/", trimTrailingSlashes("///"))
	assert.Equal(t, "", trimTrailingSlashes(""))
	assert.Equal(t, "rel/dir", trimTrailingSlashes("rel/dir//"))
}
