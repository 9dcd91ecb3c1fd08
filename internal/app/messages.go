// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across
// openclaw-configure.
//
// All Msg* constants are the step messages written into log entries while a
// configuration pass runs. Keeping them in one place keeps the wording
// consistent between the generator and the command line entrypoint, and lets
// log-based checks match on a stable vocabulary.
package app

const (
	// MsgStateDir reports the resolved state directory.
	MsgStateDir = "state dir"

	// MsgWorkspaceDir reports the resolved agent workspace directory.
	MsgWorkspaceDir = "workspace dir"

	// MsgConfigFile reports the path the final document is written to.
	MsgConfigFile = "config file"

	// MsgPreparedDirs is logged once every required directory exists.
	MsgPreparedDirs = "prepared directories"

	// MsgLoadedCustomConfig is logged when the operator-supplied custom
	// config file was read and will be merged.
	MsgLoadedCustomConfig = "loaded custom config"

	// MsgNoCustomConfig is logged when no usable custom config file exists.
	MsgNoCustomConfig = "no custom config"

	// MsgLoadedPersistedConfig is logged when the config left by a previous
	// run was read and will be merged.
	MsgLoadedPersistedConfig = "loaded persisted config"

	// MsgNoPersistedConfig is logged when there is no usable persisted
	// config file.
	MsgNoPersistedConfig = "no persisted config"

	// MsgSkippedPersistedConfig is logged when persisted state is ignored
	// on request.
	MsgSkippedPersistedConfig = "skipped persisted config"

	// MsgAppliedEnvironment is logged after the environment layer was built.
	// Only rule names are attached, never variable values.
	MsgAppliedEnvironment = "applied environment variables"

	// MsgWroteConfig is logged after the document was persisted.
	MsgWroteConfig = "wrote config"

	// MsgDryRun is logged when the document is printed instead of written.
	MsgDryRun = "dry run, printing config to stdout"

	// MsgLoadedEnvFile is logged when a dotenv file was overlaid onto the
	// process environment.
	MsgLoadedEnvFile = "loaded env file"
)
