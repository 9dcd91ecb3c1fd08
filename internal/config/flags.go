// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

const (
	FlagStateDir      = "state-dir"
	FlagWorkspaceDir  = "workspace-dir"
	FlagConfig        = "config"
	FlagCustomConfig  = "custom-config"
	FlagSkipPersisted = "skip-persisted"
	FlagDryRun        = "dry-run"
	FlagLogLevel      = "log-level"
	FlagPrettyLogs    = "pretty-logs"
	FlagEnvFile       = "env-file"
)

// RegisterFlags registers all configuration flags on fs.
//
// Flags:
//
//	--state-dir       state directory (config and backup live here)
//	--workspace-dir   agent workspace directory
//	-c/--config       generated config file path
//	--custom-config   optional custom base config path
//	--skip-persisted  do not merge the previously generated config
//	--dry-run         print the merged document instead of writing it
//	--log-level       log level (debug, info, warn, error)
//	--pretty-logs     human-readable logs
//	--env-file        dotenv file overlaid under the process environment
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagStateDir, "", "State directory (default "+DefaultStateDir+")")
	fs.String(FlagWorkspaceDir, "", "Workspace directory (default "+DefaultWorkspaceDir+")")
	fs.StringP(FlagConfig, "c", "", "Generated config file path (default <state-dir>/"+ConfigFileName+")")
	fs.String(FlagCustomConfig, "", "Custom base config path (default "+DefaultCustomConfigFile+")")
	fs.Bool(FlagSkipPersisted, false, "Do not merge the previously generated config")
	fs.Bool(FlagDryRun, false, "Print the merged config to stdout instead of writing files")
	fs.String(FlagLogLevel, "", "Log level: debug, info, warn, error (default "+DefaultLogLevel+")")
	fs.Bool(FlagPrettyLogs, false, "Human-readable log output")
	fs.String(FlagEnvFile, "", "Dotenv file read under the process environment")
}

// parseFlags collects the flags that were explicitly set on fs. Flags left
// at their default produce zero values so they never override lower layers.
func parseFlags(fs *pflag.FlagSet) (*Settings, error) {
	s := &Settings{}

	stringFlags := map[string]*string{
		FlagStateDir:     &s.Paths.StateDir,
		FlagWorkspaceDir: &s.Paths.WorkspaceDir,
		FlagConfig:       &s.Paths.ConfigFile,
		FlagCustomConfig: &s.Paths.CustomConfigFile,
		FlagLogLevel:     &s.Run.LogLevel,
		FlagEnvFile:      &s.Run.EnvFile,
	}
	for name, dst := range stringFlags {
		if !changed(fs, name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", name, err)
		}
		*dst = v
	}

	boolFlags := map[string]*bool{
		FlagSkipPersisted: &s.Run.SkipPersisted,
		FlagDryRun:        &s.Run.DryRun,
		FlagPrettyLogs:    &s.Run.PrettyLogs,
	}
	for name, dst := range boolFlags {
		if !changed(fs, name) {
			continue
		}
		v, err := fs.GetBool(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", name, err)
		}
		*dst = v
	}

	return s, nil
}

func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}
