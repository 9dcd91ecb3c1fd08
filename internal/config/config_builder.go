// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/openclaw-configure/internal/environment"
)

type settingsBuilder struct {
	layers []*Settings
	err    error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		layers: make([]*Settings, 0, 3),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(settings, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	settings.resolve()
	if err := settings.validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.layers = append(b.layers, defaultSettings())
	return b
}

func (b *settingsBuilder) withEnv(snap environment.Snapshot) *settingsBuilder {
	envSettings := &Settings{}
	if err := parseEnv(envSettings, snap); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envSettings)
	return b
}

func (b *settingsBuilder) withFlags(flags *pflag.FlagSet) *settingsBuilder {
	if flags == nil {
		return b
	}

	flagSettings, err := parseFlags(flags)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, flagSettings)
	return b
}

// resolve fills the derived fields once all layers are merged.
func (s *Settings) resolve() {
	s.Paths.StateDir = trimTrailingSlashes(s.Paths.StateDir)
	s.Paths.WorkspaceDir = trimTrailingSlashes(s.Paths.WorkspaceDir)

	if s.Paths.ConfigFile == "" && s.Paths.StateDir != "" {
		s.Paths.ConfigFile = filepath.Join(s.Paths.StateDir, ConfigFileName)
	}
	if s.Paths.StateDir != "" {
		s.Paths.BackupFile = filepath.Join(s.Paths.StateDir, BackupFileName)
	}

	s.Run.LogLevel = strings.ToLower(strings.TrimSpace(s.Run.LogLevel))
}

// trimTrailingSlashes removes trailing slashes but never turns "/" into "".
func trimTrailingSlashes(p string) string {
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" && p != "" {
		return "/"
	}

	return trimmed
}
