// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/openclaw-configure/internal/environment"
)

// parseEnv populates cfg from the environment snapshot using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [Settings] and its nested types. The live process environment
// is never consulted.
//
// Returns a wrapped error if env.ParseWithOptions fails (e.g. a value cannot
// be converted to the target type).
func parseEnv(cfg any, snap environment.Snapshot) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: snap.Map()})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
