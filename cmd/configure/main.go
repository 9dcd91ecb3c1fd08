// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command openclaw-configure renders the OpenClaw gateway configuration from
// environment variables, merged over optional custom and persisted files.
// It is meant to run once as a container entrypoint before the gateway starts.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/openclaw-configure/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "openclaw-configure:", err)
		os.Exit(1)
	}
}

func printBuildInfo(w io.Writer) error {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(w)
}
