// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/openclaw-configure/internal/app"
	"github.com/MKhiriev/openclaw-configure/internal/builder"
	"github.com/MKhiriev/openclaw-configure/internal/config"
	"github.com/MKhiriev/openclaw-configure/internal/environment"
	"github.com/MKhiriev/openclaw-configure/internal/generator"
	"github.com/MKhiriev/openclaw-configure/internal/logger"
	"github.com/MKhiriev/openclaw-configure/internal/store"
)

const appName = "openclaw-configure"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Generate the OpenClaw configuration from environment variables",
		Long: `openclaw-configure builds openclaw.json from environment variables.

The custom config (if any) is the base, the previously generated config is
merged over it, and values derived from the environment are merged last.
The result is written to the state directory together with a backup copy.

Run 'openclaw-configure vars' to list every recognised variable.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigure(cmd)
		},
	}

	config.RegisterFlags(root.Flags())

	root.AddCommand(newVarsCmd(), newVersionCmd())

	return root
}

func runConfigure(cmd *cobra.Command) error {
	snap := environment.Capture()

	settings, err := config.GetSettings(snap, cmd.Flags())
	if err != nil {
		return fmt.Errorf("error getting settings: %w", err)
	}

	envFile := settings.Run.EnvFile
	if envFile != "" {
		if snap, err = snap.WithDotenv(envFile); err != nil {
			return err
		}
		// the env file may carry settings of its own
		if settings, err = config.GetSettings(snap, cmd.Flags()); err != nil {
			return fmt.Errorf("error getting settings: %w", err)
		}
	}

	level, err := settings.Level()
	if err != nil {
		return err
	}
	log := logger.NewLogger(appName, level, settings.Run.PrettyLogs)

	if envFile != "" {
		log.Info().Str("path", envFile).Msg(app.MsgLoadedEnvFile)
	}
	log.Debug().Int("variables", snap.Len()).Bool("dry_run", settings.Run.DryRun).Msg("received settings")

	files := store.NewFileStore(afero.NewOsFs(), store.Paths{
		ConfigFile: settings.Paths.ConfigFile,
		BackupFile: settings.Paths.BackupFile,
	}, log)

	_, err = generator.New(settings, snap, files, files, cmd.OutOrStdout(), log).Run()
	if err != nil {
		log.Error().Err(err).Msg("configuration failed")
		return err
	}

	return nil
}

func newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars",
		Short: "List the environment variables that shape the generated config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range builder.Variables() {
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printBuildInfo(cmd.OutOrStdout())
		},
	}
}
