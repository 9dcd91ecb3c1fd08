// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/MKhiriev/openclaw-configure/internal/app"
	"github.com/MKhiriev/openclaw-configure/internal/builder"
	"github.com/MKhiriev/openclaw-configure/internal/config"
	"github.com/MKhiriev/openclaw-configure/internal/document"
	"github.com/MKhiriev/openclaw-configure/internal/environment"
	"github.com/MKhiriev/openclaw-configure/internal/logger"
	"github.com/MKhiriev/openclaw-configure/internal/store"
)

// Generator produces the final configuration document from its layers.
type Generator struct {
	settings *config.Settings
	env      environment.Snapshot
	reader   store.LayerReader
	writer   store.DocumentWriter
	out      io.Writer
	log      *logger.Logger
}

// New constructs a Generator. out receives the document on dry runs.
func New(
	settings *config.Settings,
	env environment.Snapshot,
	reader store.LayerReader,
	writer store.DocumentWriter,
	out io.Writer,
	log *logger.Logger,
) *Generator {
	return &Generator{
		settings: settings,
		env:      env,
		reader:   reader,
		writer:   writer,
		out:      out,
		log:      log.Component("generator"),
	}
}

// Run performs one pass and returns the document that was written (or
// printed). Only directory preparation and write failures are returned;
// unusable layers are skipped.
func (g *Generator) Run() (document.Tree, error) {
	paths := g.settings.Paths
	run := g.settings.Run

	g.log.Info().Str("path", paths.StateDir).Msg(app.MsgStateDir)
	g.log.Info().Str("path", paths.WorkspaceDir).Msg(app.MsgWorkspaceDir)
	g.log.Info().Str("path", paths.ConfigFile).Msg(app.MsgConfigFile)

	if !run.DryRun {
		if err := g.writer.Prepare(paths.StateDir, paths.WorkspaceDir, filepath.Dir(paths.ConfigFile)); err != nil {
			return nil, err
		}
		g.log.Debug().Msg(app.MsgPreparedDirs)
	}

	custom := g.customLayer()
	persisted := g.persistedLayer()

	envLayer, err := g.environmentLayer()
	if err != nil {
		return nil, err
	}

	merged, err := document.MergeLayers(custom, persisted, envLayer)
	if err != nil {
		return nil, err
	}
	result := merged.Prune()

	if run.DryRun {
		return result, g.print(result)
	}

	if err := g.writer.Write(result); err != nil {
		return nil, err
	}
	g.log.Info().Int("sections", len(result)).Msg(app.MsgWroteConfig)

	return result, nil
}

func (g *Generator) customLayer() document.Tree {
	path := g.settings.Paths.CustomConfigFile

	tree, ok := g.reader.ReadLayer(path)
	if !ok {
		g.log.Info().Str("path", path).Msg(app.MsgNoCustomConfig)
		return nil
	}
	g.log.Info().Str("path", path).Msg(app.MsgLoadedCustomConfig)

	return tree
}

func (g *Generator) persistedLayer() document.Tree {
	path := g.settings.Paths.ConfigFile

	if g.settings.Run.SkipPersisted {
		g.log.Info().Str("path", path).Msg(app.MsgSkippedPersistedConfig)
		return nil
	}

	tree, ok := g.reader.ReadLayer(path)
	if !ok {
		g.log.Info().Str("path", path).Msg(app.MsgNoPersistedConfig)
		return nil
	}
	g.log.Info().Str("path", path).Msg(app.MsgLoadedPersistedConfig)

	return tree
}

func (g *Generator) environmentLayer() (document.Tree, error) {
	doc, applied := builder.Build(builder.Input{
		Env:       g.env,
		Workspace: g.settings.Paths.WorkspaceDir,
	})

	tree, err := doc.Tree()
	if err != nil {
		return nil, fmt.Errorf("error building environment layer: %w", err)
	}
	g.log.Info().Strs("rules", applied).Msg(app.MsgAppliedEnvironment)

	return tree, nil
}

func (g *Generator) print(tree document.Tree) error {
	data, err := document.Encode(tree)
	if err != nil {
		return err
	}
	g.log.Info().Msg(app.MsgDryRun)

	if _, err := g.out.Write(data); err != nil {
		return fmt.Errorf("error printing config: %w", err)
	}

	return nil
}
