// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"github.com/MKhiriev/openclaw-configure/internal/document"
	"github.com/MKhiriev/openclaw-configure/internal/environment"
)

// Input is everything a rule may read.
type Input struct {
	// Env is the captured environment.
	Env environment.Snapshot
	// Workspace is the resolved agent workspace directory.
	Workspace string
}

// Rule is a single entry of the builder table.
type Rule struct {
	// Name identifies the rule in logs, e.g. "channels.telegram".
	Name string
	// Section is the top-level key the rule writes under.
	Section document.Section
	// Vars lists every environment variable the rule reads.
	Vars []string
	// Guard reports whether the rule applies to the input.
	Guard func(in Input) bool
	// Apply writes the rule's part of the document.
	Apply func(in Input, doc *document.Document)
}

// anySet is the common guard: the rule applies when any of names is set.
func anySet(names ...string) func(Input) bool {
	return func(in Input) bool {
		return in.Env.AnySet(names...)
	}
}

func stringList(in Input, name string) []string {
	list, _ := environment.ParseStringList(in.Env.Get(name))
	return list
}

func number(in Input, name string) *float64 {
	n, ok := environment.ParseInteger(in.Env.Get(name))
	if !ok {
		return nil
	}

	return &n
}

func enabled(in Input, name string) bool {
	v, _ := environment.ParseBool(in.Env.Get(name))
	return v
}

func ensureAgentDefaults(doc *document.Document) *document.AgentDefaults {
	if doc.Agents == nil {
		doc.Agents = &document.Agents{}
	}
	if doc.Agents.Defaults == nil {
		doc.Agents.Defaults = &document.AgentDefaults{}
	}

	return doc.Agents.Defaults
}

func ensureChannels(doc *document.Document) *document.Channels {
	if doc.Channels == nil {
		doc.Channels = &document.Channels{}
	}

	return doc.Channels
}

func ensureTools(doc *document.Document) *document.Tools {
	if doc.Tools == nil {
		doc.Tools = &document.Tools{}
	}

	return doc.Tools
}

func setProvider(doc *document.Document, name string, p *document.Provider) {
	if doc.Models == nil {
		doc.Models = &document.Models{}
	}
	if doc.Models.Providers == nil {
		doc.Models.Providers = make(map[string]*document.Provider)
	}

	doc.Models.Providers[name] = p
}
