// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

// IsEmpty reports whether section would serialize to an empty object (or is
// absent).
func (d *Document) IsEmpty(section Section) bool {
	switch section {
	case SectionAgents:
		return d.Agents == nil || d.Agents.Defaults == nil
	case SectionChannels:
		c := d.Channels
		return c == nil || (c.WhatsApp == nil && c.Telegram == nil && c.Discord == nil && c.Slack == nil)
	case SectionModels:
		return d.Models == nil || len(d.Models.Providers) == 0
	case SectionTools:
		t := d.Tools
		return t == nil || (t.Browser == nil && t.OnePassword == nil && t.Gog == nil)
	case SectionGateway:
		return d.Gateway == nil || *d.Gateway == Gateway{}
	case SectionHooks:
		return d.Hooks == nil || *d.Hooks == Hooks{}
	default:
		return true
	}
}

// Prune drops every section that is empty, so no top-level key is ever
// serialized as {}.
func (d *Document) Prune() *Document {
	for _, section := range Sections {
		if !d.IsEmpty(section) {
			continue
		}
		switch section {
		case SectionAgents:
			d.Agents = nil
		case SectionChannels:
			d.Channels = nil
		case SectionModels:
			d.Models = nil
		case SectionTools:
			d.Tools = nil
		case SectionGateway:
			d.Gateway = nil
		case SectionHooks:
			d.Hooks = nil
		}
	}

	return d
}

// Prune removes every top-level key whose value is an empty object. Keys that
// are not objects are left alone.
func (t Tree) Prune() Tree {
	for key, value := range t {
		if obj, ok := asObject(value); ok && len(obj) == 0 {
			delete(t, key)
		}
	}

	return t
}
