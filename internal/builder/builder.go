// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"maps"
	"slices"

	"github.com/MKhiriev/openclaw-configure/internal/document"
)

// Rules returns the full rule table. A new slice is returned on every call.
func Rules() []Rule {
	var rules []Rule
	rules = append(rules, agentRules()...)
	rules = append(rules, modelRules()...)
	rules = append(rules, gatewayRules()...)
	rules = append(rules, channelRules()...)
	rules = append(rules, toolRules()...)

	return rules
}

// Build evaluates every rule against in and returns the pruned document
// together with the names of the rules that applied.
func Build(in Input) (*document.Document, []string) {
	return BuildWith(Rules(), in)
}

// BuildWith is [Build] over an explicit rule table.
func BuildWith(rules []Rule, in Input) (*document.Document, []string) {
	doc := &document.Document{}
	applied := make([]string, 0, len(rules))

	for _, rule := range rules {
		if rule.Guard == nil || !rule.Guard(in) {
			continue
		}
		rule.Apply(in, doc)
		applied = append(applied, rule.Name)
	}

	return doc.Prune(), applied
}

// Variables returns every environment variable recognised by the rule
// table, sorted and without duplicates.
func Variables() []string {
	set := make(map[string]struct{})
	for _, rule := range Rules() {
		for _, name := range rule.Vars {
			set[name] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(set))
}
