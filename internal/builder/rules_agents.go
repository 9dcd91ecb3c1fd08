// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import "github.com/MKhiriev/openclaw-configure/internal/document"

const (
	envPrimaryModel        = "OPENCLAW_PRIMARY_MODEL"
	envFallbackModels      = "OPENCLAW_FALLBACK_MODELS"
	envImageModelPrimary   = "OPENCLAW_IMAGE_MODEL_PRIMARY"
	envImageModelFallbacks = "OPENCLAW_IMAGE_MODEL_FALLBACKS"
)

func agentRules() []Rule {
	return []Rule{
		{
			Name:    "agents.model",
			Section: document.SectionAgents,
			Vars:    []string{envPrimaryModel, envFallbackModels, envImageModelPrimary, envImageModelFallbacks},
			Guard:   anySet(envPrimaryModel, envFallbackModels, envImageModelPrimary, envImageModelFallbacks),
			Apply:   applyAgentModel,
		},
		{
			Name:    "agents.workspace",
			Section: document.SectionAgents,
			Guard:   func(in Input) bool { return in.Workspace != "" },
			Apply: func(in Input, doc *document.Document) {
				ensureAgentDefaults(doc).Workspace = in.Workspace
			},
		},
	}
}

func applyAgentModel(in Input, doc *document.Document) {
	model := &document.ModelSelection{
		Primary:   in.Env.Get(envPrimaryModel),
		Fallbacks: stringList(in, envFallbackModels),
	}

	if in.Env.AnySet(envImageModelPrimary, envImageModelFallbacks) {
		model.Image = &document.ImageSelection{
			Primary:   in.Env.Get(envImageModelPrimary),
			Fallbacks: stringList(in, envImageModelFallbacks),
		}
	}

	ensureAgentDefaults(doc).Model = model
}
