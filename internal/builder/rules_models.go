// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import "github.com/MKhiriev/openclaw-configure/internal/document"

const defaultBedrockRegion = "us-east-1"

// apiKeyProvider describes a provider configured by a single API key and an
// optional base URL override.
type apiKeyProvider struct {
	name       string
	keyVar     string
	baseURLVar string
}

var apiKeyProviders = []apiKeyProvider{
	{name: "anthropic", keyVar: "ANTHROPIC_API_KEY", baseURLVar: "ANTHROPIC_BASE_URL"},
	{name: "openai", keyVar: "OPENAI_API_KEY", baseURLVar: "OPENAI_BASE_URL"},
	{name: "openrouter", keyVar: "OPENROUTER_API_KEY"},
	{name: "gemini", keyVar: "GEMINI_API_KEY"},
	{name: "xai", keyVar: "XAI_API_KEY"},
	{name: "groq", keyVar: "GROQ_API_KEY"},
	{name: "mistral", keyVar: "MISTRAL_API_KEY"},
	{name: "cerebras", keyVar: "CEREBRAS_API_KEY"},
	{name: "venice", keyVar: "VENICE_API_KEY"},
	{name: "moonshot", keyVar: "MOONSHOT_API_KEY", baseURLVar: "MOONSHOT_BASE_URL"},
	{name: "kimi", keyVar: "KIMI_API_KEY", baseURLVar: "KIMI_BASE_URL"},
	{name: "zai", keyVar: "ZAI_API_KEY"},
	{name: "minimax", keyVar: "MINIMAX_API_KEY"},
	{name: "aiGateway", keyVar: "AI_GATEWAY_API_KEY", baseURLVar: "AI_GATEWAY_BASE_URL"},
	{name: "opencode", keyVar: "OPENCODE_API_KEY"},
	{name: "synthetic", keyVar: "SYNTHETIC_API_KEY"},
	{name: "copilot", keyVar: "COPILOT_GITHUB_TOKEN"},
	{name: "xiaomi", keyVar: "XIAOMI_API_KEY"},
	{name: "deepgram", keyVar: "DEEPGRAM_API_KEY"},
}

const (
	envAWSAccessKeyID        = "AWS_ACCESS_KEY_ID"
	envAWSSecretAccessKey    = "AWS_SECRET_ACCESS_KEY"
	envAWSRegion             = "AWS_REGION"
	envAWSSessionToken       = "AWS_SESSION_TOKEN"
	envBedrockProviderFilter = "BEDROCK_PROVIDER_FILTER"
	envOllamaBaseURL         = "OLLAMA_BASE_URL"
)

func modelRules() []Rule {
	rules := make([]Rule, 0, len(apiKeyProviders)+2)
	for _, p := range apiKeyProviders {
		rules = append(rules, p.rule())
	}

	rules = append(rules,
		Rule{
			Name:    "models.providers.bedrock",
			Section: document.SectionModels,
			Vars: []string{
				envAWSAccessKeyID, envAWSSecretAccessKey, envAWSRegion,
				envAWSSessionToken, envBedrockProviderFilter,
			},
			Guard: func(in Input) bool {
				return in.Env.AllSet(envAWSAccessKeyID, envAWSSecretAccessKey)
			},
			Apply: applyBedrock,
		},
		Rule{
			Name:    "models.providers.ollama",
			Section: document.SectionModels,
			Vars:    []string{envOllamaBaseURL},
			Guard:   anySet(envOllamaBaseURL),
			Apply: func(in Input, doc *document.Document) {
				setProvider(doc, "ollama", &document.Provider{BaseURL: in.Env.Get(envOllamaBaseURL)})
			},
		},
	)

	return rules
}

func (p apiKeyProvider) rule() Rule {
	vars := []string{p.keyVar}
	if p.baseURLVar != "" {
		vars = append(vars, p.baseURLVar)
	}

	return Rule{
		Name:    "models.providers." + p.name,
		Section: document.SectionModels,
		Vars:    vars,
		Guard:   anySet(p.keyVar),
		Apply: func(in Input, doc *document.Document) {
			provider := &document.Provider{APIKey: in.Env.Get(p.keyVar)}
			if p.baseURLVar != "" {
				provider.BaseURL = in.Env.Get(p.baseURLVar)
			}
			setProvider(doc, p.name, provider)
		},
	}
}

func applyBedrock(in Input, doc *document.Document) {
	region := in.Env.Get(envAWSRegion)
	if region == "" {
		region = defaultBedrockRegion
	}

	setProvider(doc, "bedrock", &document.Provider{
		AccessKeyID:     in.Env.Get(envAWSAccessKeyID),
		SecretAccessKey: in.Env.Get(envAWSSecretAccessKey),
		Region:          region,
		SessionToken:    in.Env.Get(envAWSSessionToken),
		ProviderFilter:  in.Env.Get(envBedrockProviderFilter),
	})
}
