// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/openclaw-configure/internal/document"
	"github.com/MKhiriev/openclaw-configure/internal/environment"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func buildTree(t *testing.T, vars map[string]string, workspace string) document.Tree {
	t.Helper()
	doc, _ := Build(Input{Env: environment.FromMap(vars), Workspace: workspace})
	tree, err := doc.Tree()
	require.NoError(t, err)
	return tree
}

func decode(t *testing.T, s string) document.Tree {
	t.Helper()
	tree, err := document.Decode([]byte(s))
	require.NoError(t, err)
	return tree
}

// ── Build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyEnvironment(t *testing.T) {
	doc, applied := Build(Input{})

	assert.Equal(t, &document.Document{}, doc)
	assert.Empty(t, applied)
}

func TestBuild_WorkspaceOnly(t *testing.T) {
	got := buildTree(t, nil, "/data/workspace")

	assert.Equal(t, decode(t, `{"agents":{"defaults":{"workspace":"/data/workspace"}}}`), got)
}

func TestBuild_TelegramScenario(t *testing.T) {
	got := buildTree(t, map[string]string{
		"TELEGRAM_BOT_TOKEN": "abc123",
		"TELEGRAM_DM_POLICY": "allow",
	}, "")

	assert.Equal(t, decode(t, `{"channels":{"telegram":{"botToken":"abc123","dmPolicy":"allow"}}}`), got)
}

func TestBuild_Rules(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{
			name: "primary and fallback models",
			vars: map[string]string{
				"OPENCLAW_PRIMARY_MODEL":   "anthropic/claude",
				"OPENCLAW_FALLBACK_MODELS": "openai/gpt, groq/llama ,",
			},
			want: `{"agents":{"defaults":{"model":{"primary":"anthropic/claude","fallbacks":["openai/gpt","groq/llama"]}}}}`,
		},
		{
			name: "image models only",
			vars: map[string]string{
				"OPENCLAW_IMAGE_MODEL_FALLBACKS": "a,b",
			},
			want: `{"agents":{"defaults":{"model":{"image":{"fallbacks":["a","b"]}}}}}`,
		},
		{
			name: "api key provider with base url",
			vars: map[string]string{
				"ANTHROPIC_API_KEY":  "sk-ant",
				"ANTHROPIC_BASE_URL": "https://proxy",
				"GROQ_API_KEY":       "gsk",
			},
			want: `{"models":{"providers":{"anthropic":{"apiKey":"sk-ant","baseUrl":"https://proxy"},"groq":{"apiKey":"gsk"}}}}`,
		},
		{
			name: "base url without key is ignored",
			vars: map[string]string{"OPENAI_BASE_URL": "https://proxy"},
			want: `{}`,
		},
		{
			name: "copilot and ai gateway names",
			vars: map[string]string{
				"COPILOT_GITHUB_TOKEN": "ghp",
				"AI_GATEWAY_API_KEY":   "gw",
			},
			want: `{"models":{"providers":{"copilot":{"apiKey":"ghp"},"aiGateway":{"apiKey":"gw"}}}}`,
		},
		{
			name: "bedrock with default region",
			vars: map[string]string{
				"AWS_ACCESS_KEY_ID":     "AKIA",
				"AWS_SECRET_ACCESS_KEY": "secret",
			},
			want: `{"models":{"providers":{"bedrock":{"accessKeyId":"AKIA","secretAccessKey":"secret","region":"us-east-1"}}}}`,
		},
		{
			name: "bedrock full",
			vars: map[string]string{
				"AWS_ACCESS_KEY_ID":       "AKIA",
				"AWS_SECRET_ACCESS_KEY":   "secret",
				"AWS_REGION":              "eu-west-1",
				"AWS_SESSION_TOKEN":       "session",
				"BEDROCK_PROVIDER_FILTER": "anthropic",
			},
			want: `{"models":{"providers":{"bedrock":{"accessKeyId":"AKIA","secretAccessKey":"secret","region":"eu-west-1","sessionToken":"session","providerFilter":"anthropic"}}}}`,
		},
		{
			name: "bedrock needs both keys",
			vars: map[string]string{"AWS_ACCESS_KEY_ID": "AKIA"},
			want: `{}`,
		},
		{
			name: "ollama",
			vars: map[string]string{"OLLAMA_BASE_URL": "http://ollama:11434"},
			want: `{"models":{"providers":{"ollama":{"baseUrl":"http://ollama:11434"}}}}`,
		},
		{
			name: "gateway",
			vars: map[string]string{"OPENCLAW_GATEWAY_TOKEN": "tok", "OPENCLAW_GATEWAY_BIND": "lan"},
			want: `{"gateway":{"token":"tok","bind":"lan"}}`,
		},
		{
			name: "hooks enabled",
			vars: map[string]string{"HOOKS_ENABLED": "TRUE", "HOOKS_TOKEN": "t", "HOOKS_PATH": "/hooks"},
			want: `{"hooks":{"enabled":true,"token":"t","path":"/hooks"}}`,
		},
		{
			name: "hooks not enabled ignores token",
			vars: map[string]string{"HOOKS_ENABLED": "no", "HOOKS_TOKEN": "t"},
			want: `{}`,
		},
		{
			name: "whatsapp enabled alone",
			vars: map[string]string{"WHATSAPP_ENABLED": "1"},
			want: `{"channels":{"whatsapp":{}}}`,
		},
		{
			name: "whatsapp full",
			vars: map[string]string{
				"WHATSAPP_DM_POLICY":        "allowlist",
				"WHATSAPP_ALLOW_FROM":       "+1555, +1666",
				"WHATSAPP_GROUP_POLICY":     "open",
				"WHATSAPP_GROUP_ALLOW_FROM": "g1",
				"WHATSAPP_SELF_CHAT_MODE":   "true",
				"WHATSAPP_MEDIA_MAX_MB":     "50",
				"WHATSAPP_HISTORY_LIMIT":    "not-a-number",
			},
			want: `{"channels":{"whatsapp":{
				"dmPolicy":"allowlist","allowFrom":["+1555","+1666"],
				"groups":{"policy":"open","allowFrom":["g1"]},
				"selfChatMode":true,"mediaMaxMb":50}}}`,
		},
		{
			name: "whatsapp disabled and nothing else",
			vars: map[string]string{"WHATSAPP_ENABLED": "false", "WHATSAPP_GROUP_POLICY": "open"},
			want: `{}`,
		},
		{
			name: "telegram groups and empty allow list",
			vars: map[string]string{
				"TELEGRAM_BOT_TOKEN":        "abc",
				"TELEGRAM_ALLOW_FROM":       " , ",
				"TELEGRAM_GROUP_POLICY":     "allowlist",
				"TELEGRAM_GROUP_ALLOW_FROM": "-100123",
			},
			want: `{"channels":{"telegram":{"botToken":"abc","allowFrom":[],"groups":{"policy":"allowlist","allowFrom":["-100123"]}}}}`,
		},
		{
			name: "telegram group allow list without policy",
			vars: map[string]string{"TELEGRAM_BOT_TOKEN": "abc", "TELEGRAM_GROUP_ALLOW_FROM": "x"},
			want: `{"channels":{"telegram":{"botToken":"abc"}}}`,
		},
		{
			name: "discord",
			vars: map[string]string{
				"DISCORD_BOT_TOKEN":     "d",
				"DISCORD_DM_POLICY":     "pairing",
				"DISCORD_DM_ALLOW_FROM": "u1,u2",
				"DISCORD_GROUP_POLICY":  "open",
			},
			want: `{"channels":{"discord":{"botToken":"d","dmPolicy":"pairing","allowFrom":["u1","u2"],"groups":{"policy":"open"}}}}`,
		},
		{
			name: "slack",
			vars: map[string]string{
				"SLACK_BOT_TOKEN":    "xoxb",
				"SLACK_APP_TOKEN":    "xapp",
				"SLACK_DM_POLICY":    "open",
				"SLACK_GROUP_POLICY": "disabled",
			},
			want: `{"channels":{"slack":{"botToken":"xoxb","appToken":"xapp","dmPolicy":"open","groups":{"policy":"disabled"}}}}`,
		},
		{
			name: "slack app token without bot token",
			vars: map[string]string{"SLACK_APP_TOKEN": "xapp"},
			want: `{}`,
		},
		{
			name: "browser",
			vars: map[string]string{
				"BROWSER_CDP_URL":                     "ws://chrome:9222",
				"BROWSER_DEFAULT_PROFILE":             "work",
				"BROWSER_EVALUATE_ENABLED":            "true",
				"BROWSER_SNAPSHOT_MODE":               "aria",
				"BROWSER_REMOTE_TIMEOUT_MS":           "1500",
				"BROWSER_REMOTE_HANDSHAKE_TIMEOUT_MS": "3000",
			},
			want: `{"tools":{"browser":{"cdpUrl":"ws://chrome:9222","defaultProfile":"work","evaluateEnabled":true,"snapshotMode":"aria","remoteTimeoutMs":1500,"remoteHandshakeTimeoutMs":3000}}}`,
		},
		{
			name: "browser evaluate false is omitted",
			vars: map[string]string{"BROWSER_CDP_URL": "ws://chrome:9222", "BROWSER_EVALUATE_ENABLED": "false"},
			want: `{"tools":{"browser":{"cdpUrl":"ws://chrome:9222"}}}`,
		},
		{
			name: "credential tools",
			vars: map[string]string{"OP_SERVICE_ACCOUNT_TOKEN": "ops", "GOG_KEYRING_PASSWORD": "pw"},
			want: `{"tools":{"onePassword":{"serviceAccountToken":"ops"},"gog":{"keyringPassword":"pw"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildTree(t, tt.vars, "")
			assert.Equal(t, decode(t, tt.want), got)
		})
	}
}

// TestBuild_OmitsUntouchedSections verifies that only sections with a
// matching variable appear in the output.
func TestBuild_OmitsUntouchedSections(t *testing.T) {
	doc, applied := Build(Input{Env: environment.FromMap(map[string]string{
		"OPENCLAW_GATEWAY_BIND": "0.0.0.0:2",
	})})

	assert.Equal(t, []string{"gateway"}, applied)
	assert.NotNil(t, doc.Gateway)
	for _, section := range document.Sections {
		if section != document.SectionGateway {
			assert.True(t, doc.IsEmpty(section), section)
		}
	}
}

// TestBuild_OrderIndependent verifies that shuffling the rule table does not
// change the resulting document.
func TestBuild_OrderIndependent(t *testing.T) {
	in := Input{
		Env: environment.FromMap(map[string]string{
			"OPENCLAW_PRIMARY_MODEL":       "p",
			"OPENCLAW_IMAGE_MODEL_PRIMARY": "i",
			"ANTHROPIC_API_KEY":            "a",
			"OLLAMA_BASE_URL":              "o",
			"TELEGRAM_BOT_TOKEN":           "t",
			"WHATSAPP_ENABLED":             "true",
			"BROWSER_CDP_URL":              "b",
			"GOG_KEYRING_PASSWORD":         "g",
			"HOOKS_ENABLED":                "1",
		}),
		Workspace: "/ws",
	}

	want, _ := Build(in)

	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		rules := Rules()
		rng.Shuffle(len(rules), func(i, j int) { rules[i], rules[j] = rules[j], rules[i] })

		got, _ := BuildWith(rules, in)
		assert.Equal(t, want, got)
	}
}

// TestBuild_Idempotent verifies that two builds from the same snapshot encode
// to identical bytes.
func TestBuild_Idempotent(t *testing.T) {
	vars := map[string]string{
		"OPENAI_API_KEY":      "sk",
		"MISTRAL_API_KEY":     "m",
		"DISCORD_BOT_TOKEN":   "d",
		"WHATSAPP_ALLOW_FROM": "1,2",
	}

	first, err := document.Encode(buildTree(t, vars, "/ws"))
	require.NoError(t, err)
	second, err := document.Encode(buildTree(t, vars, "/ws"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildWith_SkipsRulesWithoutGuard(t *testing.T) {
	rules := []Rule{{
		Name:  "no-guard",
		Apply: func(Input, *document.Document) { t.Fatal("must not be applied") },
	}}

	doc, applied := BuildWith(rules, Input{})

	assert.Equal(t, &document.Document{}, doc)
	assert.Empty(t, applied)
}

// ── Rules / Variables ─────────────────────────────────────────────────────────

func TestRules_WellFormed(t *testing.T) {
	names := make(map[string]bool)
	for _, rule := range Rules() {
		assert.NotEmpty(t, rule.Name)
		assert.False(t, names[rule.Name], "duplicate rule %s", rule.Name)
		names[rule.Name] = true

		assert.Contains(t, document.Sections, rule.Section, rule.Name)
		assert.NotNil(t, rule.Guard, rule.Name)
		assert.NotNil(t, rule.Apply, rule.Name)
	}
}

func TestVariables(t *testing.T) {
	vars := Variables()

	assert.True(t, slices.IsSorted(vars))
	assert.Equal(t, len(vars), len(slices.Compact(slices.Clone(vars))))
	for _, name := range []string{
		"TELEGRAM_BOT_TOKEN", "OPENCLAW_GATEWAY_BIND", "AWS_REGION",
		"HOOKS_ENABLED", "BROWSER_REMOTE_HANDSHAKE_TIMEOUT_MS", "DEEPGRAM_API_KEY",
	} {
		assert.Contains(t, vars, name)
	}
}
