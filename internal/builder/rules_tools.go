// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import "github.com/MKhiriev/openclaw-configure/internal/document"

const (
	envBrowserCDPURL                   = "BROWSER_CDP_URL"
	envBrowserDefaultProfile           = "BROWSER_DEFAULT_PROFILE"
	envBrowserEvaluateEnabled          = "BROWSER_EVALUATE_ENABLED"
	envBrowserSnapshotMode             = "BROWSER_SNAPSHOT_MODE"
	envBrowserRemoteTimeoutMs          = "BROWSER_REMOTE_TIMEOUT_MS"
	envBrowserRemoteHandshakeTimeoutMs = "BROWSER_REMOTE_HANDSHAKE_TIMEOUT_MS"

	envOnePasswordToken   = "OP_SERVICE_ACCOUNT_TOKEN"
	envGogKeyringPassword = "GOG_KEYRING_PASSWORD"

	envGatewayToken = "OPENCLAW_GATEWAY_TOKEN"
	envGatewayBind  = "OPENCLAW_GATEWAY_BIND"

	envHooksEnabled = "HOOKS_ENABLED"
	envHooksToken   = "HOOKS_TOKEN"
	envHooksPath    = "HOOKS_PATH"
)

func toolRules() []Rule {
	return []Rule{
		{
			Name:    "tools.browser",
			Section: document.SectionTools,
			Vars: []string{
				envBrowserCDPURL, envBrowserDefaultProfile, envBrowserEvaluateEnabled,
				envBrowserSnapshotMode, envBrowserRemoteTimeoutMs, envBrowserRemoteHandshakeTimeoutMs,
			},
			Guard: anySet(envBrowserCDPURL),
			Apply: func(in Input, doc *document.Document) {
				ensureTools(doc).Browser = &document.Browser{
					CDPURL:                   in.Env.Get(envBrowserCDPURL),
					DefaultProfile:           in.Env.Get(envBrowserDefaultProfile),
					EvaluateEnabled:          enabled(in, envBrowserEvaluateEnabled),
					SnapshotMode:             in.Env.Get(envBrowserSnapshotMode),
					RemoteTimeoutMs:          number(in, envBrowserRemoteTimeoutMs),
					RemoteHandshakeTimeoutMs: number(in, envBrowserRemoteHandshakeTimeoutMs),
				}
			},
		},
		{
			Name:    "tools.onePassword",
			Section: document.SectionTools,
			Vars:    []string{envOnePasswordToken},
			Guard:   anySet(envOnePasswordToken),
			Apply: func(in Input, doc *document.Document) {
				ensureTools(doc).OnePassword = &document.OnePassword{
					ServiceAccountToken: in.Env.Get(envOnePasswordToken),
				}
			},
		},
		{
			Name:    "tools.gog",
			Section: document.SectionTools,
			Vars:    []string{envGogKeyringPassword},
			Guard:   anySet(envGogKeyringPassword),
			Apply: func(in Input, doc *document.Document) {
				ensureTools(doc).Gog = &document.Gog{KeyringPassword: in.Env.Get(envGogKeyringPassword)}
			},
		},
	}
}

func gatewayRules() []Rule {
	return []Rule{
		{
			Name:    "gateway",
			Section: document.SectionGateway,
			Vars:    []string{envGatewayToken, envGatewayBind},
			Guard:   anySet(envGatewayToken, envGatewayBind),
			Apply: func(in Input, doc *document.Document) {
				doc.Gateway = &document.Gateway{
					Token: in.Env.Get(envGatewayToken),
					Bind:  in.Env.Get(envGatewayBind),
				}
			},
		},
		{
			Name:    "hooks",
			Section: document.SectionHooks,
			Vars:    []string{envHooksEnabled, envHooksToken, envHooksPath},
			Guard:   func(in Input) bool { return enabled(in, envHooksEnabled) },
			Apply: func(in Input, doc *document.Document) {
				doc.Hooks = &document.Hooks{
					Enabled: true,
					Token:   in.Env.Get(envHooksToken),
					Path:    in.Env.Get(envHooksPath),
				}
			},
		},
	}
}
