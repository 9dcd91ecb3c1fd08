// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

// Section names one of the fixed top-level keys of the document.
type Section string

const (
	SectionAgents   Section = "agents"
	SectionChannels Section = "channels"
	SectionModels   Section = "models"
	SectionTools    Section = "tools"
	SectionGateway  Section = "gateway"
	SectionHooks    Section = "hooks"
)

// Sections is the closed set of top-level keys the environment layer can
// produce.
var Sections = []Section{
	SectionAgents,
	SectionChannels,
	SectionModels,
	SectionTools,
	SectionGateway,
	SectionHooks,
}

// Document is the configuration built from the environment.
//
// Lists use the omitzero option: a list that was provided but has no entries
// is kept as [], while a list that was never provided is omitted.
type Document struct {
	Agents   *Agents   `json:"agents,omitempty"`
	Channels *Channels `json:"channels,omitempty"`
	Models   *Models   `json:"models,omitempty"`
	Tools    *Tools    `json:"tools,omitempty"`
	Gateway  *Gateway  `json:"gateway,omitempty"`
	Hooks    *Hooks    `json:"hooks,omitempty"`
}

// Agents holds agent-wide settings.
type Agents struct {
	Defaults *AgentDefaults `json:"defaults,omitempty"`
}

// AgentDefaults are applied to every agent unless overridden.
type AgentDefaults struct {
	Model     *ModelSelection `json:"model,omitempty"`
	Workspace string          `json:"workspace,omitempty"`
}

// ModelSelection picks the primary text model, its fallbacks and the image
// models.
type ModelSelection struct {
	Primary   string          `json:"primary,omitempty"`
	Fallbacks []string        `json:"fallbacks,omitzero"`
	Image     *ImageSelection `json:"image,omitempty"`
}

// ImageSelection picks the image model and its fallbacks.
type ImageSelection struct {
	Primary   string   `json:"primary,omitempty"`
	Fallbacks []string `json:"fallbacks,omitzero"`
}

// Channels groups the messaging integrations.
type Channels struct {
	WhatsApp *WhatsApp `json:"whatsapp,omitempty"`
	Telegram *Telegram `json:"telegram,omitempty"`
	Discord  *Discord  `json:"discord,omitempty"`
	Slack    *Slack    `json:"slack,omitempty"`
}

// Groups is the group-chat policy of a channel.
type Groups struct {
	Policy    string   `json:"policy"`
	AllowFrom []string `json:"allowFrom,omitzero"`
}

type WhatsApp struct {
	DMPolicy     string   `json:"dmPolicy,omitempty"`
	AllowFrom    []string `json:"allowFrom,omitzero"`
	Groups       *Groups  `json:"groups,omitempty"`
	SelfChatMode bool     `json:"selfChatMode,omitempty"`
	MediaMaxMB   *float64 `json:"mediaMaxMb,omitempty"`
	HistoryLimit *float64 `json:"historyLimit,omitempty"`
}

type Telegram struct {
	BotToken  string   `json:"botToken"`
	DMPolicy  string   `json:"dmPolicy,omitempty"`
	AllowFrom []string `json:"allowFrom,omitzero"`
	Groups    *Groups  `json:"groups,omitempty"`
}

type Discord struct {
	BotToken  string   `json:"botToken"`
	DMPolicy  string   `json:"dmPolicy,omitempty"`
	AllowFrom []string `json:"allowFrom,omitzero"`
	Groups    *Groups  `json:"groups,omitempty"`
}

type Slack struct {
	BotToken string  `json:"botToken"`
	AppToken string  `json:"appToken,omitempty"`
	DMPolicy string  `json:"dmPolicy,omitempty"`
	Groups   *Groups `json:"groups,omitempty"`
}

// Models holds the model provider credentials, keyed by provider name.
type Models struct {
	Providers map[string]*Provider `json:"providers,omitempty"`
}

// Provider is a model provider entry. API-key providers only fill APIKey and
// BaseURL; the AWS fields are used by Bedrock.
type Provider struct {
	APIKey          string `json:"apiKey,omitempty"`
	BaseURL         string `json:"baseUrl,omitempty"`
	AccessKeyID     string `json:"accessKeyId,omitempty"`
	SecretAccessKey string `json:"secretAccessKey,omitempty"`
	Region          string `json:"region,omitempty"`
	SessionToken    string `json:"sessionToken,omitempty"`
	ProviderFilter  string `json:"providerFilter,omitempty"`
}

// Tools groups tool integrations.
type Tools struct {
	Browser     *Browser     `json:"browser,omitempty"`
	OnePassword *OnePassword `json:"onePassword,omitempty"`
	Gog         *Gog         `json:"gog,omitempty"`
}

// Browser configures the remote CDP browser tool.
type Browser struct {
	CDPURL                   string   `json:"cdpUrl"`
	DefaultProfile           string   `json:"defaultProfile,omitempty"`
	EvaluateEnabled          bool     `json:"evaluateEnabled,omitempty"`
	SnapshotMode             string   `json:"snapshotMode,omitempty"`
	RemoteTimeoutMs          *float64 `json:"remoteTimeoutMs,omitempty"`
	RemoteHandshakeTimeoutMs *float64 `json:"remoteHandshakeTimeoutMs,omitempty"`
}

type OnePassword struct {
	ServiceAccountToken string `json:"serviceAccountToken"`
}

type Gog struct {
	KeyringPassword string `json:"keyringPassword"`
}

type Gateway struct {
	Token string `json:"token,omitempty"`
	Bind  string `json:"bind,omitempty"`
}

type Hooks struct {
	Enabled bool   `json:"enabled,omitempty"`
	Token   string `json:"token,omitempty"`
	Path    string `json:"path,omitempty"`
}
