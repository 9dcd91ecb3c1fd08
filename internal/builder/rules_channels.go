// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"github.com/MKhiriev/openclaw-configure/internal/document"
	"github.com/MKhiriev/openclaw-configure/internal/environment"
)

const (
	envWhatsAppEnabled        = "WHATSAPP_ENABLED"
	envWhatsAppDMPolicy       = "WHATSAPP_DM_POLICY"
	envWhatsAppAllowFrom      = "WHATSAPP_ALLOW_FROM"
	envWhatsAppGroupPolicy    = "WHATSAPP_GROUP_POLICY"
	envWhatsAppGroupAllowFrom = "WHATSAPP_GROUP_ALLOW_FROM"
	envWhatsAppSelfChatMode   = "WHATSAPP_SELF_CHAT_MODE"
	envWhatsAppMediaMaxMB     = "WHATSAPP_MEDIA_MAX_MB"
	envWhatsAppHistoryLimit   = "WHATSAPP_HISTORY_LIMIT"

	envTelegramBotToken       = "TELEGRAM_BOT_TOKEN"
	envTelegramDMPolicy       = "TELEGRAM_DM_POLICY"
	envTelegramAllowFrom      = "TELEGRAM_ALLOW_FROM"
	envTelegramGroupPolicy    = "TELEGRAM_GROUP_POLICY"
	envTelegramGroupAllowFrom = "TELEGRAM_GROUP_ALLOW_FROM"

	envDiscordBotToken    = "DISCORD_BOT_TOKEN"
	envDiscordDMPolicy    = "DISCORD_DM_POLICY"
	envDiscordAllowFrom   = "DISCORD_DM_ALLOW_FROM"
	envDiscordGroupPolicy = "DISCORD_GROUP_POLICY"

	envSlackBotToken    = "SLACK_BOT_TOKEN"
	envSlackAppToken    = "SLACK_APP_TOKEN"
	envSlackDMPolicy    = "SLACK_DM_POLICY"
	envSlackGroupPolicy = "SLACK_GROUP_POLICY"
)

func channelRules() []Rule {
	return []Rule{
		{
			Name:    "channels.whatsapp",
			Section: document.SectionChannels,
			Vars: []string{
				envWhatsAppEnabled, envWhatsAppDMPolicy, envWhatsAppAllowFrom,
				envWhatsAppGroupPolicy, envWhatsAppGroupAllowFrom, envWhatsAppSelfChatMode,
				envWhatsAppMediaMaxMB, envWhatsAppHistoryLimit,
			},
			Guard: func(in Input) bool {
				return enabled(in, envWhatsAppEnabled) || in.Env.AnySet(envWhatsAppDMPolicy, envWhatsAppAllowFrom)
			},
			Apply: applyWhatsApp,
		},
		{
			Name:    "channels.telegram",
			Section: document.SectionChannels,
			Vars: []string{
				envTelegramBotToken, envTelegramDMPolicy, envTelegramAllowFrom,
				envTelegramGroupPolicy, envTelegramGroupAllowFrom,
			},
			Guard: anySet(envTelegramBotToken),
			Apply: applyTelegram,
		},
		{
			Name:    "channels.discord",
			Section: document.SectionChannels,
			Vars:    []string{envDiscordBotToken, envDiscordDMPolicy, envDiscordAllowFrom, envDiscordGroupPolicy},
			Guard:   anySet(envDiscordBotToken),
			Apply:   applyDiscord,
		},
		{
			Name:    "channels.slack",
			Section: document.SectionChannels,
			Vars:    []string{envSlackBotToken, envSlackAppToken, envSlackDMPolicy, envSlackGroupPolicy},
			Guard:   anySet(envSlackBotToken),
			Apply:   applySlack,
		},
	}
}

// groups returns the group policy object, or nil when policyVar is unset.
// allowFromVar may be empty for channels without a group allow-list.
func groups(env environment.Snapshot, policyVar, allowFromVar string) *document.Groups {
	policy := env.Get(policyVar)
	if policy == "" {
		return nil
	}

	g := &document.Groups{Policy: policy}
	if allowFromVar != "" {
		g.AllowFrom, _ = environment.ParseStringList(env.Get(allowFromVar))
	}

	return g
}

func applyWhatsApp(in Input, doc *document.Document) {
	wa := &document.WhatsApp{
		DMPolicy:     in.Env.Get(envWhatsAppDMPolicy),
		AllowFrom:    stringList(in, envWhatsAppAllowFrom),
		Groups:       groups(in.Env, envWhatsAppGroupPolicy, envWhatsAppGroupAllowFrom),
		SelfChatMode: enabled(in, envWhatsAppSelfChatMode),
		MediaMaxMB:   number(in, envWhatsAppMediaMaxMB),
		HistoryLimit: number(in, envWhatsAppHistoryLimit),
	}

	ensureChannels(doc).WhatsApp = wa
}

func applyTelegram(in Input, doc *document.Document) {
	ensureChannels(doc).Telegram = &document.Telegram{
		BotToken:  in.Env.Get(envTelegramBotToken),
		DMPolicy:  in.Env.Get(envTelegramDMPolicy),
		AllowFrom: stringList(in, envTelegramAllowFrom),
		Groups:    groups(in.Env, envTelegramGroupPolicy, envTelegramGroupAllowFrom),
	}
}

func applyDiscord(in Input, doc *document.Document) {
	ensureChannels(doc).Discord = &document.Discord{
		BotToken:  in.Env.Get(envDiscordBotToken),
		DMPolicy:  in.Env.Get(envDiscordDMPolicy),
		AllowFrom: stringList(in, envDiscordAllowFrom),
		Groups:    groups(in.Env, envDiscordGroupPolicy, ""),
	}
}

func applySlack(in Input, doc *document.Document) {
	ensureChannels(doc).Slack = &document.Slack{
		BotToken: in.Env.Get(envSlackBotToken),
		AppToken: in.Env.Get(envSlackAppToken),
		DMPolicy: in.Env.Get(envSlackDMPolicy),
		Groups:   groups(in.Env, envSlackGroupPolicy, ""),
	}
}
