package notify

// Backend names, used as metric labels
const (
	BackendTelegram = "telegram"
	BackendDiscord  = "discord"
	BackendLog      = "log"
)

// DefaultTelegramBaseURL is the Telegram Bot API host
const DefaultTelegramBaseURL = "https://api.telegram.org"

// Telegram request parameters
const (
	ParamChatID       = "chat_id"
	ParamText         = "text"
	ParamParseMode    = "parse_mode"
	ParseModeMarkdown = "Markdown"
	OpTelegramSend    = "telegram_send"
)

// PendingSaleTemplate is filled with price, currency and hash name
const PendingSaleTemplate = "An Item was bought from you on MarketCSGO. To receive *%s %s* transfer _%s_ to the buyer."

// Error messages
const (
	ErrMsgTelegramNotOK    = "telegram reported ok=false"
	ErrMsgInvalidWebhook   = "invalid discord webhook url"
	ErrMsgDiscordExecution = "discord webhook execute failed"
)

// Log messages
const (
	LogMsgNotificationSent   = "Notification sent"
	LogMsgNotificationFailed = "Notification failed"
	LogMsgNotificationLogged = "Notification"
	LogMsgNotificationQueued = "Notification queued"
	LogMsgNotificationDrop   = "Notification dropped"
)
