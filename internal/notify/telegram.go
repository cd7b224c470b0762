package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/osse101/MarketBot_Go/internal/remote"
)

// TelegramNotifier posts messages to one chat through the Telegram Bot API
type TelegramNotifier struct {
	exec    *remote.Executor
	baseURL string
	token   string
	chatID  string
}

// NewTelegramNotifier creates a notifier. An empty baseURL uses the public API.
func NewTelegramNotifier(exec *remote.Executor, baseURL, token, chatID string) *TelegramNotifier {
	if baseURL == "" {
		baseURL = DefaultTelegramBaseURL
	}
	return &TelegramNotifier{
		exec:    exec,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		chatID:  chatID,
	}
}

// Notify sends message with Markdown formatting
func (t *TelegramNotifier) Notify(ctx context.Context, message string) bool {
	q := url.Values{}
	q.Set(ParamChatID, t.chatID)
	q.Set(ParamText, message)
	q.Set(ParamParseMode, ParseModeMarkdown)
	endpoint := t.baseURL + "/bot" + t.token + "/sendMessage?" + q.Encode()

	err := t.exec.Get(ctx, OpTelegramSend, endpoint, func(body []byte) error {
		var resp struct {
			OK          bool   `json:"ok"`
			Description string `json:"description"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return err
		}
		if !resp.OK {
			if resp.Description != "" {
				return errors.New(ErrMsgTelegramNotOK + ": " + resp.Description)
			}
			return errors.New(ErrMsgTelegramNotOK)
		}
		return nil
	})
	return record(ctx, BackendTelegram, err)
}
