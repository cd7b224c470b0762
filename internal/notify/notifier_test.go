package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MarketBot_Go/internal/domain"
	"github.com/osse101/MarketBot_Go/internal/logger"
	"github.com/osse101/MarketBot_Go/internal/remote"
	"github.com/osse101/MarketBot_Go/internal/worker"
)

func TestPendingSaleMessage(t *testing.T) {
	item := domain.ListedItem{ID: "7", HashName: "AK-47 | Redline (Field-Tested)", Price: 12345, Currency: "USD"}
	assert.Equal(t,
		"An Item was bought from you on MarketCSGO. To receive *12.345 USD* transfer _AK-47 | Redline (Field-Tested)_ to the buyer.",
		PendingSaleMessage(item))
}

func testExecutor(doer remote.HTTPDoer) *remote.Executor {
	return remote.NewExecutor(doer, remote.Config{
		MaxAttempts:    2,
		RequestTimeout: time.Second,
		RequestSpacing: time.Millisecond,
		RetryBackoff:   time.Millisecond,
	})
}

func TestTelegramNotifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "100", q.Get(ParamChatID))
		assert.Equal(t, "hello *world*", q.Get(ParamText))
		assert.Equal(t, ParseModeMarkdown, q.Get(ParamParseMode))
		fmt.Fprint(w, `{"ok":true,"result":{}}`)
	}))
	defer srv.Close()

	n := NewTelegramNotifier(testExecutor(srv.Client()), srv.URL, "TOKEN", "100")
	assert.True(t, n.Notify(context.Background(), "hello *world*"))
}

func TestTelegramNotifier_NotOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok":false,"description":"chat not found"}`)
	}))
	defer srv.Close()

	n := NewTelegramNotifier(testExecutor(srv.Client()), srv.URL, "TOKEN", "100")
	assert.False(t, n.Notify(context.Background(), "hello"))
}

type MockWebhookExecutor struct {
	mock.Mock
}

func (m *MockWebhookExecutor) WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(webhookID, token, wait, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

func TestParseWebhookURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		id      string
		token   string
		wantErr bool
	}{
		{"standard", "https://discord.com/api/webhooks/123/abc", "123", "abc", false},
		{"versioned", "https://discord.com/api/v10/webhooks/123/abc/", "123", "abc", false},
		{"missing token", "https://discord.com/api/webhooks/123", "", "", true},
		{"not a webhook", "https://example.com/hook", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, token, err := ParseWebhookURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), ErrMsgInvalidWebhook)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestDiscordNotifier(t *testing.T) {
	session := new(MockWebhookExecutor)
	session.On("WebhookExecute", "123", "abc", false, &discordgo.WebhookParams{Content: "sold"}).
		Return(&discordgo.Message{}, nil).Once()

	n, err := NewDiscordNotifier(session, "https://discord.com/api/webhooks/123/abc")
	require.NoError(t, err)

	assert.True(t, n.Notify(context.Background(), "sold"))
	session.AssertExpectations(t)
}

func TestDiscordNotifier_Failure(t *testing.T) {
	session := new(MockWebhookExecutor)
	session.On("WebhookExecute", "123", "abc", false, mock.Anything).
		Return(nil, errors.New("HTTP 404 Not Found")).Once()

	n, err := NewDiscordNotifier(session, "https://discord.com/api/webhooks/123/abc")
	require.NoError(t, err)

	assert.False(t, n.Notify(context.Background(), "sold"))
	session.AssertExpectations(t)
}

type recordingNotifier struct {
	mu         sync.Mutex
	messages   []string
	requestIDs []string
	result     bool
}

func (r *recordingNotifier) Notify(ctx context.Context, message string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	r.requestIDs = append(r.requestIDs, logger.GetRequestID(ctx))
	return r.result
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

func TestMulti(t *testing.T) {
	a := &recordingNotifier{result: false}
	b := &recordingNotifier{result: true}

	assert.True(t, Multi{a, b}.Notify(context.Background(), "m"))
	assert.Equal(t, 1, a.count())
	assert.Equal(t, 1, b.count())
	assert.False(t, Multi{a}.Notify(context.Background(), "m"))
}

func TestDispatcher_DeliversThroughPool(t *testing.T) {
	rec := &recordingNotifier{result: true}
	pool := worker.NewPool(1, 4)
	pool.Start()

	d := NewDispatcher(rec, pool)
	ctx := logger.WithRequestID(context.Background(), "iter-1")
	assert.True(t, d.Dispatch(ctx, "sale"))

	pool.Stop()
	require.Equal(t, 1, rec.count())
	assert.Equal(t, "sale", rec.messages[0])
	assert.Equal(t, "iter-1", rec.requestIDs[0])
}

type fullQueue struct{}

func (fullQueue) TryEnqueue(worker.Job) bool { return false }

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	rec := &recordingNotifier{result: true}
	d := NewDispatcher(rec, fullQueue{})

	assert.False(t, d.Dispatch(context.Background(), "sale"))
	assert.Equal(t, 0, rec.count())
}
