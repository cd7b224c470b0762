package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MarketBot_Go/internal/bounds"
	"github.com/osse101/MarketBot_Go/internal/domain"
	"github.com/osse101/MarketBot_Go/internal/logger"
	"github.com/osse101/MarketBot_Go/internal/reconcile"
)

type stubController struct {
	mu    sync.Mutex
	state reconcile.State
}

func (s *stubController) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == reconcile.StateRunning {
		return domain.ErrAlreadyRunning
	}
	s.state = reconcile.StateRunning
	return nil
}

func (s *stubController) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != reconcile.StateRunning {
		return domain.ErrNotRunning
	}
	s.state = reconcile.StateStopRequested
	return nil
}

func (s *stubController) Status() reconcile.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return reconcile.Status{State: s.state}
}

type stubItems []domain.ListedItem

func (s stubItems) Snapshot() []domain.ListedItem { return s }
func (s stubItems) Get(id string) (domain.ListedItem, bool) {
	for _, it := range s {
		if it.ID == id {
			return it, true
		}
	}
	return domain.ListedItem{}, false
}

func newTestRouter(apiKey string) (http.Handler, *bounds.MemoryRepository) {
	repo := bounds.NewMemoryRepository()
	return NewRouter(apiKey, Deps{
		Controller: &stubController{state: reconcile.StateIdle},
		Items:      stubItems{{ID: "42", HashName: "Spectrum 2 Case", Price: 1200}},
		Bounds:     bounds.NewService(repo),
	}), repo
}

func do(t *testing.T, h http.Handler, method, path, body, key string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_BotLifecycle(t *testing.T) {
	h, _ := newTestRouter("")

	assert.Equal(t, http.StatusAccepted, do(t, h, http.MethodPost, "/api/v1/bot/start", "", "").Code)
	assert.Equal(t, http.StatusConflict, do(t, h, http.MethodPost, "/api/v1/bot/start", "", "").Code)

	w := do(t, h, http.MethodGet, "/api/v1/bot/status", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"running"`)

	assert.Equal(t, http.StatusAccepted, do(t, h, http.MethodPost, "/api/v1/bot/stop", "", "").Code)
}

func TestRouter_ItemsAndBounds(t *testing.T) {
	h, repo := newTestRouter("")

	w := do(t, h, http.MethodGet, "/api/v1/items", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hash_name":"Spectrum 2 Case"`)

	w = do(t, h, http.MethodPut, "/api/v1/items/42/bounds", `{"floor_price":900,"ceiling_price":1300}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	got, err := repo.LoadBounds(context.Background(), []string{"42"})
	require.NoError(t, err)
	assert.Equal(t, int64(900), got["42"].FloorPrice)
	assert.Equal(t, "Spectrum 2 Case", got["42"].HashName)
}

func TestRouter_RequestSizeLimit(t *testing.T) {
	h, _ := newTestRouter("")
	body := `{"floor_price":900,"ceiling_price":1300,"pad":"` + strings.Repeat("x", MaxRequestBodyBytes) + `"}`

	w := do(t, h, http.MethodPut, "/api/v1/items/42/bounds", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	h, _ := newTestRouter("secret-key")

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", "secret-key", "/api/v1/bot/status", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/bot/status", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/items", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodGet, tt.path, "", tt.providedKey)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h, _ := newTestRouter("")
	w := do(t, h, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueDeny, w.Header().Get(HeaderFrameOptions))
}

func TestLoggingMiddleware_SetsRequestID(t *testing.T) {
	var seen string
	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, http.StatusTeapot, w.Code)
}
