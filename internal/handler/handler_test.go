package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MarketBot_Go/internal/domain"
	"github.com/osse101/MarketBot_Go/internal/reconcile"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type MockLoopController struct {
	mock.Mock
}

func (m *MockLoopController) Start(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockLoopController) Stop() error {
	return m.Called().Error(0)
}

func (m *MockLoopController) Status() reconcile.Status {
	return m.Called().Get(0).(reconcile.Status)
}

type MockBoundsSaver struct {
	mock.Mock
}

func (m *MockBoundsSaver) Save(ctx context.Context, b domain.PriceBounds) (domain.PriceBounds, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(domain.PriceBounds), args.Error(1)
}

type staticItems []domain.ListedItem

func (s staticItems) Snapshot() []domain.ListedItem { return append([]domain.ListedItem{}, s...) }

func (s staticItems) Get(id string) (domain.ListedItem, bool) {
	for _, item := range s {
		if item.ID == id {
			return item, true
		}
	}
	return domain.ListedItem{}, false
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Database Connected", func(t *testing.T) {
		mockDB := &MockDBPool{}
		mockDB.On("Ping", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(mockDB).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		mockDB.AssertExpectations(t)
	})

	t.Run("Database Connection Failed", func(t *testing.T) {
		mockDB := &MockDBPool{}
		mockDB.On("Ping", mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		HandleReadyz(mockDB).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), ErrMsgDatabaseUnavailable)
		mockDB.AssertExpectations(t)
	})

	t.Run("No Database", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleBotStart(t *testing.T) {
	tests := []struct {
		name     string
		startErr error
		wantCode int
		wantBody string
	}{
		{"starts", nil, http.StatusAccepted, MsgLoopStarting},
		{"already running", domain.ErrAlreadyRunning, http.StatusConflict, ErrMsgAlreadyRunningError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := new(MockLoopController)
			ctrl.On("Start", mock.Anything).Return(tt.startErr)
			ctrl.On("Status").Return(reconcile.Status{State: reconcile.StateRunning}).Maybe()

			w := httptest.NewRecorder()
			HandleBotStart(ctrl).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/bot/start", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			ctrl.AssertExpectations(t)
		})
	}
}

func TestHandleBotStop(t *testing.T) {
	t.Run("stop requested", func(t *testing.T) {
		ctrl := new(MockLoopController)
		ctrl.On("Stop").Return(nil)
		ctrl.On("Status").Return(reconcile.Status{State: reconcile.StateStopRequested})

		w := httptest.NewRecorder()
		HandleBotStop(ctrl).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/bot/stop", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"state":"stop_requested"`)
	})

	t.Run("not running", func(t *testing.T) {
		ctrl := new(MockLoopController)
		ctrl.On("Stop").Return(fmt.Errorf("stop: %w", domain.ErrNotRunning))

		w := httptest.NewRecorder()
		HandleBotStop(ctrl).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/bot/stop", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotRunningError)
	})
}

func TestHandleBotStatus(t *testing.T) {
	ctrl := new(MockLoopController)
	ctrl.On("Status").Return(reconcile.Status{State: reconcile.StateIdle, TrackedItems: 3})

	w := httptest.NewRecorder()
	HandleBotStatus(ctrl).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/bot/status", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got reconcile.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, reconcile.StateIdle, got.State)
	assert.Equal(t, 3, got.TrackedItems)
}

func TestHandleListItems(t *testing.T) {
	items := staticItems{{ID: "42", HashName: "Spectrum 2 Case", Price: 1200}}

	w := httptest.NewRecorder()
	HandleListItems(items).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []domain.ListedItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "42", resp.Data[0].ID)
}

func serveUpdateBounds(t *testing.T, items ItemLister, saver BoundsSaver, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Put("/api/v1/items/{id}/bounds", HandleUpdateBounds(items, saver))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/items/"+id+"/bounds", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleUpdateBounds(t *testing.T) {
	items := staticItems{{ID: "42", HashName: "Spectrum 2 Case"}}

	t.Run("saves tracked item with hash name", func(t *testing.T) {
		saver := new(MockBoundsSaver)
		want := domain.PriceBounds{ItemID: "42", HashName: "Spectrum 2 Case", FloorPrice: 900, CeilingPrice: 1300}
		saver.On("Save", mock.Anything, want).Return(want, nil)

		w := serveUpdateBounds(t, items, saver, "42", `{"floor_price":900,"ceiling_price":1300}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgBoundsUpdated)
		saver.AssertExpectations(t)
	})

	t.Run("untracked item accepted", func(t *testing.T) {
		saver := new(MockBoundsSaver)
		want := domain.PriceBounds{ItemID: "99", FloorPrice: 0, CeilingPrice: 0}
		saver.On("Save", mock.Anything, want).Return(want, nil)

		w := serveUpdateBounds(t, items, saver, "99", `{"floor_price":0,"ceiling_price":0}`)
		assert.Equal(t, http.StatusOK, w.Code)
		saver.AssertExpectations(t)
	})

	t.Run("negative floor rejected", func(t *testing.T) {
		saver := new(MockBoundsSaver)
		w := serveUpdateBounds(t, items, saver, "42", `{"floor_price":-1,"ceiling_price":1300}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"floor_price":"Must be at least 0"`)
		saver.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing ceiling rejected", func(t *testing.T) {
		saver := new(MockBoundsSaver)
		w := serveUpdateBounds(t, items, saver, "42", `{"floor_price":900}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"ceiling_price":"This field is required"`)
	})

	t.Run("malformed body", func(t *testing.T) {
		saver := new(MockBoundsSaver)
		w := serveUpdateBounds(t, items, saver, "42", `{"floor_price":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("store failure", func(t *testing.T) {
		saver := new(MockBoundsSaver)
		saver.On("Save", mock.Anything, mock.Anything).
			Return(domain.PriceBounds{}, fmt.Errorf("%w: %v", domain.ErrBoundsStore, errors.New("conn reset")))

		w := serveUpdateBounds(t, items, saver, "42", `{"floor_price":900,"ceiling_price":1300}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgBoundsStoreError)
	})
}
