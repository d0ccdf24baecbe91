package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appcart "github.com/storefront/core/internal/application/cart"
	"github.com/storefront/core/internal/application/session"
	"github.com/storefront/core/internal/infrastructure/api"
	"github.com/storefront/core/internal/infrastructure/localstore"
	"github.com/storefront/core/internal/interfaces/http/middleware"
	"github.com/storefront/core/internal/interfaces/http/router"
)

type testEnv struct {
	engine   *gin.Engine
	carts    *appcart.CartStore
	sessions *session.SessionStore
}

// newTestEnv wires the full handler stack against a fake backend and a
// throwaway file store
func newTestEnv(t *testing.T, backend http.Handler) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	client := api.NewClientWithHTTPClient(server.URL, server.Client(), zap.NewNop())

	store, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	carts := appcart.NewCartStore(ctx, store, zap.NewNop())
	sessions := session.NewSessionStore(ctx, store, zap.NewNop())

	engine := gin.New()
	engine.Use(middleware.RequestID())

	router.NewRouter(engine).
		Register(NewCartHandler(carts, client)).
		Register(NewCheckoutHandler(carts, sessions, client)).
		Register(NewAuthHandler(sessions, client)).
		Setup()

	return &testEnv{engine: engine, carts: carts, sessions: sessions}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// envelope mirrors the response wrapper for assertions
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, out))
}
