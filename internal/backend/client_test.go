package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBackend is a minimal stand-in for the FinaShopping API. It issues
// sequential tokens and can be told to reject bearer tokens to exercise the
// 401 retry path.
type fakeBackend struct {
	loginCount  int32
	rejectCount int32 // number of authenticated calls to reject with 401
	server      *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	f := &fakeBackend{}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(HealthStatus{Status: "ok", Timestamp: "2025-01-01T00:00:00Z"})
	})
	mux.HandleFunc("/auth/v1/login", func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "svc" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "credenciales inválidas"})
			return
		}
		atomic.AddInt32(&f.loginCount, 1)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "token": "token-ok", "refreshToken": "refresh"})
	})
	mux.HandleFunc("/api/v1/loans", func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&f.rejectCount) > 0 {
			atomic.AddInt32(&f.rejectCount, -1)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Authorization") != "Bearer token-ok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"loans": []Loan{
			{ID: 1, Name: "Préstamo Personal BROU", Amount: 150000},
		}})
	})
	mux.HandleFunc("/api/v1/credit-cards", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"creditCards": []CreditCard{
			{ID: 1, Name: "OCA Blue", Network: "OCA"},
		}})
	})
	mux.HandleFunc("/api/v1/credit-profile", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"score": 720, "rating": "Bueno"})
	})
	mux.HandleFunc("/api/v1/chart-data", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"scoreHistory":       []map[string]any{{"month": "Ene", "score": 700}},
			"utilizationHistory": []map[string]any{{"month": "Ene", "utilization": 0.4}},
		})
	})
	mux.HandleFunc("/api/v1/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeBackend) client(t *testing.T) *Client {
	t.Helper()
	return New(Config{BaseURL: f.server.URL, Username: "svc", Password: "secret"}, nil, zap.NewNop())
}

func TestHealthNeedsNoAuth(t *testing.T) {
	f := newFakeBackend(t)
	c := New(Config{BaseURL: f.server.URL}, nil, zap.NewNop()) // no credentials at all

	health, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.Zero(t, atomic.LoadInt32(&f.loginCount))
}

func TestTokenAcquiredOnceAndReused(t *testing.T) {
	f := newFakeBackend(t)
	c := f.client(t)
	ctx := context.Background()

	loans, err := c.Loans(ctx)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "Préstamo Personal BROU", loans[0].Name)

	_, err = c.CreditCards(ctx)
	require.NoError(t, err)

	// Both calls rode the same cached token.
	assert.Equal(t, int32(1), atomic.LoadInt32(&f.loginCount))
}

func TestMissingCredentialsIsConfigError(t *testing.T) {
	f := newFakeBackend(t)
	c := New(Config{BaseURL: f.server.URL}, nil, zap.NewNop())

	_, err := c.Loans(context.Background())
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRejectedLoginIsAuthErrorWithBackendMessage(t *testing.T) {
	f := newFakeBackend(t)
	c := New(Config{BaseURL: f.server.URL, Username: "svc", Password: "wrong"}, nil, zap.NewNop())

	_, err := c.Loans(context.Background())
	require.Error(t, err)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Message, "credenciales inválidas")
}

func TestSingle401TriggersOneRetry(t *testing.T) {
	f := newFakeBackend(t)
	c := f.client(t)
	ctx := context.Background()

	// Warm the token so the 401 hits an authenticated request.
	_, err := c.Loans(ctx)
	require.NoError(t, err)

	atomic.StoreInt32(&f.rejectCount, 1)
	loans, err := c.Loans(ctx)
	require.NoError(t, err)
	assert.Len(t, loans, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&f.loginCount), "401 must force exactly one re-login")
}

func TestSecondConsecutive401Fails(t *testing.T) {
	f := newFakeBackend(t)
	c := f.client(t)
	ctx := context.Background()

	_, err := c.Loans(ctx)
	require.NoError(t, err)

	atomic.StoreInt32(&f.rejectCount, 2)
	_, err = c.Loans(ctx)
	require.Error(t, err, "a second 401 after the retry must surface, not loop")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestNon2xxIsAPIErrorWithContext(t *testing.T) {
	f := newFakeBackend(t)
	c := f.client(t)

	var out map[string]any
	err := c.get(context.Background(), "/api/v1/broken", &out)
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.URL, "/api/v1/broken")
}

func TestConnectionFailureIsAPIError(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1", Username: "svc", Password: "secret"}, nil, zap.NewNop())

	_, err := c.Health(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
}

func TestCreditProfileAndChartData(t *testing.T) {
	f := newFakeBackend(t)
	c := f.client(t)
	ctx := context.Background()

	profile, err := c.CreditProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 720, profile.Score)

	data, err := c.ChartData(ctx)
	require.NoError(t, err)
	require.Len(t, data.ScoreHistory, 1)
	assert.Equal(t, 700, data.ScoreHistory[0].Score)
}

func TestTokenCacheExpiry(t *testing.T) {
	cache := &tokenCache{}

	_, ok := cache.get()
	assert.False(t, ok, "empty cache has no token")

	cache.set("abc")
	token, ok := cache.get()
	require.True(t, ok)
	assert.Equal(t, "abc", token)

	cache.invalidate()
	_, ok = cache.get()
	assert.False(t, ok, "invalidated token must not be served")
}
