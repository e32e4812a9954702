//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/streetbite/foodtruck-backend/internal/adapter/postgres"
	"github.com/streetbite/foodtruck-backend/internal/adapter/postgres/testhelper"
	truckrepo "github.com/streetbite/foodtruck-backend/internal/adapter/postgres/truck"
	userrepo "github.com/streetbite/foodtruck-backend/internal/adapter/postgres/user"
	authpkg "github.com/streetbite/foodtruck-backend/internal/auth"
	"github.com/streetbite/foodtruck-backend/internal/config"
	authsvc "github.com/streetbite/foodtruck-backend/internal/service/auth"
	trucksvc "github.com/streetbite/foodtruck-backend/internal/service/truck"
	"github.com/streetbite/foodtruck-backend/internal/transport/middleware"
	"github.com/streetbite/foodtruck-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	trucks := truckrepo.New(pool)
	users := userrepo.New(pool)

	// JWT manager with a test secret (>= 32 chars).
	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		PasswordHashCost: 4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtMgr, authCfg)
	truckService := trucksvc.NewService(logger, trucks, users, txm, config.SearchConfig{
		DefaultRadiusMeters: 500,
	})

	mux := rest.NewRouter(
		rest.NewTruckHandler(truckService, logger),
		rest.NewAuthHandler(authService, logger),
		rest.NewHealthHandler(pool, "test-version"),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends a request with an optional JSON body and bearer token, and
// returns the status code plus the decoded response object.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}
	return resp.StatusCode, result
}

// registerUser registers a fresh user and returns its username and password.
func (ts *testServer) registerUser(t *testing.T) (string, string) {
	t.Helper()

	username := "e2e-" + uuid.New().String()[:8]
	password := "secret-password"

	status, body := ts.doJSON(t, http.MethodPost, "/auth/register", map[string]any{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, status, "register response: %v", body)

	return username, password
}

// login exchanges credentials for a bearer token.
func (ts *testServer) login(t *testing.T, username, password string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/auth/login", map[string]any{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, status, "login response: %v", body)

	token, ok := body["auth_token"].(string)
	require.True(t, ok, "expected auth_token in login response: %v", body)
	return token
}

// registerAndLogin is the common happy path for authenticated scenarios.
func (ts *testServer) registerAndLogin(t *testing.T) string {
	t.Helper()
	username, password := ts.registerUser(t)
	return ts.login(t, username, password)
}

// makeAdmin flips the admin flag for the given username directly in the DB.
func (ts *testServer) makeAdmin(t *testing.T, username string) {
	t.Helper()

	tag, err := ts.Pool.Exec(context.Background(),
		`UPDATE users SET admin = TRUE WHERE username = $1`, username)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}
