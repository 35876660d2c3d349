// Package e2e spins up the full HTTP stack against a real PostgreSQL
// container and exercises the API the way a client would: JSON in, JSON out,
// real tokens, real transactions.
package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scolaria/scolaria-backend/internal/adapter/postgres"
	annotationrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/annotation"
	assignmentrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/assignment"
	historyrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/history"
	notificationrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/notification"
	tenantrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/tenant"
	"github.com/scolaria/scolaria-backend/internal/adapter/postgres/testhelper"
	themerepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/theme"
	userrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/user"
	versionrepo "github.com/scolaria/scolaria-backend/internal/adapter/postgres/version"
	"github.com/scolaria/scolaria-backend/internal/auth"
	"github.com/scolaria/scolaria-backend/internal/domain"
	annotationsvc "github.com/scolaria/scolaria-backend/internal/service/annotation"
	authsvc "github.com/scolaria/scolaria-backend/internal/service/auth"
	notificationsvc "github.com/scolaria/scolaria-backend/internal/service/notification"
	tenantsvc "github.com/scolaria/scolaria-backend/internal/service/tenant"
	themesvc "github.com/scolaria/scolaria-backend/internal/service/theme"
	versionsvc "github.com/scolaria/scolaria-backend/internal/service/version"
	workflowsvc "github.com/scolaria/scolaria-backend/internal/service/workflow"
	"github.com/scolaria/scolaria-backend/internal/transport/middleware"
	"github.com/scolaria/scolaria-backend/internal/transport/rest"
)

const testJWTSecret = "e2e-test-secret-at-least-32-characters"

// testEnv bundles the running server with direct DB access for seeding.
type testEnv struct {
	srv  *httptest.Server
	pool *pgxpool.Pool
	jwt  *auth.JWTManager
}

// setupEnv starts the full HTTP stack backed by the shared test database.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.Default()

	tenants := tenantrepo.New(pool)
	users := userrepo.New(pool)
	themes := themerepo.New(pool)
	versions := versionrepo.New(pool)
	annotations := annotationrepo.New(pool)
	assignments := assignmentrepo.New(pool)
	history := historyrepo.New(pool)
	notifications := notificationrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(testJWTSecret, "scolaria-e2e", time.Hour)
	notificationService := notificationsvc.NewService(logger, notifications)

	router := rest.NewRouter(rest.RouterDeps{
		Auth:          rest.NewAuthHandler(logger, authsvc.NewService(logger, users, tenants, jwtManager)),
		Tenants:       rest.NewTenantHandler(logger, tenantsvc.NewService(logger, tenants, users, txManager)),
		Themes:        rest.NewThemeHandler(logger, themesvc.NewService(logger, themes, versions, txManager)),
		Workflow:      rest.NewWorkflowHandler(logger, workflowsvc.NewService(logger, themes, versions, annotations, assignments, history, users, notificationService, txManager)),
		Annotations:   rest.NewAnnotationHandler(logger, annotationsvc.NewService(logger, annotations, themes, notificationService)),
		Versions:      rest.NewVersionHandler(logger, versionsvc.NewService(logger, versions, themes, txManager)),
		Notifications: rest.NewNotificationHandler(logger, notificationService),
		Health:        rest.NewHealthHandler(pool, "e2e"),
	},
		middleware.Chain(middleware.RequestID, middleware.Recovery(logger)),
		middleware.Chain(middleware.RequestID, middleware.Recovery(logger), middleware.Auth(jwtManager), middleware.Tenant(tenants)),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, pool: pool, jwt: jwtManager}
}

// tokenFor issues a valid access token for the given user.
func (e *testEnv) tokenFor(t *testing.T, user domain.User) string {
	t.Helper()

	token, err := e.jwt.GenerateAccessToken(auth.Identity{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Role:     string(user.Role),
	})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// do sends a JSON request and returns the status code with the decoded
// envelope data (nil out skips decoding).
func (e *testEnv) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reqBody)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode response of %s %s: %v", method, path, err)
		}
		if env.Data != nil {
			if err := json.Unmarshal(env.Data, out); err != nil {
				t.Fatalf("decode data of %s %s: %v", method, path, err)
			}
		}
	}

	return resp.StatusCode
}
