package routes

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobtrack/internal/config"
	"jobtrack/internal/database"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// stubDB fails every storage call, so any request that reaches a repository
// surfaces as a 500. The middleware ordering checks below only care whether a
// request got past (or was stopped by) the gate and the limiter.
type stubDB struct{}

func (stubDB) Ping(context.Context) error { return nil }
func (stubDB) Close() error               { return nil }
func (stubDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("no database in this test")
}
func (stubDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("no database in this test")
}
func (stubDB) QueryRow(context.Context, string, ...any) database.Row { return errRow{} }
func (stubDB) SQLDB() *sql.DB                                        { return nil }

type errRow struct{}

func (errRow) Scan(...any) error { return errors.New("no database in this test") }

type memCounter struct {
	counts map[string]int64
}

func (m *memCounter) IncrWithinWindow(_ context.Context, key string, _ time.Duration) (int64, error) {
	if m.counts == nil {
		m.counts = map[string]int64{}
	}
	m.counts[key]++
	return m.counts[key], nil
}

const testSecret = "test-secret"

func wiredApp(counter middleware.Counter) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	Register(app, config.Config{
		JWT:       config.JWTConfig{Secret: testSecret, Lifetime: time.Hour},
		RateLimit: config.RateLimitConfig{Window: 15 * time.Minute, Max: 2},
	}, stubDB{}, counter, nil)
	return app
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestProtectedRoutesRejectWithoutToken(t *testing.T) {
	app := wiredApp(&memCounter{})

	for _, rt := range []struct{ method, path string }{
		{"PATCH", "/api/v1/auth/updateUser"},
		{"GET", "/api/v1/jobs"},
		{"POST", "/api/v1/jobs"},
		{"GET", "/api/v1/jobs/stats"},
		{"GET", "/api/v1/jobs/" + uuid.NewString()},
		{"DELETE", "/api/v1/jobs/" + uuid.NewString()},
	} {
		resp, err := app.Test(jsonRequest(rt.method, rt.path, "{}"))
		if err != nil {
			t.Fatalf("%s %s: unexpected err: %v", rt.method, rt.path, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without a token, got %d", rt.method, rt.path, resp.StatusCode)
		}
	}
}

func TestGateRunsBeforeProtectedHandlers(t *testing.T) {
	app := wiredApp(&memCounter{})

	token, err := jwt.NewHMACService(testSecret, time.Hour).Issue(uuid.New(), "alan")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// A verified token must get past the gate; the stub storage then fails
	// inside the handler, which reads as 500, never as 401.
	req := jsonRequest("PATCH", "/api/v1/auth/updateUser",
		`{"email":"alan@example.com","name":"alan","lastName":"turing","location":"cambridge"}`)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode == fiber.StatusUnauthorized {
		t.Fatalf("gate rejected a freshly issued valid token")
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected the stub storage 500, got %d", resp.StatusCode)
	}

	req = jsonRequest("GET", "/api/v1/jobs", "")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode == fiber.StatusUnauthorized {
		t.Fatalf("gate rejected a valid token on the jobs listing")
	}
}

func TestAuthEndpointsAreRateLimited(t *testing.T) {
	app := wiredApp(&memCounter{})

	// The empty body fails validation, so under the limit each attempt is a
	// 400; the limiter must cut in with 429 before the handler ever runs.
	for i := 1; i <= 2; i++ {
		resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/register", "{}"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("attempt %d: expected 400, got %d", i, resp.StatusCode)
		}
	}

	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/register", "{}"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429 once over the limit, got %d", resp.StatusCode)
	}

	// Login counts in its own window.
	for i := 1; i <= 2; i++ {
		resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/login", "{}"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("login attempt %d: expected 400, got %d", i, resp.StatusCode)
		}
	}
	resp, err = app.Test(jsonRequest("POST", "/api/v1/auth/login", "{}"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429 on the third login attempt, got %d", resp.StatusCode)
	}
}

func TestProfileUpdateIsNotRateLimited(t *testing.T) {
	app := wiredApp(&memCounter{})

	for i := 1; i <= 5; i++ {
		resp, err := app.Test(jsonRequest("PATCH", "/api/v1/auth/updateUser", "{}"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401 from the gate, got %d", i, resp.StatusCode)
		}
	}
}
