package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend-faq/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRevocations struct {
	revoked bool
	err     error
}

func (s stubRevocations) IsRevoked(context.Context, string) (bool, error) {
	return s.revoked, s.err
}

func newApp(tokens *config.TokenIssuer, revoked RevocationChecker) *fiber.App {
	app := fiber.New()
	app.Get("/admin", JWTAuth(tokens, revoked, zap.NewNop()), RoleAuth("admin"), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("email").(string))
	})
	return app
}

func TestJWTAuth(t *testing.T) {
	tokens := config.NewTokenIssuer("test-secret", time.Hour)
	admin, _, err := tokens.GenerateToken(1, "Admin", "admin@example.com", "admin")
	require.NoError(t, err)
	editor, _, err := tokens.GenerateToken(2, "Ed", "ed@example.com", "editor")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		revoked RevocationChecker
		want    int
	}{
		{name: "no header", want: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer abc", want: http.StatusUnauthorized},
		{name: "admin", header: "Bearer " + admin, want: http.StatusOK},
		{name: "wrong role", header: "Bearer " + editor, want: http.StatusForbidden},
		{name: "revoked", header: "Bearer " + admin, revoked: stubRevocations{revoked: true}, want: http.StatusUnauthorized},
		{name: "denylist down", header: "Bearer " + admin, revoked: stubRevocations{err: errors.New("redis down")}, want: http.StatusServiceUnavailable},
		{name: "not revoked", header: "Bearer " + admin, revoked: stubRevocations{}, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := newApp(tokens, tt.revoked).Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRoleAuthWithoutJWTAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/", RoleAuth("admin"), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
