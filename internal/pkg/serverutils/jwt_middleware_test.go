package serverutils

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signToken produces a token the same way the login flow does: HS256 with
// sub and exp claims.
func signToken(t *testing.T, secret, email string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func setupProtectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", NewJwtMiddleware(secret), func(ctx *fiber.Ctx) error {
		return ctx.SendString(UserEmail(ctx))
	})
	return app
}

func TestJwtMiddlewareAcceptsTokenSignedWithSharedSecret(t *testing.T) {
	app := setupProtectedApp("shared-key")

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "shared-key", "alice@example.com"))

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", string(body))
}

func TestJwtMiddlewareRejectsTokenSignedWithOtherSecret(t *testing.T) {
	app := setupProtectedApp("shared-key")

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "some-other-key", "alice@example.com"))

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestJwtMiddlewareRejectsMissingToken(t *testing.T) {
	app := setupProtectedApp("shared-key")

	res, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}
