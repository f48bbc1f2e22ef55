package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"workspace-chat-app/apperror"
	"workspace-chat-app/entity"
	"workspace-chat-app/security"
)

var luffy = entity.Identity{ID: 7, WorkspaceID: 1, FullName: "Luffy", Email: "luffy@acme.org"}

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newSigner(t *testing.T, config security.TokenConfig) *security.JWT {
	t.Helper()
	keys, err := security.GenerateKeyPair()
	require.NoError(t, err)
	return security.NewJWT(keys, config)
}

// newProtectedApp guards one route that echoes the bound identity. The gate
// is built from the public key only.
func newProtectedApp(t *testing.T, keys *security.KeyPair) *fiber.App {
	t.Helper()
	gate := NewMiddleware(security.NewVerifier(keys.Public, security.TokenConfig{}), silentLogger())

	app := fiber.New()
	app.Get("/me", gate.JWTProtected, func(c *fiber.Ctx) error {
		identity, ok := CurrentIdentity(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(identity)
	})
	return app
}

func TestJWTProtected(t *testing.T) {
	keys, err := security.GenerateKeyPair()
	require.NoError(t, err)
	issuer := security.NewJWT(keys, security.TokenConfig{})
	app := newProtectedApp(t, keys)

	valid, err := issuer.GenerateToken(luffy)
	require.NoError(t, err)
	expired, err := issuer.GenerateTokenAt(luffy, time.Now().Add(-8*24*time.Hour))
	require.NoError(t, err)
	foreign, err := newSigner(t, security.TokenConfig{}).GenerateToken(luffy)
	require.NoError(t, err)
	wrongAudience, err := security.NewJWT(keys, security.TokenConfig{Audience: "other_web"}).GenerateToken(luffy)
	require.NoError(t, err)

	t.Run("valid token binds the identity", func(t *testing.T) {
		req := require.New(t)
		request := httptest.NewRequest(http.MethodGet, "/me", nil)
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+valid)

		response, err := app.Test(request, -1)
		req.NoError(err)
		req.Equal(http.StatusOK, response.StatusCode)

		var got entity.Identity
		req.NoError(json.NewDecoder(response.Body).Decode(&got))
		req.Equal(luffy, got)
	})

	rejected := map[string]string{
		"missing header":       "",
		"wrong scheme":         "Basic " + valid,
		"expired token":        "Bearer " + expired,
		"foreign signature":    "Bearer " + foreign,
		"wrong audience":       "Bearer " + wrongAudience,
		"garbage":              "Bearer not-a-token",
		"scheme without token": "Bearer ",
	}
	for description, header := range rejected {
		t.Run(description, func(t *testing.T) {
			req := require.New(t)
			request := httptest.NewRequest(http.MethodGet, "/me", nil)
			if header != "" {
				request.Header.Set(fiber.HeaderAuthorization, header)
			}

			response, err := app.Test(request, -1)
			req.NoError(err)
			req.Equal(http.StatusUnauthorized, response.StatusCode)

			body, err := io.ReadAll(response.Body)
			req.NoError(err)
			req.Contains(string(body), "Token is not valid")
		})
	}
}

func TestAuthenticate(t *testing.T) {
	keys, err := security.GenerateKeyPair()
	require.NoError(t, err)
	issuer := security.NewJWT(keys, security.TokenConfig{})
	gate := NewMiddleware(security.NewVerifier(keys.Public, security.TokenConfig{}), silentLogger())

	token, err := issuer.GenerateToken(luffy)
	require.NoError(t, err)
	expired, err := issuer.GenerateTokenAt(luffy, time.Now().Add(-8*24*time.Hour))
	require.NoError(t, err)

	req := require.New(t)

	identity, err := gate.Authenticate("Bearer " + token)
	req.NoError(err)
	req.Equal(luffy, identity)

	identity, err = gate.Authenticate("bearer " + token)
	req.NoError(err)
	req.Equal(luffy, identity)

	_, err = gate.Authenticate("")
	req.ErrorIs(err, apperror.ErrMalformedToken)

	_, err = gate.Authenticate(token)
	req.ErrorIs(err, apperror.ErrMalformedToken)

	_, err = gate.Authenticate("Bearer " + expired)
	req.ErrorIs(err, apperror.ErrExpiredToken)

	_, err = gate.Authenticate("Bearer a.b.c")
	req.Equal(apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestServerTime(t *testing.T) {
	req := require.New(t)
	app := fiber.New()
	app.Use(ServerTime)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	req.NoError(err)
	req.Regexp(`^\d+us$`, response.Header.Get(HeaderServerTime))
}
