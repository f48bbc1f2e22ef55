package middleware

import (
	"errors"
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"workspace-chat-app/apperror"
	"workspace-chat-app/dto/res"
	"workspace-chat-app/entity"
	"workspace-chat-app/security"
)

const (
	tokenContextKey    = "jwt"
	identityContextKey = "identity"
	bearerScheme       = "Bearer"
)

// Middleware is the auth gate in front of every protected route. It only
// needs the public half of the key pair and never touches the store.
type Middleware struct {
	*security.JWT
	Log *logrus.Logger

	protected fiber.Handler
}

func NewMiddleware(JWT *security.JWT, logger *logrus.Logger) *Middleware {
	middleware := &Middleware{JWT: JWT, Log: logger}
	middleware.protected = jwtware.New(jwtware.Config{
		KeyFunc:        JWT.Keyfunc,
		Claims:         &security.Claims{},
		ContextKey:     tokenContextKey,
		TokenLookup:    "header:" + fiber.HeaderAuthorization,
		AuthScheme:     bearerScheme,
		SuccessHandler: middleware.bindIdentity,
		ErrorHandler:   middleware.rejectToken,
	})
	return middleware
}

// JWTProtected verifies the bearer token and binds the caller's identity to
// the request.
func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	return middleware.protected(c)
}

// Authenticate is the gate without fiber: given an Authorization header it
// returns the verified identity or a token error.
func (middleware *Middleware) Authenticate(header string) (entity.Identity, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) || strings.TrimSpace(token) == "" {
		return entity.Identity{}, apperror.Detail(apperror.ErrMalformedToken, "missing bearer token")
	}
	return middleware.JWT.VerifyJwtToken(strings.TrimSpace(token))
}

func (middleware *Middleware) bindIdentity(c *fiber.Ctx) error {
	token, ok := c.Locals(tokenContextKey).(*jwt.Token)
	if !ok {
		return middleware.rejectToken(c, apperror.ErrInvalidToken)
	}
	claims, ok := token.Claims.(*security.Claims)
	if !ok {
		return middleware.rejectToken(c, apperror.ErrInvalidToken)
	}

	identity, err := middleware.JWT.Identify(claims)
	if err != nil {
		return middleware.rejectToken(c, err)
	}

	c.Locals(identityContextKey, identity)
	return c.Next()
}

func (middleware *Middleware) rejectToken(c *fiber.Ctx, err error) error {
	reason := "invalid"
	switch {
	case errors.Is(err, jwtware.ErrJWTMissingOrMalformed):
		reason = "missing"
	case errors.Is(err, apperror.ErrExpiredToken), errors.Is(err, jwt.ErrTokenExpired):
		reason = "expired"
	case errors.Is(err, apperror.ErrMalformedToken), errors.Is(err, jwt.ErrTokenMalformed):
		reason = "malformed"
	}
	middleware.Log.WithError(err).WithField("reason", reason).Warn("Rejected bearer token")

	return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
		Status:     fiber.ErrUnauthorized.Message,
		StatusCode: fiber.StatusUnauthorized,
		Error:      "Token is not valid",
	})
}

// CurrentIdentity returns the identity bound by JWTProtected.
func CurrentIdentity(c *fiber.Ctx) (entity.Identity, bool) {
	identity, ok := c.Locals(identityContextKey).(entity.Identity)
	return identity, ok
}
