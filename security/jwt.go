package security

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"workspace-chat-app/apperror"
	"workspace-chat-app/entity"
)

const (
	DefaultIssuer   = "chat_server"
	DefaultAudience = "chat_web"
	DefaultTokenTTL = 7 * 24 * time.Hour
)

type TokenConfig struct {
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Claims is the signed payload of an identity token.
type Claims struct {
	UserID      int64  `json:"id"`
	WorkspaceID int64  `json:"ws_id"`
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() entity.Identity {
	return entity.Identity{
		ID:          c.UserID,
		WorkspaceID: c.WorkspaceID,
		FullName:    c.FullName,
		Email:       c.Email,
	}
}

type JWT struct {
	keys   *KeyPair
	config TokenConfig
}

func NewJWT(keys *KeyPair, config TokenConfig) *JWT {
	if config.Issuer == "" {
		config.Issuer = DefaultIssuer
	}
	if config.Audience == "" {
		config.Audience = DefaultAudience
	}
	if config.TTL <= 0 {
		config.TTL = DefaultTokenTTL
	}
	return &JWT{keys: keys, config: config}
}

// NewVerifier builds a token service that holds only the public key: it can
// verify tokens but every Issue fails with a signing error.
func NewVerifier(public ed25519.PublicKey, config TokenConfig) *JWT {
	return NewJWT(&KeyPair{Public: public}, config)
}

func (j *JWT) GenerateToken(identity entity.Identity) (string, error) {
	return j.GenerateTokenAt(identity, time.Now())
}

// GenerateTokenAt is GenerateToken with an explicit issue time.
func (j *JWT) GenerateTokenAt(identity entity.Identity, now time.Time) (string, error) {
	if j.keys == nil || len(j.keys.Private) != ed25519.PrivateKeySize {
		return "", apperror.Detail(apperror.ErrSigningError, "signing key is not loaded")
	}

	claims := &Claims{
		UserID:      identity.ID,
		WorkspaceID: identity.WorkspaceID,
		FullName:    identity.FullName,
		Email:       identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.config.Issuer,
			Audience:  jwt.ClaimStrings{j.config.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.config.TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(j.keys.Private)
	if err != nil {
		return "", apperror.Wrap(apperror.ErrSigningError, err)
	}
	return signed, nil
}

func (j *JWT) VerifyJwtToken(token string) (entity.Identity, error) {
	return j.VerifyJwtTokenAt(token, time.Now())
}

// VerifyJwtTokenAt is VerifyJwtToken with an explicit clock for expiry checks.
func (j *JWT) VerifyJwtTokenAt(token string, now time.Time) (entity.Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuer(j.config.Issuer),
		jwt.WithAudience(j.config.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(token, claims, j.Keyfunc)
	if err != nil {
		return entity.Identity{}, ClassifyError(err)
	}
	if !parsed.Valid {
		return entity.Identity{}, apperror.ErrInvalidToken
	}
	return claims.Identity(), nil
}

// Keyfunc hands the public key to the JWT parser, refusing anything that is
// not EdDSA.
func (j *JWT) Keyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
	if j.keys == nil || len(j.keys.Public) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("verification key is not loaded")
	}
	return j.keys.Public, nil
}

// Identify validates issuer and audience of claims that were already
// signature-checked, e.g. by the fiber JWT middleware.
func (j *JWT) Identify(claims *Claims) (entity.Identity, error) {
	validator := jwt.NewValidator(
		jwt.WithIssuer(j.config.Issuer),
		jwt.WithAudience(j.config.Audience),
		jwt.WithExpirationRequired(),
	)
	if err := validator.Validate(claims); err != nil {
		return entity.Identity{}, ClassifyError(err)
	}
	return claims.Identity(), nil
}

// ClassifyError maps a jwt parsing failure onto the token error taxonomy.
func ClassifyError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return apperror.Wrap(apperror.ErrMalformedToken, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperror.Wrap(apperror.ErrExpiredToken, err)
	default:
		return apperror.Wrap(apperror.ErrInvalidToken, err)
	}
}
