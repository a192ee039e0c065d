// Package session maps an inbound request to an opaque session identifier.
// Resolution never fails: a missing or invalid token is a handled case that
// falls back to the configured anonymous identifier, not an error.
package session

import (
	"ichibetsu-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// LocalsKey is where the middleware stores the resolved session identifier.
const LocalsKey = "session_id"

type Resolver interface {
	Resolve(ctx *fiber.Ctx) string
}

// FixedResolver always resolves to the same identifier. Development mode: a
// production deployment must replace this with real per-device session
// issuance.
type FixedResolver struct {
	ID string
}

func (r *FixedResolver) Resolve(_ *fiber.Ctx) string {
	return r.ID
}

// TokenResolver reads a signed bearer token and resolves the session from its
// claims, falling back to Fallback when the token is absent or invalid.
type TokenResolver struct {
	Secret   []byte
	Fallback string
}

func (r *TokenResolver) Resolve(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return r.Fallback
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return r.Secret, nil
	})
	if err != nil || !token.Valid {
		return r.Fallback
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return r.Fallback
	}

	sessionId, ok := claims[LocalsKey].(string)
	if !ok || sessionId == "" {
		return r.Fallback
	}
	return sessionId
}

// NewResolver selects the resolver strategy from deployment configuration.
func NewResolver(cfg *config.Config) Resolver {
	if cfg.Session.Mode == "token" {
		return &TokenResolver{
			Secret:   []byte(cfg.Session.JWTSecret),
			Fallback: cfg.Session.FallbackID,
		}
	}
	return &FixedResolver{ID: cfg.Session.FallbackID}
}

// Middleware resolves the caller's session and stores it in the request
// locals for downstream handlers.
func Middleware(r Resolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals(LocalsKey, r.Resolve(ctx))
		return ctx.Next()
	}
}

// FromLocals reads the identifier stored by Middleware.
func FromLocals(ctx *fiber.Ctx) string {
	if v, ok := ctx.Locals(LocalsKey).(string); ok {
		return v
	}
	return ""
}
