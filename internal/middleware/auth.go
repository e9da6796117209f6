package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jobportal/jobportal-backend/internal/config"
	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/models"
	"github.com/jobportal/jobportal-backend/internal/store"
)

const principalKey = "principal"

// JWTProtected checks the bearer token's signature and expiry. It is
// always followed by Authenticate, which re-fetches the account.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			message := "Token is not valid"
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				message = "No token, authorization denied"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: message,
			})
		},
	})
}

// Authenticate resolves the token's subject to a live account. The
// fetch happens on every request so a block applied after the token was
// issued takes effect immediately; claims are never trusted for state.
func Authenticate(users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := tokenSubject(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Token is not valid",
			})
		}

		user, err := users.FindByID(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Token invalid, user not found",
			})
		}

		if user.IsBlocked {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "User account is blocked",
			})
		}

		c.Locals(principalKey, user)
		return c.Next()
	}
}

// RequireRole gates a route group to the given roles. Employers
// additionally need admin approval, re-checked here on every request so
// an approval granted mid-session takes effect without a new login.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := Principal(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Authentication required",
			})
		}

		allowed := false
		for _, role := range roles {
			if user.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Access denied",
			})
		}

		if user.Role == models.RoleEmployer && !user.IsApproved {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Your employer account is pending admin approval.",
			})
		}

		return c.Next()
	}
}

// Principal returns the authenticated account attached by Authenticate.
func Principal(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(principalKey).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}

// tokenSubject extracts the account UUID from the verified JWT claims.
func tokenSubject(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}
