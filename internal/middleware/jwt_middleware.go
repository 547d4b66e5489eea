package middleware

import (
	"log"
	"strings"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CurrentUserKey is the Locals key under which the authenticated user is
// stored.
const CurrentUserKey = "currentUser"

// AuthRequired resolves the bearer token into a user and stores it in the
// request locals. A missing credential and a rejected credential are distinct
// failures: 403 missing_credentials vs 401 invalid_credentials.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return respondAuthError(c,
				apperrors.New(apperrors.KindAuthMissing, "missing_credentials", "Not authenticated"))
		}

		user, outcome, err := authService.ResolveToken(token)
		if err != nil {
			if outcome != services.VerifyOK {
				log.Printf("Token rejected: %s", outcome)
			}
			return respondAuthError(c, err)
		}

		c.Locals(CurrentUserKey, user)
		return c.Next()
	}
}

// AdminRequired enforces the administrator flag on top of AuthRequired. It
// must run after AuthRequired in the chain.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return respondAuthError(c,
				apperrors.New(apperrors.KindAuthMissing, "missing_credentials", "Not authenticated"))
		}
		if !user.IsAdmin {
			return respondAuthError(c,
				apperrors.New(apperrors.KindForbidden, "admin_only", "Forbidden, admins only"))
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthRequired, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(CurrentUserKey).(*models.User)
	return user
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func respondAuthError(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
		"code":   apperrors.CodeOf(err),
		"detail": apperrors.DetailOf(err),
	})
}
