package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/solbing/solbing-api/internal/auth"
	"github.com/solbing/solbing-api/internal/model"
)

const userLocalsKey = "current_user"

// Protected guards a route behind bearer-token authentication. It
// extracts the token from the Authorization header, validates it, and
// resolves the embedded user id against the credential store. The
// resolved user is attached to the request context before the handler
// runs; any failure rejects the request with 401 before the handler is
// reached.
func (s *Server) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := tokenFromHeader(c.Get(fiber.HeaderAuthorization), "Bearer")
		if err != nil {
			return err
		}

		claims, err := s.tokens.Validate(raw)
		if err != nil {
			return err
		}

		user, err := s.users.GetByID(c.Context(), claims.UserID())
		if err != nil {
			// Token may outlive the account it was issued for.
			if errors.IsNotFound(err) {
				return auth.ErrIdentityNotFound
			}
			return err
		}

		c.Locals(userLocalsKey, user)
		c.SetUserContext(auth.WithContext(c.UserContext(), user))

		return c.Next()
	}
}

// CurrentUser returns the user attached by Protected, if any.
func CurrentUser(c *fiber.Ctx) (*model.User, bool) {
	user, ok := c.Locals(userLocalsKey).(*model.User)
	return user, ok
}

func tokenFromHeader(header, authScheme string) (string, error) {
	l := len(authScheme)
	if len(header) > l+1 && strings.EqualFold(header[:l], authScheme) {
		return strings.TrimSpace(header[l:]), nil
	}
	return "", auth.ErrTokenMissing
}
