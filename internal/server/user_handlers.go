package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/solbing/solbing-api/internal/i18n"
	"github.com/solbing/solbing-api/internal/users"
	"golang.org/x/text/language"
)

func (s *Server) handleGetProfile(c *fiber.Ctx) error {
	user, ok := CurrentUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	profile, err := s.profiles.GetProfile(c.Context(), user.ID.String(), requestLanguage(c))
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

func (s *Server) handleUpdateProfile(c *fiber.Ctx) error {
	user, ok := CurrentUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	patch := users.ProfilePatch{}
	if err := c.BodyParser(&patch); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "could not parse request body").
			WithCode(errors.CodeBadRequest)
	}

	profile, err := s.profiles.UpdateProfile(c.Context(), user.ID.String(), patch, requestLanguage(c))
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// requestLanguage negotiates the display language from the explicit
// lang query param, the Accept-Language header, and finally the user's
// stored preference.
func requestLanguage(c *fiber.Ctx) language.Tag {
	candidates := []string{
		c.Query("lang"),
		c.Get(fiber.HeaderAcceptLanguage),
	}

	if user, ok := CurrentUser(c); ok && user.PreferredLanguage != "" {
		candidates = append(candidates, user.PreferredLanguage)
	}

	return i18n.Resolve(candidates...)
}
