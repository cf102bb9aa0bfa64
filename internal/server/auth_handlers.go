package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/solbing/solbing-api/internal/auth"
	"github.com/solbing/solbing-api/internal/model"
	"github.com/solbing/solbing-api/internal/users"
)

// SignUpRequest is the signup payload
type SignUpRequest struct {
	Email             string        `json:"email"`
	Password          string        `json:"password"`
	FirstName         string        `json:"first_name"`
	LastName          string        `json:"last_name"`
	Nickname          string        `json:"nickname"`
	Phone             string        `json:"phone_number"`
	Occupation        string        `json:"occupation"`
	Location          string        `json:"location"`
	Bio               string        `json:"bio"`
	FavoriteGenres    []model.Genre `json:"favorite_genres"`
	PreferredLanguage string        `json:"preferred_language"`
}

// Validate will run validation rules
func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 100)),
		validation.Field(&r.FirstName, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Length(1, 200)),
		validation.Field(&r.Nickname, validation.Length(1, 100)),
		validation.Field(&r.Phone, validation.By(users.ValidPhone)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
		validation.Field(&r.FavoriteGenres, validation.By(users.ValidGenres)),
		validation.Field(&r.PreferredLanguage, validation.By(users.ValidLanguage)),
	)
}

func (r SignUpRequest) toInput() auth.SignUpInput {
	return auth.SignUpInput{
		Email:             r.Email,
		Password:          r.Password,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Nickname:          r.Nickname,
		Phone:             r.Phone,
		Occupation:        r.Occupation,
		Location:          r.Location,
		Bio:               r.Bio,
		FavoriteGenres:    r.FavoriteGenres,
		PreferredLanguage: r.PreferredLanguage,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

func (s *Server) handleSignUp(c *fiber.Ctx) error {
	payload := new(SignUpRequest)

	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "could not parse request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	user, token, err := s.auth.SignUp(c.Context(), payload.toInput())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "could not parse request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	user, token, err := s.auth.Login(c.Context(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}
