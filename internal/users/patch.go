package users

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"
	"github.com/solbing/solbing-api/internal/auth"
	"github.com/solbing/solbing-api/internal/i18n"
	"github.com/solbing/solbing-api/internal/model"
)

// ProfilePatch is a partial profile update. Nil fields are left alone.
type ProfilePatch struct {
	FirstName         *string        `json:"first_name"`
	LastName          *string        `json:"last_name"`
	Nickname          *string        `json:"nickname"`
	Email             *string        `json:"email"`
	Phone             *string        `json:"phone_number"`
	Occupation        *string        `json:"occupation"`
	Location          *string        `json:"location"`
	Bio               *string        `json:"bio"`
	FavoriteGenres    *[]model.Genre `json:"favorite_genres"`
	PreferredLanguage *string        `json:"preferred_language"`
}

// Validate will run validation rules
func (p ProfilePatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Length(1, 200)),
		validation.Field(&p.LastName, validation.Length(1, 200)),
		validation.Field(&p.Nickname, validation.Length(1, 100)),
		validation.Field(&p.Email, validation.Length(6, 100), is.Email),
		validation.Field(&p.Phone, validation.By(ValidPhone)),
		validation.Field(&p.Occupation, validation.Length(0, 200)),
		validation.Field(&p.Location, validation.Length(0, 200)),
		validation.Field(&p.Bio, validation.Length(0, 2000)),
		validation.Field(&p.FavoriteGenres, validation.By(ValidGenres)),
		validation.Field(&p.PreferredLanguage, validation.By(ValidLanguage)),
	)
}

// apply copies the supplied fields onto the record and returns the
// matching column names, in bun tag form.
func (p ProfilePatch) apply(record *model.User) []string {
	var columns []string

	set := func(col string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			columns = append(columns, col)
		}
	}

	set("first_name", &record.FirstName, p.FirstName)
	set("last_name", &record.LastName, p.LastName)
	set("nickname", &record.Nickname, p.Nickname)
	set("occupation", &record.Occupation, p.Occupation)
	set("location", &record.Location, p.Location)
	set("bio", &record.Bio, p.Bio)
	set("phone_number", &record.Phone, p.Phone)
	set("preferred_language", &record.PreferredLanguage, p.PreferredLanguage)

	if p.Email != nil {
		record.Email = auth.NormalizeEmail(*p.Email)
		columns = append(columns, "email")
	}

	if p.FavoriteGenres != nil {
		record.FavoriteGenres = *p.FavoriteGenres
		columns = append(columns, "favorite_genres")
	}

	return columns
}

// ValidPhone accepts E.164 numbers and national US formats.
func ValidPhone(value any) error {
	value, _ = validation.Indirect(value)
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	region := ""
	if s[0] != '+' {
		region = "US"
	}

	num, err := phonenumbers.Parse(s, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return fmt.Errorf("must be a valid phone number")
	}

	return nil
}

// ValidGenres checks every entry against the genre enum.
func ValidGenres(value any) error {
	value, _ = validation.Indirect(value)
	genres, _ := value.([]model.Genre)
	for _, g := range genres {
		if !model.IsValidGenre(g) {
			return fmt.Errorf("unknown genre: %s", g)
		}
	}
	return nil
}

// ValidLanguage checks the value against the supported language tags.
func ValidLanguage(value any) error {
	value, _ = validation.Indirect(value)
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	for _, tag := range i18n.Supported() {
		if tag.String() == s {
			return nil
		}
	}

	return fmt.Errorf("unsupported language: %s", s)
}
