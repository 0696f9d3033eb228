package service

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreateSeriesInput is the payload for CreateSeries. Tags are checked with
// go-playground/validator after whitespace is trimmed.
type CreateSeriesInput struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Genre       string `json:"genre" validate:"required,genre"`
	ReleaseYear int    `json:"release_year" validate:"min=1900,max=2100"`
	Seasons     int    `json:"seasons" validate:"min=1,max=100"`
}

var genres = map[string]struct{}{
	"drama": {}, "comedy": {}, "crime": {}, "documentary": {},
	"fantasy": {}, "horror": {}, "sci-fi": {}, "thriller": {}, "animation": {},
}

// IsValidGenre reports whether g names a known genre, ignoring case and surrounding space.
func IsValidGenre(g string) bool {
	_, ok := genres[normalizeGenre(g)]
	return ok
}

func normalizeGenre(g string) string {
	return strings.ToLower(strings.TrimSpace(g))
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return IsValidGenre(fl.Field().String())
	})
	return v
}

// fieldErrors converts validator output into FieldErrors keyed by JSON field name
// (see RegisterTagNameFunc in newValidator).
func fieldErrors(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "genre":
		return "unknown genre"
	default:
		return "is invalid"
	}
}
