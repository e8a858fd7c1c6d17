package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/deluxetools/menued/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

var gameVersionPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+(\.[0-9]+)?$`)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("material", validateMaterial)
	_ = v.RegisterValidation("gameversion", validateGameVersion)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// without leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "material":
			errs[field] = "Invalid material token"
		case "gameversion":
			errs[field] = "Invalid game version"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

var vanillaMaterialPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// validateMaterial accepts any recognized material token: a vanilla
// name, a prefixed external scheme, or an equipment slot binding.
// Empty passes; pair with 'required' when the field is mandatory.
func validateMaterial(fl validator.FieldLevel) bool {
	material := fl.Field().String()
	if material == "" {
		return true
	}
	scheme, payload := domain.ParseMaterial(material)
	if scheme == domain.SchemeVanilla {
		return vanillaMaterialPattern.MatchString(payload)
	}
	return payload != ""
}

func validateGameVersion(fl validator.FieldLevel) bool {
	version := fl.Field().String()
	if version == "" {
		return true
	}
	return gameVersionPattern.MatchString(version)
}
