package config

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/k1LoW/duration"
)

// validDuration validates human-readable durations such as "90 days" or
// "3 weeks". Empty values are acceptable (retention disabled).
func validDuration(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	_, err := duration.Parse(value)
	return err == nil
}

// validColor checks if the field contains a valid hex color code.
func validColor(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	re := regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	return re.MatchString(value)
}
