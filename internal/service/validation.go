package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "caregiver-shifts-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// validationError turns validator output into a ValidationError naming the first failing field
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidationError(toSnake(fe.Field()), fmt.Sprintf("failed on '%s'", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseDate parses a YYYY-MM-DD calendar day
func ParseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a date formatted YYYY-MM-DD")
	}
	return d, nil
}
