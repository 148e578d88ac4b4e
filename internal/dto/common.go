package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/finacc/internal/apperrors"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD, or an empty string for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
