package value

import (
	"regexp"
	"strings"

	"portfolio-api/pkg/apperror"
)

// emailPattern is a simplified RFC 5322 check, same shape the portfolio
// frontend validates against.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a validated, lower-folded email address.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Email{}, apperror.NewValidation("email", "email cannot be empty")
	}
	if !emailPattern.MatchString(v) {
		return Email{}, apperror.NewValidation("email", "malformed email address: "+raw)
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }

func (e Email) LocalPart() string {
	return e.value[:strings.IndexByte(e.value, '@')]
}

func (e Email) Domain() string {
	return e.value[strings.IndexByte(e.value, '@')+1:]
}
