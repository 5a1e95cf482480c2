package value

import (
	"regexp"
	"strings"

	"portfolio-api/pkg/apperror"
)

// phonePattern is deliberately permissive: optional leading +, then digits
// with spaces and hyphens as separators. Advisory only, no carrier lookup.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,19}$`)

// Phone is a validated E.164-style phone number.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Phone{}, apperror.NewValidation("phone", "phone cannot be empty")
	}
	if !phonePattern.MatchString(v) {
		return Phone{}, apperror.NewValidation("phone", "malformed phone number: "+raw)
	}
	return Phone{value: v}, nil
}

func (p Phone) String() string { return p.value }

// Digits returns the number with separators stripped.
func (p Phone) Digits() string {
	var b strings.Builder
	for _, r := range p.value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
