package collection

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"portfolio-api/pkg/apperror"
)

// RequireText enforces the common string rule: non-empty after trimming and
// within maxLen characters.
func RequireText(field, v string, maxLen int) error {
	if strings.TrimSpace(v) == "" {
		return apperror.NewValidation(field, field+" cannot be empty")
	}
	if len(v) > maxLen {
		return apperror.NewValidation(field, fmt.Sprintf("%s exceeds %d characters", field, maxLen))
	}
	return nil
}

// OptionalText allows absence but bounds the length when present.
func OptionalText(field string, v *string, maxLen int) error {
	if v == nil {
		return nil
	}
	if len(*v) > maxLen {
		return apperror.NewValidation(field, fmt.Sprintf("%s exceeds %d characters", field, maxLen))
	}
	return nil
}

// BoundedText enforces a length floor in addition to the ceiling, used for
// long-text description fields.
func BoundedText(field, v string, minLen, maxLen int) error {
	if strings.TrimSpace(v) == "" {
		return apperror.NewValidation(field, field+" cannot be empty")
	}
	if len(v) < minLen {
		return apperror.NewValidation(field, fmt.Sprintf("%s must be at least %d characters", field, minLen))
	}
	if len(v) > maxLen {
		return apperror.NewValidation(field, fmt.Sprintf("%s exceeds %d characters", field, maxLen))
	}
	return nil
}

// RequireURL validates an http(s) URL.
func RequireURL(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return apperror.NewValidation(field, field+" cannot be empty")
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperror.NewValidation(field, "malformed URL: "+v)
	}
	return nil
}

// OptionalURL allows absence but validates the URL when present.
func OptionalURL(field string, v *string) error {
	if v == nil {
		return nil
	}
	return RequireURL(field, *v)
}

func RequireOwner(ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return apperror.NewValidation("profile_id", "profile_id cannot be empty")
	}
	return nil
}

func RequireOrderIndex(index int) error {
	if index < 0 {
		return apperror.NewValidation("order_index", fmt.Sprintf("order_index must be >= 0, got %d", index))
	}
	return nil
}
