package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NewNotFound("Skill", "abc"), http.StatusNotFound},
		{NewValidation("name", "name cannot be empty"), http.StatusBadRequest},
		{NewConflict("Skill", "name", "Python"), http.StatusConflict},
		{NewBusinessRule("order_index must be unique per profile", "order_index", 3), http.StatusUnprocessableEntity},
		{NewUnauthorized("bad password", nil), http.StatusUnauthorized},
		{NewInternal("boom", errors.New("io")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, ToHTTPStatus(c.err))
	}
}

func TestValidationCarriesField(t *testing.T) {
	err := NewValidation("email", "malformed address")
	assert.Equal(t, "email", err.Field)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	body := err.ToJSON()
	assert.Equal(t, "email", body["field"])
}

func TestBusinessRuleUnwraps(t *testing.T) {
	err := NewBusinessRule("order_index must be unique per profile", "order_index", 0)
	assert.True(t, errors.Is(err, ErrBusinessRule))
	assert.Contains(t, err.Details, "order_index")
}
