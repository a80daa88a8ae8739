package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetCode(Validation("bad input")))
	assert.Equal(t, http.StatusBadRequest, GetCode(Validationf("invalid status: %s", "DONE")))
	assert.Equal(t, http.StatusConflict, GetCode(Conflict("slot taken")))
	assert.Equal(t, http.StatusNotFound, GetCode(NotFound("appointment")))
	assert.Equal(t, http.StatusUnauthorized, GetCode(Unauthorized("bad token")))
	assert.Equal(t, http.StatusForbidden, GetCode(Forbidden("not yours")))
	assert.Equal(t, http.StatusBadGateway, GetCode(Downstream(errors.New("gateway down"))))
	assert.Equal(t, http.StatusInternalServerError, GetCode(Internal(errors.New("db down"))))

	// Unknown errors default to 500.
	assert.Equal(t, http.StatusInternalServerError, GetCode(errors.New("plain")))
}

func TestGetCodeUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("booking failed: %w", Conflict("slot taken"))
	assert.Equal(t, http.StatusConflict, GetCode(wrapped))
	assert.True(t, IsConflict(wrapped))
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("service")
	assert.Equal(t, "service not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}

func TestInternalNilPassthrough(t *testing.T) {
	assert.NoError(t, Internal(nil))
}
