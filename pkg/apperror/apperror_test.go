package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindChecksSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("listing X not found"))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestConstructorsSetCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("x").Code)
	assert.Equal(t, http.StatusBadRequest, Validation("x").Code)
	assert.Equal(t, http.StatusConflict, InvalidTransition("x").Code)
	assert.Equal(t, http.StatusBadGateway, Store("x", nil).Code)
}

func TestStoreWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Store("record store unavailable", cause)

	assert.True(t, IsStore(err))
	assert.ErrorIs(t, err, cause)
	// The cause never leaks into the client-facing message.
	assert.Equal(t, "record store unavailable", err.Error())
}
