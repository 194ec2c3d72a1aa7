package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status", func(t *testing.T) {
		err := New(CodeConflict, "already exists", http.StatusConflict)
		got := ToHTTP(err)
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, CodeConflict, got.Code)
		assert.Equal(t, "already exists", got.Message)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		err := fmt.Errorf("create: %w", ErrNotFound)
		got := ToHTTP(err)
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, CodeNotFound, got.Code)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		got := ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, CodeInternalError, got.Code)
	})

	t.Run("validation error is mapped", func(t *testing.T) {
		type req struct {
			Name string `validate:"required"`
		}
		v := validator.New()
		verr := v.Struct(req{})
		got := ToHTTP(verr)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, CodeInvalidInput, got.Code)
		assert.Equal(t, "Name is required", got.Message)
	})
}

func TestFormatFieldName(t *testing.T) {
	assert.Equal(t, "Daily Wage", formatFieldName("daily_wage"))
	assert.Equal(t, "Name", formatFieldName("name"))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternalError, "x", http.StatusInternalServerError))
}
