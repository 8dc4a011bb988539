package response

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tutor-booking/internal/lib/validate"
)

func TestOK(t *testing.T) {
	body, err := json.Marshal(OK())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"OK"}`, string(body))
}

func TestError(t *testing.T) {
	msg := "something went wrong"
	resp := Error(msg)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, msg, resp.Error)
}

func TestValidationError(t *testing.T) {
	type request struct {
		SessionID   string `json:"id_sesion" validate:"required"`
		DateReserve string `json:"date_reserve" validate:"required"`
	}

	err := validate.New().Struct(request{})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "field id_sesion is a required field, field date_reserve is a required field", resp.Error)
}
