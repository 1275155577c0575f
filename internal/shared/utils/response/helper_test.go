package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, write func(c *gin.Context)) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestSuccessEnvelope(t *testing.T) {
	w, env := record(t, func(c *gin.Context) {
		Success(c, http.StatusCreated, "Quote created successfully", map[string]string{"id": "123456"})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, "Quote created successfully", env.Message)
	assert.Empty(t, env.FieldErrors)
	assert.Empty(t, env.Detail)
}

func TestErrorEnvelopeOmitsEmptyFields(t *testing.T) {
	w, env := record(t, func(c *gin.Context) {
		Error(c, http.StatusNotFound, "Booking not found")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Booking not found", env.Message)
	assert.NotContains(t, w.Body.String(), "field_errors")
	assert.NotContains(t, w.Body.String(), "detail")
	assert.NotContains(t, w.Body.String(), "data")
}

func TestErrorWithDetail(t *testing.T) {
	_, env := record(t, func(c *gin.Context) {
		ErrorWithDetail(c, http.StatusBadRequest, "Invalid request body", "unexpected EOF")
	})

	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "unexpected EOF", env.Detail)
}

func TestValidationFailedCarriesFieldMap(t *testing.T) {
	fields := map[string]string{
		"contact.email": "must be a valid email address",
		"days":          "at least one day is required",
	}

	w, env := record(t, func(c *gin.Context) {
		ValidationFailed(c, "Submission failed validation", fields)
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, env.StatusCode)
	assert.Equal(t, fields, env.FieldErrors)
}

func TestRateLimitedEnvelope(t *testing.T) {
	w, env := record(t, func(c *gin.Context) {
		RateLimited(c, 30, 1767225600)
	})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Rate limit exceeded", env.Message)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(30), data["limit"])
	assert.Equal(t, float64(1767225600), data["reset_time"])
}
