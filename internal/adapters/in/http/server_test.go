package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chefbook/internal/adapters/in/auth"
	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/pkg/errs"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "http-test-secret"

func issueToken(t *testing.T, userID kernel.UUID, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestJWTMiddleware(t *testing.T) {
	parser, err := auth.NewTokenParser(testSecret)
	require.NoError(t, err)

	e := echo.New()
	handler := JWTMiddleware(parser)(func(ctx echo.Context) error {
		principal, ok := principalFrom(ctx)
		require.True(t, ok)
		return ctx.String(http.StatusOK, principal.UserID.String())
	})

	t.Run("valid token reaches handler with principal", func(t *testing.T) {
		userID := kernel.NewUUID()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, userID, "chef"))
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID.String(), rec.Body.String())
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer nope")
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRespondError(t *testing.T) {
	e := echo.New()

	run := func(t *testing.T, err error) (int, ErrorResponse) {
		t.Helper()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, respondError(e.NewContext(req, rec), err))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec.Code, body
	}

	t.Run("object not found maps to 404", func(t *testing.T) {
		code, _ := run(t, errs.NewObjectNotFoundError("order", kernel.NewUUID().String()))
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("not authorized maps to 403", func(t *testing.T) {
		code, _ := run(t, errs.NewNotAuthorizedError(kernel.NewUUID().String(), "accept order"))
		assert.Equal(t, http.StatusForbidden, code)
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		code, body := run(t, errs.NewConflictError("order is already confirmed"))
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "order is already confirmed", body.Message)
		assert.Zero(t, body.RemainingSeconds)
	})

	t.Run("conflict with remaining time exposes the countdown", func(t *testing.T) {
		code, body := run(t, errs.NewConflictErrorWithRemaining("acceptance window still open", 90*time.Second))
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, int64(90), body.RemainingSeconds)
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		code, _ := run(t, errs.NewValueIsRequiredError("address"))
		assert.Equal(t, http.StatusBadRequest, code)

		code, _ = run(t, errs.NewValueIsInvalidError("people"))
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("anything else maps to 500", func(t *testing.T) {
		code, body := run(t, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Internal server error", body.Message)
	})
}
