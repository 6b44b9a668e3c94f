package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"licitaya-api/internal/service"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registerBody = `{
	"name": "María Gómez",
	"email": "maria@example.do",
	"phone": "+1-809-555-0101",
	"company": "Constructora Gómez",
	"preferences": {"keywords": ["agua", "construcción"], "max_budget": 500000, "regions": ["Santo Domingo"]}
}`

func postRegister(handler *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestRegisterNewUser(t *testing.T) {
	userService := &stubUserService{outcome: service.OutcomeRegistered}
	handler := newTestRouter(&stubTenderService{}, userService, nil)

	rec := postRegister(handler, registerBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "check your email")

	require.NotNil(t, userService.input)
	assert.Equal(t, "maria@example.do", userService.input.Email)
	assert.Equal(t, []string{"agua", "construcción"}, userService.input.Preferences.Keywords)
	require.NotNil(t, userService.input.Preferences.MaxBudget)
	assert.Equal(t, 500000.0, *userService.input.Preferences.MaxBudget)
}

func TestRegisterResent(t *testing.T) {
	userService := &stubUserService{outcome: service.OutcomeResent}
	handler := newTestRouter(&stubTenderService{}, userService, nil)

	rec := postRegister(handler, registerBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "verification email has been sent")
}

func TestRegisterAlreadyVerifiedConflicts(t *testing.T) {
	handler := newTestRouter(&stubTenderService{}, &stubUserService{err: service.ErrAlreadyVerified}, nil)

	rec := postRegister(handler, registerBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already registered")
}

func TestRegisterTooManyKeywordsRejected(t *testing.T) {
	userService := &stubUserService{outcome: service.OutcomeRegistered}
	handler := newTestRouter(&stubTenderService{}, userService, nil)

	body := `{
		"name": "María Gómez",
		"email": "maria@example.do",
		"preferences": {"keywords": ["a", "b", "c", "d", "e", "f"]}
	}`
	rec := postRegister(handler, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Rejected by validation, the service is never reached.
	assert.Nil(t, userService.input)
}

func TestRegisterRequiresEmail(t *testing.T) {
	handler := newTestRouter(&stubTenderService{}, &stubUserService{}, nil)

	rec := postRegister(handler, `{"name": "María Gómez"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterPersistenceFailureIsServerError(t *testing.T) {
	handler := newTestRouter(&stubTenderService{}, &stubUserService{err: assert.AnError}, nil)

	rec := postRegister(handler, registerBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRegisterIsRateLimited(t *testing.T) {
	handler := newTestRouter(&stubTenderService{}, &stubUserService{outcome: service.OutcomeRegistered}, nil)

	var last int
	for i := 0; i < registerRateBurst+1; i++ {
		last = postRegister(handler, registerBody).Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestVerifySuccess(t *testing.T) {
	userService := &stubUserService{}
	handler := newTestRouter(&stubTenderService{}, userService, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/verify/some-token", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "verified successfully")
	assert.Equal(t, "some-token", userService.token)
}

func TestVerifyUnknownTokenIsNotFound(t *testing.T) {
	handler := newTestRouter(&stubTenderService{}, &stubUserService{err: service.ErrTokenNotFound}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/verify/bad-token", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyExpiredTokenIsBadRequest(t *testing.T) {
	handler := newTestRouter(&stubTenderService{}, &stubUserService{err: service.ErrTokenExpired}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/verify/old-token", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}
