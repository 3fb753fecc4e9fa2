package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirana/config"
	"kirana/internal/delivery/http/middleware"
	"kirana/internal/delivery/http/validator"
	"kirana/internal/infra/auth"
	"kirana/internal/infra/kvstore"
	"kirana/internal/infra/persistence/localstore"
	"kirana/internal/usecase/impl"
)

func testEcho(t *testing.T) (*echo.Echo, *middleware.AuthMiddleware, *AccountHandler) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-session-secret"
	cfg.Admin.Email = "admin@kirana.com"
	cfg.Admin.Password = "admin123"
	cfg.Order.DeliveryCharge = 25
	cfg.Order.TrackingPollInterval = 10 * time.Millisecond

	store := kvstore.NewMemoryStore()
	ownerRepo := localstore.NewOwnerRepository(store)
	customerRepo := localstore.NewCustomerRepository(store)

	logger := slog.New(slog.DiscardHandler)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accountUC := impl.NewAccountService(cfg, ownerRepo, customerRepo, auth.NewBcryptHasher(), tokenSvc)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e, middleware.NewAuthMiddleware(tokenSvc), NewAccountHandler(accountUC, logger)
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAccountHandler_RegisterAndLoginOwner_Integration(t *testing.T) {
	e, _, handler := testEcho(t)
	e.POST("/auth/owner/register", handler.RegisterOwner)
	e.POST("/auth/owner/login", handler.LoginOwner)

	rec := postJSON(e, "/auth/owner/register",
		`{"fullName":"Rajesh Kumar","mobile":"9876543210","email":"rajesh@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
	assert.Contains(t, rec.Body.String(), `"role":"owner"`)

	// Registering twice maps to a conflict through the error handler.
	rec = postJSON(e, "/auth/owner/register",
		`{"fullName":"Other","mobile":"9000000001","email":"x@example.com","password":"pass"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "OWNER_ALREADY_EXISTS")

	rec = postJSON(e, "/auth/owner/login", `{"mobile":"9876543210","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(e, "/auth/owner/login", `{"mobile":"9876543210","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAccountHandler_ValidationFailureMapsToBadRequest(t *testing.T) {
	e, _, handler := testEcho(t)
	e.POST("/auth/owner/register", handler.RegisterOwner)

	// Missing required fields trips the request validator.
	rec := postJSON(e, "/auth/owner/register", `{"fullName":"Rajesh Kumar"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthMiddleware_ProtectsRoleRoutes_Integration(t *testing.T) {
	e, authMW, handler := testEcho(t)
	e.POST("/auth/customer/login", handler.LoginCustomer)
	e.GET("/owner/ping",
		func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		authMW.Authenticate,
		authMW.RequireRole("owner"))

	// No token at all.
	req := httptest.NewRequest(http.MethodGet, "/owner/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A customer session must not open the owner surface.
	loginRec := postJSON(e, "/auth/customer/login",
		`{"mobile":"9000000000","name":"Priya","otp":"1234"}`)
	require.Equal(t, http.StatusOK, loginRec.Code)

	body := loginRec.Body.String()
	tokenStart := strings.Index(body, `"token":"`) + len(`"token":"`)
	token := body[tokenStart : tokenStart+strings.Index(body[tokenStart:], `"`)]

	req = httptest.NewRequest(http.MethodGet, "/owner/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
