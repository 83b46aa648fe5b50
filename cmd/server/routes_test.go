package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"alvezinc.backend/internal/domain/entities"
	"alvezinc.backend/internal/interfaces/http/handlers"
	"alvezinc.backend/internal/interfaces/http/middleware"
	"alvezinc.backend/pkg/jwt"
)

type accountServiceFake struct{}

func (accountServiceFake) Register(context.Context, *entities.CreateAccountInput) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (accountServiceFake) Login(context.Context, *entities.LoginInput) (*entities.AuthResponse, error) {
	return &entities.AuthResponse{AccessToken: "t", ExpiresIn: 3600}, nil
}

func (accountServiceFake) Activate(context.Context, string) error { return nil }

type userServiceFake struct{}

func (userServiceFake) UpdateProfile(context.Context, uuid.UUID, *entities.UpdateProfileInput) error {
	return nil
}

func (userServiceFake) GetProfile(context.Context, uuid.UUID) (*entities.Profile, error) {
	return &entities.Profile{FullName: "Jane"}, nil
}

type shopServiceFake struct{}

func (shopServiceFake) ListProducts(context.Context) ([]*entities.Product, error) {
	return nil, nil
}

func (shopServiceFake) SearchProducts(context.Context, string) ([]*entities.ProductSearchResult, error) {
	return nil, nil
}

func newTestRouter(jwtService *jwt.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		accountHandler: handlers.NewAccountHandler(accountServiceFake{}),
		userHandler:    handlers.NewUserHandler(userServiceFake{}),
		shopHandler:    handlers.NewShopHandler(shopServiceFake{}),
		authMiddleware: middleware.AuthMiddleware(jwtService),
	})
	return r
}

func TestRegisteredRoutes(t *testing.T) {
	r := newTestRouter(jwt.NewJWTService("secret", time.Hour))

	expected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodPost, "/api/v1/account"},
		{http.MethodPost, "/api/v1/account/login"},
		{http.MethodGet, "/api/v1/account/activate"},
		{http.MethodGet, "/api/v1/user/profile"},
		{http.MethodPut, "/api/v1/user/profile"},
		{http.MethodGet, "/api/v1/shop"},
		{http.MethodGet, "/api/v1/shop/search"},
	}

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, e := range expected {
		assert.True(t, registered[e.method+" "+e.path], "missing route %s %s", e.method, e.path)
	}
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(jwt.NewJWTService("secret", time.Hour))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(jwt.NewJWTService("secret", time.Hour))

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/user/profile"},
		{http.MethodPut, "/api/v1/user/profile"},
		{http.MethodGet, "/api/v1/shop"},
		{http.MethodGet, "/api/v1/shop/search"},
	}

	for _, e := range protected {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(e.method, e.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s must require auth", e.method, e.path)
	}
}

func TestProtectedRouteAcceptsValidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour)
	r := newTestRouter(jwtService)

	token, _, err := jwtService.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shop", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
