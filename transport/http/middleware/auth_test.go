package middleware_test

import (
	"hotel/config"
	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const apiKey = "internal-key"

func newRouter(t *testing.T, jwtService jwt.JWT) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
			{Path: "/v1/bookings", Method: http.MethodGet, Permissions: []string{permissions.BookingRead}},
			{Path: "/v1/bookings/{id}/cancel", Method: http.MethodPost, Permissions: []string{permissions.BookingUpdate}},
		},
	}

	auth := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), data, cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		username, _ := r.Context().Value(constant.ContextKeyUsername).(string)
		w.Header().Set("X-Actor", username)
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.Route("/v1", func(v1 chi.Router) {
		v1.Use(auth.APIKey, auth.Auth, auth.RBAC)
		v1.Post("/auth/login", ok)
		v1.Route("/bookings", func(b chi.Router) {
			b.Get("/", ok)
			b.Post("/{id}/cancel", ok)
		})
	})

	return r
}

func claims(permissions ...string) *jwt.Claims {
	return &jwt.Claims{
		Username:    "anna",
		Post:        "Receptionist",
		Permissions: permissions,
		Type:        jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject: "employee-1",
			ID:      "token-1",
		},
	}
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		header     map[string]string
		setup      func(m *jwtMocks.MockJWT)
		wantStatus int
		wantActor  string
	}{
		{
			name:       "skipped endpoint needs no token",
			method:     http.MethodPost,
			path:       "/v1/auth/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			method:     http.MethodGet,
			path:       "/v1/bookings",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			method:     http.MethodGet,
			path:       "/v1/bookings",
			header:     map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			path:   "/v1/bookings",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer abc"},
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("abc", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "granted permission",
			method: http.MethodGet,
			path:   "/v1/bookings",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer abc"},
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("abc", jwt.AccessToken).Return(claims(permissions.BookingRead), nil)
			},
			wantStatus: http.StatusOK,
			wantActor:  "anna",
		},
		{
			name:   "missing permission on nested route",
			method: http.MethodPost,
			path:   "/v1/bookings/b-1/cancel",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer abc"},
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("abc", jwt.AccessToken).Return(claims(permissions.BookingRead), nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "valid api key bypasses token",
			method:     http.MethodPost,
			path:       "/v1/bookings/b-1/cancel",
			header:     map[string]string{constant.RequestHeaderAPIKey: apiKey},
			wantStatus: http.StatusOK,
			wantActor:  constant.ContextSystem,
		},
		{
			name:       "wrong api key",
			method:     http.MethodGet,
			path:       "/v1/bookings",
			header:     map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)

			if tt.setup != nil {
				tt.setup(jwtService)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			newRouter(t, jwtService).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantActor, rec.Header().Get("X-Actor"))
		})
	}
}
