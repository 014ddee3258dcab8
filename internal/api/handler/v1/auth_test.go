package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/middleware"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/config"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/service"
)

type stubAuthService struct {
	admin     domain.Admin
	loginErr  error
	changeErr error

	gotAdminID string
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (domain.Admin, error) {
	return s.admin, s.loginErr
}

func (s *stubAuthService) ChangePassword(_ context.Context, adminID, _, _ string) error {
	s.gotAdminID = adminID

	return s.changeErr
}

func authTestRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewAuthHandler(&config.APIConfig{JWTSigningKey: "test-key"}, svc)
	router.POST("/auth/login", handler.HandleLogin)
	router.POST("/auth/change-password",
		func(ctx *gin.Context) { ctx.Set(middleware.ContextKeyAdminID, "admin-1") },
		handler.HandleChangePassword,
	)

	return router
}

func TestHandleLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
	}{
		{
			name:       "valid credentials return a token",
			body:       `{"username":"root","password":"secret123"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown username returns unauthorized",
			body:       `{"username":"ghost","password":"secret123"}`,
			loginErr:   service.ErrAdminNotFound,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong password returns unauthorized",
			body:       `{"username":"root","password":"nope"}`,
			loginErr:   service.ErrWrongPassword,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "inactive account returns unauthorized",
			body:       `{"username":"root","password":"secret123"}`,
			loginErr:   service.ErrAdminInactive,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing fields rejected",
			body:       `{"username":"root"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAuthService{
				admin:    domain.Admin{ID: "admin-1", Username: "root", Role: domain.AdminRoleMain},
				loginErr: tt.loginErr,
			}
			router := authTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			require.Equal(t, tt.wantStatus, resp.Code)

			if tt.wantStatus == http.StatusOK {
				var body map[string]any
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
				assert.NotEmpty(t, body["token"])
			}
		})
	}
}

func TestHandleChangePassword(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		changeErr  error
		wantStatus int
	}{
		{
			name:       "valid change succeeds",
			body:       `{"currentPassword":"old-pass1","newPassword":"new-pass1","confirmPassword":"new-pass1"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong current password rejected",
			body:       `{"currentPassword":"bad","newPassword":"new-pass1","confirmPassword":"new-pass1"}`,
			changeErr:  service.ErrWrongPassword,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "weak new password rejected",
			body:       `{"currentPassword":"old-pass1","newPassword":"short","confirmPassword":"short"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "mismatched confirmation rejected",
			body:       `{"currentPassword":"old-pass1","newPassword":"new-pass1","confirmPassword":"other-pass1"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAuthService{changeErr: tt.changeErr}
			router := authTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "admin-1", svc.gotAdminID)
			}
		})
	}
}
