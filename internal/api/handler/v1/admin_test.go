package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/middleware"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
)

type stubAdminService struct {
	admins []domain.Admin
}

func (s *stubAdminService) List(_ context.Context) ([]domain.Admin, error) {
	return s.admins, nil
}

func (s *stubAdminService) Create(_ context.Context, admin domain.Admin, _ string) (domain.Admin, error) {
	return admin, nil
}

func (s *stubAdminService) Update(_ context.Context, admin domain.Admin) (domain.Admin, error) {
	return admin, nil
}

func (s *stubAdminService) Delete(_ context.Context, _ string) error {
	return nil
}

func adminTestRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewAdminHandler(&stubAdminService{})
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyAdminID, "admin-1")
		ctx.Set(middleware.ContextKeyRole, role)
	})
	router.GET("/admins", handler.HandleListAdmins)
	router.DELETE("/admins/:adminID", handler.HandleDeleteAdmin)

	return router
}

func TestAdminHandlerRequiresMainRole(t *testing.T) {
	router := adminTestRouter(domain.AdminRoleNormal)

	req := httptest.NewRequest(http.MethodGet, "/admins", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestAdminHandlerMainRoleAllowed(t *testing.T) {
	router := adminTestRouter(domain.AdminRoleMain)

	req := httptest.NewRequest(http.MethodGet, "/admins", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAdminHandlerRejectsSelfDelete(t *testing.T) {
	router := adminTestRouter(domain.AdminRoleMain)

	req := httptest.NewRequest(http.MethodDelete, "/admins/admin-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
