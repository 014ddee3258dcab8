package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/middleware"
)

func adminIDFromContext(ctx *gin.Context) (string, bool) {
	id, ok := ctx.Value(middleware.ContextKeyAdminID).(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

func adminRoleFromContext(ctx *gin.Context) (string, bool) {
	role, ok := ctx.Value(middleware.ContextKeyRole).(string)
	if !ok || role == "" {
		return "", false
	}

	return role, true
}
