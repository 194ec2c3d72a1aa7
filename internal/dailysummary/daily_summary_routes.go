package dailysummary

import (
	"go-sitebooks/internal/middleware"
	"go-sitebooks/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	summaries := r.Group("/projects/:id/daily-summaries")
	summaries.Use(middleware.AuthMiddleware())
	summaries.Use(middleware.ContextLogger(logger))
	{
		summaries.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDailySummary, rbac.ActionRead),
			handler.GetRange,
		)
		summaries.GET("/:date",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDailySummary, rbac.ActionRead),
			handler.GetByDate,
		)
		summaries.POST("/rebuild",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDailySummary, rbac.ActionManage),
			handler.Rebuild,
		)
	}
}
