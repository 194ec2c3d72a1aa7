package statement

import (
	"go-sitebooks/internal/middleware"
	"go-sitebooks/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	redisClient *redis.Client,
	logger *zap.Logger,
) {
	statements := r.Group("/statements")
	statements.Use(middleware.AuthMiddleware())
	statements.Use(middleware.ContextLogger(logger))
	{
		statements.GET("/workers/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceStatement, rbac.ActionRead),
			handler.Worker,
		)
		statements.GET("/projects/:id/daily",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceStatement, rbac.ActionRead),
			handler.ProjectDaily,
		)
		statements.GET("/projects/:id/workers",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceStatement, rbac.ActionRead),
			handler.ProjectWorkers,
		)
		statements.GET("/suppliers/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceStatement, rbac.ActionRead),
			handler.Supplier,
		)

		statements.POST("/exports",
			middleware.RateLimitByUser(0.2, 2),
			middleware.Idempotency(redisClient),
			middleware.RBACAuthorize(rbacService, rbac.ResourceStatement, rbac.ActionExport),
			handler.RequestExport,
		)
		statements.GET("/exports/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceStatement, rbac.ActionRead),
			handler.GetExport,
		)
		statements.GET("/exports/:id/download",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceStatement, rbac.ActionExport),
			handler.DownloadExport,
		)
	}
}
