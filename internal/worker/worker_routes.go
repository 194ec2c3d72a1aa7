package worker

import (
	"go-sitebooks/internal/middleware"
	"go-sitebooks/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, logger *zap.Logger) {
	workers := r.Group("/workers")
	workers.Use(middleware.AuthMiddleware())
	workers.Use(middleware.ContextLogger(logger))
	{
		workers.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorker, rbac.ActionRead),
			handler.GetAll,
		)
		workers.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorker, rbac.ActionRead),
			handler.GetOptions,
		)
		workers.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorker, rbac.ActionRead),
			handler.GetByID,
		)
		workers.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorker, rbac.ActionCreate),
			handler.Create,
		)
		workers.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorker, rbac.ActionUpdate),
			handler.Update,
		)
		workers.PATCH("/:id/active",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorker, rbac.ActionUpdate),
			handler.ToggleActive,
		)
		workers.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorker, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
