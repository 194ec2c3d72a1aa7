package project

import (
	"go-sitebooks/internal/middleware"
	"go-sitebooks/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, logger *zap.Logger) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	projects.Use(middleware.ContextLogger(logger))
	{
		projects.GET("", middleware.RateLimitByUser(5, 10), middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionRead), h.GetAll)
		projects.POST("", middleware.RateLimitByUser(1, 3), middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionCreate), h.Create)
		projects.GET("/:id", middleware.RateLimitByUser(5, 10), middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionRead), h.GetByID)
		projects.PUT("/:id", middleware.RateLimitByUser(1, 3), middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionUpdate), h.Update)
		projects.DELETE("/:id", middleware.RateLimitByUser(1, 3), middleware.RBACAuthorize(rbacService, rbac.ResourceProject, rbac.ActionDelete), h.Delete)
	}
}
