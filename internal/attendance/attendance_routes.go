package attendance

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
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionRead),
			handler.GetAll,
		)
		attendance.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionRead),
			handler.GetByID,
		)
		attendance.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.Idempotency(redisClient),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionCreate),
			handler.Record,
		)
		attendance.POST("/bulk",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(redisClient),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionCreate),
			handler.RecordBulk,
		)
		attendance.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionUpdate),
			handler.Update,
		)
		attendance.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
