package workertransfer

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
	transfers := r.Group("/worker-transfers")
	transfers.Use(middleware.AuthMiddleware())
	transfers.Use(middleware.ContextLogger(logger))
	{
		transfers.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorkerTransfer, rbac.ActionRead),
			handler.GetAll,
		)
		transfers.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorkerTransfer, rbac.ActionRead),
			handler.GetByID,
		)
		transfers.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(redisClient),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorkerTransfer, rbac.ActionCreate),
			handler.Create,
		)
		transfers.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorkerTransfer, rbac.ActionUpdate),
			handler.Update,
		)
		transfers.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWorkerTransfer, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
