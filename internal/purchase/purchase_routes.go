package purchase

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
	purchases := r.Group("/purchases")
	purchases.Use(middleware.AuthMiddleware())
	purchases.Use(middleware.ContextLogger(logger))
	{
		purchases.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePurchase, rbac.ActionRead),
			handler.GetAll,
		)
		purchases.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePurchase, rbac.ActionRead),
			handler.GetByID,
		)
		purchases.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(redisClient),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePurchase, rbac.ActionCreate),
			handler.Create,
		)
		purchases.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePurchase, rbac.ActionUpdate),
			handler.Update,
		)
		purchases.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePurchase, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
