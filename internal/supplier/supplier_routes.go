package supplier

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
	suppliers := r.Group("/suppliers")
	suppliers.Use(middleware.AuthMiddleware())
	suppliers.Use(middleware.ContextLogger(logger))
	{
		suppliers.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSupplier, rbac.ActionRead),
			handler.GetAll,
		)
		suppliers.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSupplier, rbac.ActionRead),
			handler.GetByID,
		)
		suppliers.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSupplier, rbac.ActionCreate),
			handler.Create,
		)
		suppliers.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSupplier, rbac.ActionUpdate),
			handler.Update,
		)
		suppliers.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSupplier, rbac.ActionDelete),
			handler.Delete,
		)
		suppliers.GET("/:id/payments",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSupplier, rbac.ActionRead),
			handler.GetPayments,
		)
		suppliers.POST("/:id/payments",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(redisClient),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSupplier, rbac.ActionCreate),
			handler.CreatePayment,
		)
	}

	payments := r.Group("/supplier-payments")
	payments.Use(middleware.AuthMiddleware())
	payments.Use(middleware.ContextLogger(logger))
	{
		payments.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSupplier, rbac.ActionRead),
			handler.GetPayments,
		)
		payments.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSupplier, rbac.ActionDelete),
			handler.DeletePayment,
		)
	}
}
