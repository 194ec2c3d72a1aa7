package fundtransfer

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
	funds := r.Group("/fund-transfers")
	funds.Use(middleware.AuthMiddleware())
	funds.Use(middleware.ContextLogger(logger))
	{
		funds.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFundTransfer, rbac.ActionRead),
			handler.GetAll,
		)
		funds.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFundTransfer, rbac.ActionRead),
			handler.GetByID,
		)
		funds.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(redisClient),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFundTransfer, rbac.ActionCreate),
			handler.Create,
		)
		funds.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFundTransfer, rbac.ActionDelete),
			handler.Delete,
		)
	}

	between := r.Group("/project-fund-transfers")
	between.Use(middleware.AuthMiddleware())
	between.Use(middleware.ContextLogger(logger))
	{
		between.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFundTransfer, rbac.ActionRead),
			handler.GetProjectTransfers,
		)
		between.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFundTransfer, rbac.ActionRead),
			handler.GetProjectTransferByID,
		)
		between.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(redisClient),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFundTransfer, rbac.ActionCreate),
			handler.CreateProjectTransfer,
		)
		between.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFundTransfer, rbac.ActionDelete),
			handler.DeleteProjectTransfer,
		)
	}
}
