package app

import (
	"database/sql"

	"go-sitebooks/internal/attendance"
	"go-sitebooks/internal/auth"
	"go-sitebooks/internal/dailysummary"
	"go-sitebooks/internal/fundtransfer"
	"go-sitebooks/internal/ledger"
	"go-sitebooks/internal/messaging/kafka"
	"go-sitebooks/internal/project"
	"go-sitebooks/internal/purchase"
	"go-sitebooks/internal/rbac"
	"go-sitebooks/internal/rbac/infra"
	"go-sitebooks/internal/shared/counter"
	"go-sitebooks/internal/shared/env"
	"go-sitebooks/internal/statement"
	"go-sitebooks/internal/storage"
	"go-sitebooks/internal/supplier"
	"go-sitebooks/internal/user"
	"go-sitebooks/internal/worker"
	"go-sitebooks/internal/workertransfer"

	"github.com/bsm/redislock"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	store storage.Storage,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	workerRepo := worker.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	workerTransferRepo := workertransfer.NewRepository(gormDB)
	supplierRepo := supplier.NewRepository(gormDB)
	purchaseRepo := purchase.NewRepository(gormDB)
	fundTransferRepo := fundtransfer.NewRepository(gormDB)
	summaryRepo := dailysummary.NewRepository(gormDB)
	statementRepo := statement.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(env.String("RBAC_MODEL_PATH", ""))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	publisher := ledger.NewOutboxPublisher(outboxRepo)

	authService := auth.NewService(authRepo, rbacService, logger)
	userService := user.NewService(userRepo, logger)
	projectService := project.NewService(db, projectRepo, logger)
	workerService := worker.NewService(db, workerRepo, rdb, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, publisher, logger)
	workerTransferService := workertransfer.NewService(db, workerTransferRepo, publisher, logger)
	supplierService := supplier.NewService(db, supplierRepo, publisher, logger)
	purchaseService := purchase.NewService(db, purchaseRepo, counterRepo, publisher, logger)
	fundTransferService := fundtransfer.NewService(db, fundTransferRepo, publisher, logger)
	summaryService := dailysummary.NewService(db, summaryRepo, summaryLocker(rdb), logger)
	statementService := statement.NewService(db, statementRepo, summaryService, counterRepo, outboxRepo, store, rdb, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	userHandler := user.NewHandler(userService, logger)
	projectHandler := project.NewHandler(projectService, logger)
	workerHandler := worker.NewHandler(workerService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	workerTransferHandler := workertransfer.NewHandler(workerTransferService, logger)
	supplierHandler := supplier.NewHandler(supplierService, logger)
	purchaseHandler := purchase.NewHandler(purchaseService, logger)
	fundTransferHandler := fundtransfer.NewHandler(fundTransferService, logger)
	summaryHandler := dailysummary.NewHandler(summaryService, logger)
	statementHandler := statement.NewHandler(statementService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		rbac.RegisterRoutes(api, rbacHandler)
		user.RegisterRoutes(api, userHandler, rbacService, logger)
		project.RegisterRoutes(api, projectHandler, rbacService, logger)
		worker.RegisterRoutes(api, workerHandler, rbacService, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb, logger)
		workertransfer.RegisterRoutes(api, workerTransferHandler, rbacService, rdb, logger)
		supplier.RegisterRoutes(api, supplierHandler, rbacService, rdb, logger)
		purchase.RegisterRoutes(api, purchaseHandler, rbacService, rdb, logger)
		fundtransfer.RegisterRoutes(api, fundTransferHandler, rbacService, rdb, logger)
		dailysummary.RegisterRoutes(api, summaryHandler, rbacService, logger)
		statement.RegisterRoutes(api, statementHandler, rbacService, rdb, logger)
	}

	return nil
}

// summaryLocker returns an untyped nil without redis so the service sees no
// locker at all.
func summaryLocker(rdb *redis.Client) dailysummary.Locker {
	if rdb == nil {
		return nil
	}
	return redislock.New(rdb)
}
