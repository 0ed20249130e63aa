package app

import (
	"database/sql"
	"path/filepath"

	"github.com/abangiyan/hongwei-crew-manager/internal/auth"
	"github.com/abangiyan/hongwei-crew-manager/internal/branch"
	"github.com/abangiyan/hongwei-crew-manager/internal/employee"
	"github.com/abangiyan/hongwei-crew-manager/internal/jobtask"
	"github.com/abangiyan/hongwei-crew-manager/internal/leave"
	"github.com/abangiyan/hongwei-crew-manager/internal/messaging/kafka"
	"github.com/abangiyan/hongwei-crew-manager/internal/middleware"
	"github.com/abangiyan/hongwei-crew-manager/internal/rbac"
	"github.com/abangiyan/hongwei-crew-manager/internal/rbac/infra"
	"github.com/abangiyan/hongwei-crew-manager/internal/role"
	"github.com/abangiyan/hongwei-crew-manager/internal/schedule"
	"github.com/abangiyan/hongwei-crew-manager/internal/shared/counter"
	"github.com/abangiyan/hongwei-crew-manager/internal/shift"
	"github.com/abangiyan/hongwei-crew-manager/internal/team"

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
) error {
	logger := zap.L()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	branchRepo := branch.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	jobTaskRepo := jobtask.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	rbacRepo := rbac.NewRepository(gormDB)
	roleRepo := role.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	teamRepo := team.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	branchService := branch.NewService(db, branchRepo)
	draftStore := schedule.NewRedisDraftStore(rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	jobTaskService := jobtask.NewService(db, jobTaskRepo)
	leaveService := leave.NewService(db, leaveRepo, outboxRepo)
	roleService := role.NewService(db, roleRepo)
	scheduleService := schedule.NewService(db, scheduleRepo, counterRepo, outboxRepo, draftStore)
	shiftService := shift.NewService(db, shiftRepo)
	teamService := team.NewService(db, teamRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	branchHandler := branch.NewHandler(branchService)
	employeeHandler := employee.NewHandler(employeeService)
	jobTaskHandler := jobtask.NewHandler(jobTaskService)
	leaveHandler := leave.NewHandler(leaveService)
	rbacHandler := rbac.NewHandler(rbacService)
	roleHandler := role.NewHandler(roleService)
	scheduleHandler := schedule.NewHandlerWithRedis(scheduleService, rdb, logger)
	shiftHandler := shift.NewHandler(shiftService)
	teamHandler := team.NewHandler(teamService)

	router.Use(middleware.RequestID())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		branch.RegisterRoutes(api, branchHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		jobtask.RegisterRoutes(api, jobTaskHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
		role.RegisterRoutes(api, roleHandler, rbacService)
		schedule.RegisterRoutes(api, scheduleHandler, rbacService, rdb, logger)
		shift.RegisterRoutes(api, shiftHandler, rbacService)
		team.RegisterRoutes(api, teamHandler, rbacService)
	}

	return nil
}
