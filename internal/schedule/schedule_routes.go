package schedule

import (
	"github.com/abangiyan/hongwei-crew-manager/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	schedules := r.Group("/schedules")
	schedules.Use(middleware.AuthMiddleware())
	schedules.Use(middleware.ContextLogger(logger))
	{
		schedules.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "schedule", "read"),
			handler.GetAll,
		)

		schedules.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "schedule", "read"),
			handler.GetById,
		)

		schedules.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "schedule", "create"),
			handler.Create,
		)

		schedules.POST("/batch",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "schedule", "create"),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
			handler.CreateBatch,
		)

		schedules.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "schedule", "update"),
			handler.UpdateStatus,
		)

		schedules.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "schedule", "delete"),
			handler.Delete,
		)
	}

	// Draft wizard per user, satu draft berjalan per akun.
	draft := r.Group("/schedules/draft")
	draft.Use(middleware.AuthMiddleware())
	draft.Use(middleware.ContextLogger(logger))
	draft.Use(middleware.RBACAuthorize(rbacService, "schedule", "create"))
	{
		draft.GET("", handler.GetDraft)
		draft.POST("/branch", handler.DraftSetBranch)
		draft.POST("/shift1", handler.DraftSetShift1)
		draft.POST("/shift2", handler.DraftSetShift2)
		draft.POST("/back", handler.DraftBack)
		draft.POST("/submit", middleware.ExtractUserID(), middleware.Idempotency(rdb), handler.DraftSubmit)
		draft.DELETE("", handler.DiscardDraft)
	}
}
