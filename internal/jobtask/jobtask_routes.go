package jobtask

import (
	"github.com/abangiyan/hongwei-crew-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	tasks := r.Group("/job-tasks")
	tasks.Use(middleware.AuthMiddleware())
	{
		tasks.GET("", middleware.RBACAuthorize(rbacService, "job_task", "read"), h.GetAll)
		tasks.POST("", middleware.RBACAuthorize(rbacService, "job_task", "create"), h.Create)
		tasks.GET("/:id", middleware.RBACAuthorize(rbacService, "job_task", "read"), h.GetById)
		tasks.PUT("/:id", middleware.RBACAuthorize(rbacService, "job_task", "update"), h.Update)
		tasks.DELETE("/:id", middleware.RBACAuthorize(rbacService, "job_task", "delete"), h.Delete)
	}
}
