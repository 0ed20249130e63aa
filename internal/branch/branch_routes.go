package branch

import (
	"github.com/abangiyan/hongwei-crew-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	branches := r.Group("/branches")
	branches.Use(middleware.AuthMiddleware())
	{
		branches.GET("", middleware.RBACAuthorize(rbacService, "branch", "read"), h.GetAll)
		branches.POST("", middleware.RBACAuthorize(rbacService, "branch", "create"), h.Create)
		branches.GET("/:id", middleware.RBACAuthorize(rbacService, "branch", "read"), h.GetById)
		branches.PUT("/:id", middleware.RBACAuthorize(rbacService, "branch", "update"), h.Update)
		branches.DELETE("/:id", middleware.RBACAuthorize(rbacService, "branch", "delete"), h.Delete)
	}
}
