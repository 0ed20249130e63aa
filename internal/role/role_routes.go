package role

import (
	"github.com/abangiyan/hongwei-crew-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("", middleware.RBACAuthorize(rbacService, "role", "read"), h.GetAll)
		roles.POST("", middleware.RBACAuthorize(rbacService, "role", "create"), h.Create)
		roles.GET("/:id", middleware.RBACAuthorize(rbacService, "role", "read"), h.GetById)
		roles.PUT("/:id", middleware.RBACAuthorize(rbacService, "role", "update"), h.Update)
		roles.DELETE("/:id", middleware.RBACAuthorize(rbacService, "role", "delete"), h.Delete)
	}
}
