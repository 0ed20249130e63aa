package team

import (
	"github.com/abangiyan/hongwei-crew-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.GET("", middleware.RBACAuthorize(rbacService, "team", "read"), h.GetAll)
		teams.POST("", middleware.RBACAuthorize(rbacService, "team", "create"), h.Create)
		teams.GET("/:id", middleware.RBACAuthorize(rbacService, "team", "read"), h.GetById)
		teams.PUT("/:id", middleware.RBACAuthorize(rbacService, "team", "update"), h.Update)
		teams.DELETE("/:id", middleware.RBACAuthorize(rbacService, "team", "delete"), h.Delete)
	}
}
