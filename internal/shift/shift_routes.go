package shift

import (
	"github.com/abangiyan/hongwei-crew-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware())
	{
		shifts.GET("", middleware.RBACAuthorize(rbacService, "shift", "read"), h.GetAll)
		shifts.POST("", middleware.RBACAuthorize(rbacService, "shift", "create"), h.Create)
		shifts.GET("/:id", middleware.RBACAuthorize(rbacService, "shift", "read"), h.GetById)
		shifts.PUT("/:id", middleware.RBACAuthorize(rbacService, "shift", "update"), h.Update)
		shifts.DELETE("/:id", middleware.RBACAuthorize(rbacService, "shift", "delete"), h.Delete)
	}
}
