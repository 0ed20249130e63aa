package rbac

import (
	"github.com/abangiyan/hongwei-crew-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, svc Service) {
	admin := r.Group("/rbac")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/reload", middleware.RBACAuthorize(svc, "rbac", "manage"), h.Reload)
	}
}
