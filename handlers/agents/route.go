package agents

import (
	"github.com/AyanAhmed30/Logistix-sub000/handlers/auth"
	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/gin-gonic/gin"
)

// Agent management is admin territory; no capability opens it to agents.
func RegisterAgentsRoutes(r *gin.RouterGroup) {
	g := r.Group("/agents", auth.RequireRole(models.RoleAdmin))
	g.POST("", CreateAgent)
	g.GET("", GetAgents)
	g.GET("/:id", GetAgent)
	g.PUT("/:id", UpdateAgent)
	g.DELETE("/:id", DeleteAgent)
}
