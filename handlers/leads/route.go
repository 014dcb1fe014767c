package leads

import (
	"github.com/AyanAhmed30/Logistix-sub000/handlers/auth"
	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/gin-gonic/gin"
)

func RegisterLeadsRoutes(r *gin.RouterGroup) {
	g := r.Group("/leads", auth.RequireCapability(models.CapabilityLead))
	g.POST("", CreateLead)
	g.GET("", GetLeads)
	g.GET("/board", GetLeadBoard)
	g.GET("/:id", GetLead)
	g.PUT("/:id", UpdateLead)
	g.DELETE("/:id", DeleteLead)
	g.POST("/:id/status", UpdateLeadStatus)
	g.POST("/:id/comments", AddLeadComment)
	g.POST("/:id/whatsapp", SendLeadFollowUp)
	g.POST("/:id/convert", ConvertLead)
}
