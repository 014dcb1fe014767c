package consoles

import (
	"github.com/AyanAhmed30/Logistix-sub000/handlers/auth"
	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/gin-gonic/gin"
)

func RegisterConsolesRoutes(r *gin.RouterGroup) {
	g := r.Group("/consoles", auth.RequireCapability(models.CapabilityConsole))
	g.POST("", CreateConsole)
	g.GET("", GetConsoles)
	g.GET("/:id", GetConsole)
	g.PUT("/:id", UpdateConsole)
	g.DELETE("/:id", DeleteConsole)
	g.POST("/:id/assign-orders", AssignOrders)
	g.POST("/:id/remove-order", RemoveOrder)
	g.POST("/:id/ready", MarkReadyForLoading)
}
