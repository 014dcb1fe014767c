package orders

import (
	"github.com/AyanAhmed30/Logistix-sub000/handlers/auth"
	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/gin-gonic/gin"
)

func RegisterOrdersRoutes(r *gin.RouterGroup) {
	g := r.Group("/orders", auth.RequireCapability(models.CapabilityOrder))
	g.POST("", CreateOrder)
	g.GET("", GetOrders)
	g.GET("/:id", GetOrder)
	g.PUT("/:id", UpdateOrder)
	g.DELETE("/:id", DeleteOrder)
	g.POST("/:id/cartons", AddCartons)
	g.DELETE("/:id/cartons/:carton_id", DeleteCarton)
	g.GET("/:id/cartons/:carton_id/label", GetCartonLabel)
}

// RegisterUserOrdersRoutes exposes the customer-portal view: own orders only.
func RegisterUserOrdersRoutes(r *gin.RouterGroup) {
	r.POST("/orders", CreateUserOrder)
	r.GET("/orders", GetUserOrders)
	r.GET("/orders/:id", GetUserOrder)
}
