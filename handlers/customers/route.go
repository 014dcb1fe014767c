package customers

import (
	"github.com/AyanAhmed30/Logistix-sub000/handlers/auth"
	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/gin-gonic/gin"
)

func RegisterCustomersRoutes(r *gin.RouterGroup) {
	g := r.Group("/customers", auth.RequireCapability(models.CapabilityCustomer))
	g.POST("", CreateCustomer)
	g.GET("", GetCustomers)
	g.GET("/:id", GetCustomer)
	g.PUT("/:id", UpdateCustomer)
	g.DELETE("/:id", DeleteCustomer)
}
