package invoices

import (
	"github.com/AyanAhmed30/Logistix-sub000/handlers/auth"
	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/gin-gonic/gin"
)

func RegisterInvoicesRoutes(r *gin.RouterGroup) {
	g := r.Group("/invoices", auth.RequireCapability(models.CapabilityInvoice))
	g.POST("", CreateInvoice)
	g.GET("", GetInvoices)
	g.GET("/:id", GetInvoice)
	g.PUT("/:id", UpdateInvoice)
	g.DELETE("/:id", DeleteInvoice)
	g.GET("/:id/document", GetInvoiceDocument)
}

func RegisterPackingListsRoutes(r *gin.RouterGroup) {
	g := r.Group("/packing-lists", auth.RequireCapability(models.CapabilityPackingList))
	g.POST("", CreatePackingList)
	g.GET("", GetPackingLists)
	g.GET("/:id", GetPackingList)
	g.PUT("/:id", UpdatePackingList)
	g.DELETE("/:id", DeletePackingList)
	g.GET("/:id/document", GetPackingListDocument)
}
