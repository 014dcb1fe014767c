package auth

import (
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
)

// AdminDashboard returns the headline counts shown on the back-office
// landing page.
func AdminDashboard(c *gin.Context) {
	var orders, consoles, customers, leads, agents int64

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Order{}, &orders},
		{&models.Console{}, &consoles},
		{&models.Customer{}, &customers},
		{&models.Lead{}, &leads},
		{&models.SalesAgent{}, &agents},
	}

	for _, count := range counts {
		if err := utils.DB.Model(count.model).Count(count.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":      orders,
		"consoles":    consoles,
		"customers":   customers,
		"leads":       leads,
		"sales_agents": agents,
	})
}

// UserDashboard summarizes the portal user's own shipments.
func UserDashboard(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		deny(c)
		return
	}

	var orders []models.Order
	if err := utils.DB.Preload("Cartons").Where("username = ?", sess.Username).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	totalCartons := 0
	totalCBM := 0.0
	for _, order := range orders {
		totalCartons += order.TotalCartons
		for _, carton := range order.Cartons {
			totalCBM += carton.Volume()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":        len(orders),
		"total_cartons": totalCartons,
		"total_cbm":     totalCBM,
	})
}
