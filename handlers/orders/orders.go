package orders

import (
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/handlers/auth"
	"github.com/AyanAhmed30/Logistix-sub000/handlers/consoles"
	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type orderInput struct {
	Username     string `json:"username"`
	ShippingMark string `json:"shipping_mark"`
	Destination  string `json:"destination"`
	TotalCartons int    `json:"total_cartons"`
	Description  string `json:"description"`
}

func (in *orderInput) validate() error {
	if in.ShippingMark == "" {
		return utils.ValidationError("Shipping mark is required.")
	}
	if in.Destination == "" {
		return utils.ValidationError("Destination is required.")
	}
	if in.TotalCartons <= 0 {
		return utils.ValidationError("Total cartons must be greater than zero.")
	}
	return nil
}

func CreateOrder(c *gin.Context) {
	var input orderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload."})
		return
	}

	if input.Username == "" {
		utils.RespondError(c, utils.ValidationError("Order owner username is required."))
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	order := models.Order{
		Username:     input.Username,
		ShippingMark: input.ShippingMark,
		Destination:  input.Destination,
		TotalCartons: input.TotalCartons,
		Description:  input.Description,
	}

	if err := utils.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func GetOrders(c *gin.Context) {
	query := utils.DB.Order("id desc")
	if username := c.Query("username"); username != "" {
		query = query.Where("username = ?", username)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func GetOrder(c *gin.Context) {
	var order models.Order
	if err := utils.DB.Preload("Cartons").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

func UpdateOrder(c *gin.Context) {
	var order models.Order
	if err := utils.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var input orderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload."})
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	order.ShippingMark = input.ShippingMark
	order.Destination = input.Destination
	order.TotalCartons = input.TotalCartons
	order.Description = input.Description
	if input.Username != "" {
		order.Username = input.Username
	}

	if err := utils.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := utils.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		// Consoles holding this order need fresh totals once it is gone.
		var linked []models.Console
		if err := tx.Model(&order).Association("Consoles").Find(&linked); err != nil {
			return err
		}
		if err := tx.Model(&order).Association("Consoles").Clear(); err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Carton{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&order).Error; err != nil {
			return err
		}
		for i := range linked {
			if err := consoles.RecomputeTotals(tx, &linked[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
}

// --- customer-portal handlers, scoped to the session user ---

func CreateUserOrder(c *gin.Context) {
	sess, ok := auth.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input orderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload."})
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	order := models.Order{
		Username:     sess.Username,
		ShippingMark: input.ShippingMark,
		Destination:  input.Destination,
		TotalCartons: input.TotalCartons,
		Description:  input.Description,
	}

	if err := utils.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func GetUserOrders(c *gin.Context) {
	sess, ok := auth.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var orders []models.Order
	if err := utils.DB.Where("username = ?", sess.Username).Order("id desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func GetUserOrder(c *gin.Context) {
	sess, ok := auth.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var order models.Order
	if err := utils.DB.Preload("Cartons").Where("id = ? AND username = ?", c.Param("id"), sess.Username).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
