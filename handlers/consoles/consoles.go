package consoles

import (
	"errors"
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type consoleInput struct {
	ConsoleNo       string `json:"console_no"`
	ContainerNo     string `json:"container_no"`
	Date            string `json:"date"`
	BLNo            string `json:"bl_no"`
	Carrier         string `json:"carrier"`
	ShippingOrderNo string `json:"shipping_order_no"`
}

func CreateConsole(c *gin.Context) {
	var input consoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid console payload."})
		return
	}

	if input.ConsoleNo == "" {
		utils.RespondError(c, utils.ValidationError("Console number is required."))
		return
	}

	console := models.Console{
		ConsoleNo:       input.ConsoleNo,
		ContainerNo:     input.ContainerNo,
		Date:            input.Date,
		BLNo:            input.BLNo,
		Carrier:         input.Carrier,
		ShippingOrderNo: input.ShippingOrderNo,
		Status:          models.ConsoleStatusActive,
	}

	if err := utils.DB.Create(&console).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, utils.ConflictError("Console number already exists."))
			return
		}
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "console": console})
}

func GetConsoles(c *gin.Context) {
	query := utils.DB.Order("id desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var consoles []models.Console
	if err := query.Find(&consoles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consoles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"consoles": consoles})
}

func GetConsole(c *gin.Context) {
	var console models.Console
	if err := utils.DB.Preload("Orders.Cartons").First(&console, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Console not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"console":      console,
		"max_cbm":      models.ConsoleMaxCBM,
		"over_capacity": console.TotalCBM > models.ConsoleMaxCBM,
	})
}

func UpdateConsole(c *gin.Context) {
	var console models.Console
	if err := utils.DB.First(&console, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Console not found"})
		return
	}

	var input consoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid console payload."})
		return
	}
	if input.ConsoleNo == "" {
		utils.RespondError(c, utils.ValidationError("Console number is required."))
		return
	}

	console.ConsoleNo = input.ConsoleNo
	console.ContainerNo = input.ContainerNo
	console.Date = input.Date
	console.BLNo = input.BLNo
	console.Carrier = input.Carrier
	console.ShippingOrderNo = input.ShippingOrderNo

	if err := utils.DB.Save(&console).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "console": console})
}

func DeleteConsole(c *gin.Context) {
	var console models.Console
	if err := utils.DB.First(&console, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Console not found"})
		return
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&console).Association("Orders").Clear(); err != nil {
			return err
		}
		return tx.Delete(&console).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete console"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Console deleted successfully"})
}

// AssignOrders links orders to a console and refreshes its totals. The join
// rows and the totals update commit together; a failure anywhere rolls the
// whole assignment back.
func AssignOrders(c *gin.Context) {
	var input struct {
		OrderIDs []uint `json:"order_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment payload."})
		return
	}
	if len(input.OrderIDs) == 0 {
		utils.RespondError(c, utils.ValidationError("At least one order id is required."))
		return
	}

	var console models.Console
	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&console, c.Param("id")).Error; err != nil {
			return utils.NotFoundError("Console not found")
		}

		var orders []models.Order
		if err := tx.Find(&orders, input.OrderIDs).Error; err != nil {
			return err
		}
		if len(orders) != len(input.OrderIDs) {
			return utils.NotFoundError("One or more orders not found")
		}

		if err := tx.Model(&console).Association("Orders").Append(&orders); err != nil {
			return err
		}

		return RecomputeTotals(tx, &console)
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "console": console})
}

// RemoveOrder unlinks one order and refreshes the totals in the same
// transaction.
func RemoveOrder(c *gin.Context) {
	var input struct {
		OrderID uint `json:"order_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.OrderID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid removal payload."})
		return
	}

	var console models.Console
	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&console, c.Param("id")).Error; err != nil {
			return utils.NotFoundError("Console not found")
		}

		var order models.Order
		if err := tx.First(&order, input.OrderID).Error; err != nil {
			return utils.NotFoundError("Order not found")
		}

		if err := tx.Model(&console).Association("Orders").Delete(&order); err != nil {
			return err
		}

		return RecomputeTotals(tx, &console)
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "console": console})
}

// MarkReadyForLoading moves an active console to ready_for_loading. Loading
// past capacity is allowed but reported so the operator can re-plan.
func MarkReadyForLoading(c *gin.Context) {
	var console models.Console
	if err := utils.DB.First(&console, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Console not found"})
		return
	}

	if console.Status == models.ConsoleStatusReadyForLoading {
		utils.RespondError(c, utils.ConflictError("Console is already ready for loading."))
		return
	}

	console.Status = models.ConsoleStatusReadyForLoading
	if err := utils.DB.Save(&console).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"console":       console,
		"over_capacity": console.TotalCBM > models.ConsoleMaxCBM,
	})
}

// RecomputeTotals re-reads every order currently linked to the console and
// overwrites the stored totals. Always a full recompute; no delta tracking.
func RecomputeTotals(tx *gorm.DB, console *models.Console) error {
	var orders []models.Order
	err := tx.Preload("Cartons").
		Joins("JOIN console_orders ON console_orders.order_id = orders.id").
		Where("console_orders.console_id = ?", console.ID).
		Find(&orders).Error
	if err != nil {
		return err
	}

	totalCartons := 0
	totalCBM := 0.0
	for _, order := range orders {
		totalCartons += order.TotalCartons
		for _, carton := range order.Cartons {
			totalCBM += carton.Volume()
		}
	}

	console.TotalCartons = totalCartons
	console.TotalCBM = totalCBM

	return tx.Model(console).Updates(map[string]interface{}{
		"total_cartons": totalCartons,
		"total_cbm":     totalCBM,
	}).Error
}
