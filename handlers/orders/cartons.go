package orders

import (
	"encoding/json"
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type cartonInput struct {
	Weight float64 `json:"weight"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// AddCartons creates one or more cartons under an order. Serials come off
// the global counter inside the same transaction, so a batch is numbered
// contiguously and never reused even when the request fails midway.
func AddCartons(c *gin.Context) {
	var order models.Order
	if err := utils.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var input struct {
		Cartons []cartonInput `json:"cartons"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid carton payload."})
		return
	}
	if len(input.Cartons) == 0 {
		utils.RespondError(c, utils.ValidationError("At least one carton is required."))
		return
	}

	var created []models.Carton
	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Carton{}).Where("order_id = ?", order.ID).Count(&existing).Error; err != nil {
			return err
		}

		for i, in := range input.Cartons {
			serial, err := utils.NextSequence(tx, utils.SeqCartonSerial, 1)
			if err != nil {
				return err
			}

			unit := in.Unit
			if unit == "" {
				unit = "cm"
			}

			carton := models.Carton{
				SerialNo:    models.FormatSerial(serial),
				OrderID:     order.ID,
				CartonIndex: int(existing) + i + 1,
				Weight:      in.Weight,
				Length:      in.Length,
				Width:       in.Width,
				Height:      in.Height,
				Unit:        unit,
			}
			if err := tx.Create(&carton).Error; err != nil {
				return err
			}
			created = append(created, carton)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cartons": created})
}

func DeleteCarton(c *gin.Context) {
	var carton models.Carton
	if err := utils.DB.Where("id = ? AND order_id = ?", c.Param("carton_id"), c.Param("id")).First(&carton).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carton not found"})
		return
	}

	if err := utils.DB.Delete(&carton).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete carton"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Carton deleted successfully"})
}

// GetCartonLabel assembles the per-carton label payload. The QR string
// carries the carton metadata; rendering to PDF happens in the browser.
func GetCartonLabel(c *gin.Context) {
	var order models.Order
	if err := utils.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var carton models.Carton
	if err := utils.DB.Where("id = ? AND order_id = ?", c.Param("carton_id"), order.ID).First(&carton).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carton not found"})
		return
	}

	qrPayload, err := json.Marshal(gin.H{
		"serial_no":     carton.SerialNo,
		"shipping_mark": order.ShippingMark,
		"destination":   order.Destination,
		"order_id":      order.ID,
		"carton_index":  carton.CartonIndex,
		"total_cartons": order.TotalCartons,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build label"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"label": gin.H{
			"serial_no":     carton.SerialNo,
			"shipping_mark": order.ShippingMark,
			"destination":   order.Destination,
			"carton_index":  carton.CartonIndex,
			"weight":        carton.Weight,
			"length":        carton.Length,
			"width":         carton.Width,
			"height":        carton.Height,
			"unit":          carton.Unit,
			"volume_cbm":    carton.Volume(),
			"qr_content":    string(qrPayload),
		},
	})
}
