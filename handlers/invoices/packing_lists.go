package invoices

import (
	"errors"
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type packingItemInput struct {
	Product     string  `json:"product"`
	HSCode      string  `json:"hs_code"`
	Cartons     int     `json:"cartons"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	GrossWeight float64 `json:"gross_weight"`
	NetWeight   float64 `json:"net_weight"`
	Measurement float64 `json:"measurement"`
}

type packingListInput struct {
	ListNo    string             `json:"list_no"`
	Date      string             `json:"date"`
	Shipper   string             `json:"shipper"`
	Consignee string             `json:"consignee"`
	Items     []packingItemInput `json:"items"`
}

func (in *packingListInput) validate() error {
	if in.ListNo == "" {
		return utils.ValidationError("Packing list number is required.")
	}
	if len(in.Items) == 0 {
		return utils.ValidationError("At least one line item is required.")
	}
	for _, item := range in.Items {
		if item.Product == "" {
			return utils.ValidationError("Every line item needs a product name.")
		}
	}
	return nil
}

func (in *packingListInput) buildItems(listID uint) []models.PackingListItem {
	items := make([]models.PackingListItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, models.PackingListItem{
			PackingListID: listID,
			Product:       item.Product,
			HSCode:        item.HSCode,
			Cartons:       item.Cartons,
			Quantity:      item.Quantity,
			Unit:          item.Unit,
			GrossWeight:   item.GrossWeight,
			NetWeight:     item.NetWeight,
			Measurement:   item.Measurement,
		})
	}
	return items
}

func CreatePackingList(c *gin.Context) {
	var input packingListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid packing list payload."})
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	list := models.PackingList{
		ListNo:    input.ListNo,
		Date:      input.Date,
		Shipper:   input.Shipper,
		Consignee: input.Consignee,
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&list).Error; err != nil {
			return err
		}
		items := input.buildItems(list.ID)
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		list.Items = items
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, utils.ConflictError("Packing list number already exists."))
			return
		}
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "packing_list": list})
}

func GetPackingLists(c *gin.Context) {
	var lists []models.PackingList
	if err := utils.DB.Order("id desc").Find(&lists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packing lists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"packing_lists": lists})
}

func GetPackingList(c *gin.Context) {
	var list models.PackingList
	if err := utils.DB.Preload("Items").First(&list, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Packing list not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"packing_list": list})
}

func UpdatePackingList(c *gin.Context) {
	var list models.PackingList
	if err := utils.DB.First(&list, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Packing list not found"})
		return
	}

	var input packingListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid packing list payload."})
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	list.ListNo = input.ListNo
	list.Date = input.Date
	list.Shipper = input.Shipper
	list.Consignee = input.Consignee

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&list).Error; err != nil {
			return err
		}
		if err := tx.Where("packing_list_id = ?", list.ID).Delete(&models.PackingListItem{}).Error; err != nil {
			return err
		}
		items := input.buildItems(list.ID)
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		list.Items = items
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, utils.ConflictError("Packing list number already exists."))
			return
		}
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "packing_list": list})
}

func DeletePackingList(c *gin.Context) {
	var list models.PackingList
	if err := utils.DB.First(&list, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Packing list not found"})
		return
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("packing_list_id = ?", list.ID).Delete(&models.PackingListItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&list).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete packing list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Packing list deleted successfully"})
}

// GetPackingListDocument assembles the payload the browser renders to PDF,
// including the summed carton, weight, and measurement totals.
func GetPackingListDocument(c *gin.Context) {
	var list models.PackingList
	if err := utils.DB.Preload("Items").First(&list, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Packing list not found"})
		return
	}

	totalCartons := 0
	totalGross := 0.0
	totalNet := 0.0
	totalMeasurement := 0.0
	for _, item := range list.Items {
		totalCartons += item.Cartons
		totalGross += item.GrossWeight
		totalNet += item.NetWeight
		totalMeasurement += item.Measurement
	}

	c.JSON(http.StatusOK, gin.H{
		"document": gin.H{
			"packing_list":      list,
			"total_cartons":     totalCartons,
			"total_gross":       totalGross,
			"total_net":         totalNet,
			"total_measurement": totalMeasurement,
		},
	})
}
