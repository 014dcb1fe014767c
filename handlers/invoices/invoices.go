package invoices

import (
	"errors"
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type invoiceItemInput struct {
	Product   string  `json:"product"`
	HSCode    string  `json:"hs_code"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	Cartons   int     `json:"cartons"`
	Weight    float64 `json:"weight"`
}

type invoiceInput struct {
	InvoiceNo    string             `json:"invoice_no"`
	Date         string             `json:"date"`
	CustomerName string             `json:"customer_name"`
	Address      string             `json:"address"`
	Country      string             `json:"country"`
	Currency     string             `json:"currency"`
	Items        []invoiceItemInput `json:"items"`
}

func (in *invoiceInput) validate() error {
	if in.InvoiceNo == "" {
		return utils.ValidationError("Invoice number is required.")
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

func (in *invoiceInput) buildItems(invoiceID uint) []models.InvoiceItem {
	items := make([]models.InvoiceItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, models.InvoiceItem{
			ImportInvoiceID: invoiceID,
			Product:         item.Product,
			HSCode:          item.HSCode,
			Quantity:        item.Quantity,
			Unit:            item.Unit,
			UnitPrice:       item.UnitPrice,
			Amount:          item.Quantity * item.UnitPrice,
			Cartons:         item.Cartons,
			Weight:          item.Weight,
		})
	}
	return items
}

func CreateInvoice(c *gin.Context) {
	var input invoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice payload."})
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	invoice := models.ImportInvoice{
		InvoiceNo:    input.InvoiceNo,
		Date:         input.Date,
		CustomerName: input.CustomerName,
		Address:      input.Address,
		Country:      input.Country,
		Currency:     currency,
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}
		items := input.buildItems(invoice.ID)
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		invoice.Items = items
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, utils.ConflictError("Invoice number already exists."))
			return
		}
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": invoice})
}

func GetInvoices(c *gin.Context) {
	var invoices []models.ImportInvoice
	if err := utils.DB.Order("id desc").Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func GetInvoice(c *gin.Context) {
	var invoice models.ImportInvoice
	if err := utils.DB.Preload("Items").First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// UpdateInvoice replaces the header and the full item set in one
// transaction.
func UpdateInvoice(c *gin.Context) {
	var invoice models.ImportInvoice
	if err := utils.DB.First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	var input invoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice payload."})
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	invoice.InvoiceNo = input.InvoiceNo
	invoice.Date = input.Date
	invoice.CustomerName = input.CustomerName
	invoice.Address = input.Address
	invoice.Country = input.Country
	if input.Currency != "" {
		invoice.Currency = input.Currency
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&invoice).Error; err != nil {
			return err
		}
		if err := tx.Where("import_invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		items := input.buildItems(invoice.ID)
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		invoice.Items = items
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, utils.ConflictError("Invoice number already exists."))
			return
		}
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": invoice})
}

func DeleteInvoice(c *gin.Context) {
	var invoice models.ImportInvoice
	if err := utils.DB.First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("import_invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&invoice).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Invoice deleted successfully"})
}

// GetInvoiceDocument assembles the commercial-invoice payload the browser
// renders to PDF.
func GetInvoiceDocument(c *gin.Context) {
	var invoice models.ImportInvoice
	if err := utils.DB.Preload("Items").First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	totalAmount := 0.0
	totalCartons := 0
	totalWeight := 0.0
	for _, item := range invoice.Items {
		totalAmount += item.Amount
		totalCartons += item.Cartons
		totalWeight += item.Weight
	}

	c.JSON(http.StatusOK, gin.H{
		"document": gin.H{
			"invoice":       invoice,
			"total_amount":  totalAmount,
			"total_cartons": totalCartons,
			"total_weight":  totalWeight,
		},
	})
}
