package leads

import (
	"errors"
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/handlers/customers"
	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// ConvertLead turns a won lead into a customer, once. The customer insert
// and the converted flag commit in one transaction, so a failure on either
// side leaves no half-converted lead behind.
func ConvertLead(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	if lead.Status != models.LeadStatusWin {
		utils.RespondError(c, utils.ValidationError("Only leads in Win status can be converted."))
		return
	}
	if lead.Converted {
		utils.RespondError(c, utils.ConflictError("Lead has already been converted."))
		return
	}

	var existing models.Customer
	err := utils.DB.Where("lead_id = ?", lead.ID).First(&existing).Error
	if err == nil {
		utils.RespondError(c, utils.ConflictError("A customer already exists for this lead."))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, err)
		return
	}

	var customer models.Customer
	if err := copier.Copy(&customer, &lead); err != nil {
		utils.RespondError(c, err)
		return
	}
	// copier matched the embedded gorm.Model too; the customer row gets its
	// own identity.
	customer.Model = gorm.Model{}
	customer.SalesAgentID = &lead.SalesAgentID
	leadID := lead.ID
	customer.LeadID = &leadID

	err = utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := customers.AllocateNumbers(tx, &customer); err != nil {
			return err
		}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}
		return tx.Model(&lead).Update("converted", true).Error
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	code := ""
	if customer.CustomerCode != nil {
		code = *customer.CustomerCode
	}
	utils.SendWelcomeEmail(customer.Email, customer.Name, code)

	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}
