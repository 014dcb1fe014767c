package customers

import (
	"fmt"
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type customerInput struct {
	Name         string `json:"name"`
	Company      string `json:"company"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Country      string `json:"country"`
	SalesAgentID *uint  `json:"sales_agent_id"`
}

// AllocateNumbers fills in a new customer's global sequence number and, when
// a sales agent owns the record, the agent-scoped customer code
// ({agentCode}{two-digit suffix}). Must run inside the transaction that
// creates the customer.
func AllocateNumbers(tx *gorm.DB, customer *models.Customer) error {
	number, err := utils.NextSequence(tx, utils.SeqCustomerNumber, 1)
	if err != nil {
		return err
	}
	customer.SequenceNo = int(number)

	if customer.SalesAgentID == nil {
		return nil
	}

	var agent models.SalesAgent
	if err := tx.First(&agent, *customer.SalesAgentID).Error; err != nil {
		return utils.NotFoundError("Sales agent not found")
	}

	suffix, err := utils.NextSequence(tx, utils.CustomerCodeSequence(agent.ID), 1)
	if err != nil {
		return err
	}

	code := fmt.Sprintf("%d%02d", agent.Code, suffix)
	customer.CustomerCode = &code
	return nil
}

func CreateCustomer(c *gin.Context) {
	var input customerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer payload."})
		return
	}

	if input.Name == "" {
		utils.RespondError(c, utils.ValidationError("Customer name is required."))
		return
	}

	customer := models.Customer{
		Name:         input.Name,
		Company:      input.Company,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		Country:      input.Country,
		SalesAgentID: input.SalesAgentID,
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := AllocateNumbers(tx, &customer); err != nil {
			return err
		}
		return tx.Create(&customer).Error
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

func GetCustomers(c *gin.Context) {
	query := utils.DB.Order("sequence_no asc")
	if agentID := c.Query("sales_agent_id"); agentID != "" {
		query = query.Where("sales_agent_id = ?", agentID)
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func GetCustomer(c *gin.Context) {
	var customer models.Customer
	if err := utils.DB.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// UpdateCustomer edits contact fields. Sequence number, code, and lead link
// are allocation results, not form input, so they never change here.
func UpdateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := utils.DB.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var input customerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer payload."})
		return
	}
	if input.Name == "" {
		utils.RespondError(c, utils.ValidationError("Customer name is required."))
		return
	}

	customer.Name = input.Name
	customer.Company = input.Company
	customer.Phone = input.Phone
	customer.Email = input.Email
	customer.Address = input.Address
	customer.Country = input.Country

	if err := utils.DB.Save(&customer).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

func DeleteCustomer(c *gin.Context) {
	var customer models.Customer
	if err := utils.DB.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	if err := utils.DB.Delete(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Customer deleted successfully"})
}
