package agents

import (
	"errors"
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type agentInput struct {
	Name        string              `json:"name"`
	Username    string              `json:"username"`
	Password    string              `json:"password"`
	Permissions []models.Capability `json:"permissions"`
}

func validPermissions(permissions []models.Capability) error {
	for _, capability := range permissions {
		if !models.ValidCapability(capability) {
			return utils.ValidationError("Unknown permission: " + string(capability))
		}
	}
	return nil
}

func CreateAgent(c *gin.Context) {
	var input agentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent payload."})
		return
	}

	if input.Name == "" || input.Username == "" || input.Password == "" {
		utils.RespondError(c, utils.ValidationError("Name, username, and password are required."))
		return
	}
	if err := validPermissions(input.Permissions); err != nil {
		utils.RespondError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	agent := models.SalesAgent{
		Name:        input.Name,
		Username:    input.Username,
		Password:    string(hashed),
		Permissions: input.Permissions,
	}

	err = utils.DB.Transaction(func(tx *gorm.DB) error {
		code, err := utils.NextSequence(tx, utils.SeqSalesAgentCode, utils.SalesAgentCodeStart)
		if err != nil {
			return err
		}
		agent.Code = int(code)
		return tx.Create(&agent).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, utils.ConflictError("Username already exists."))
			return
		}
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "agent": agent})
}

func GetAgents(c *gin.Context) {
	var agents []models.SalesAgent
	if err := utils.DB.Order("code asc").Find(&agents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch agents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

func GetAgent(c *gin.Context) {
	var agent models.SalesAgent
	if err := utils.DB.First(&agent, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"agent": agent})
}

// UpdateAgent edits the profile and permission list; the code is permanent.
// A non-empty password rotates the hash.
func UpdateAgent(c *gin.Context) {
	var agent models.SalesAgent
	if err := utils.DB.First(&agent, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		return
	}

	var input agentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent payload."})
		return
	}
	if input.Name == "" || input.Username == "" {
		utils.RespondError(c, utils.ValidationError("Name and username are required."))
		return
	}
	if err := validPermissions(input.Permissions); err != nil {
		utils.RespondError(c, err)
		return
	}

	agent.Name = input.Name
	agent.Username = input.Username
	agent.Permissions = input.Permissions

	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		agent.Password = string(hashed)
	}

	if err := utils.DB.Save(&agent).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, utils.ConflictError("Username already exists."))
			return
		}
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "agent": agent})
}

func DeleteAgent(c *gin.Context) {
	var agent models.SalesAgent
	if err := utils.DB.First(&agent, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		return
	}

	if err := utils.DB.Delete(&agent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete agent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Agent deleted successfully"})
}
