package leads

import (
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/looplab/fsm"
)

type leadInput struct {
	Name         string `json:"name"`
	Company      string `json:"company"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Country      string `json:"country"`
	Source       string `json:"source"`
	SalesAgentID uint   `json:"sales_agent_id"`
}

func (in *leadInput) validate() error {
	if in.Name == "" {
		return utils.ValidationError("Lead name is required.")
	}
	if in.Phone == "" {
		return utils.ValidationError("Lead phone number is required.")
	}
	if !models.ValidLeadSource(in.Source) {
		return utils.ValidationError("Lead source must be one of Meta, LinkedIn, WhatsApp, or Others.")
	}
	if in.SalesAgentID == 0 {
		return utils.ValidationError("Owning sales agent is required.")
	}
	return nil
}

func CreateLead(c *gin.Context) {
	var input leadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead payload."})
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	var agent models.SalesAgent
	if err := utils.DB.First(&agent, input.SalesAgentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sales agent not found"})
		return
	}

	lead := models.Lead{
		Name:         input.Name,
		Company:      input.Company,
		Phone:        input.Phone,
		Email:        input.Email,
		Country:      input.Country,
		Source:       input.Source,
		Status:       models.LeadStatusLeads,
		SalesAgentID: agent.ID,
	}

	if err := utils.DB.Create(&lead).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "lead": lead})
}

func GetLeads(c *gin.Context) {
	query := utils.DB.Order("id desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if agentID := c.Query("sales_agent_id"); agentID != "" {
		query = query.Where("sales_agent_id = ?", agentID)
	}

	var leads []models.Lead
	if err := query.Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// GetLeadBoard returns the kanban view: one column per pipeline stage.
func GetLeadBoard(c *gin.Context) {
	query := utils.DB.Order("id desc")
	if agentID := c.Query("sales_agent_id"); agentID != "" {
		query = query.Where("sales_agent_id = ?", agentID)
	}

	var leads []models.Lead
	if err := query.Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}

	board := make(map[string][]models.Lead, len(models.LeadStatuses))
	for _, status := range models.LeadStatuses {
		board[status] = []models.Lead{}
	}
	for _, lead := range leads {
		board[lead.Status] = append(board[lead.Status], lead)
	}

	c.JSON(http.StatusOK, gin.H{"board": board, "columns": models.LeadStatuses})
}

func GetLead(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.Preload("Comments").First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

func UpdateLead(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var input leadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead payload."})
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	lead.Name = input.Name
	lead.Company = input.Company
	lead.Phone = input.Phone
	lead.Email = input.Email
	lead.Country = input.Country
	lead.Source = input.Source
	lead.SalesAgentID = input.SalesAgentID

	if err := utils.DB.Save(&lead).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "lead": lead})
}

func DeleteLead(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	if err := utils.DB.Select("Comments").Delete(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Lead deleted successfully"})
}

// UpdateLeadStatus moves a lead across the pipeline board. The state machine
// accepts any stage-to-stage move and rejects names outside the pipeline;
// dropping a card back on its own column is a no-op.
func UpdateLeadStatus(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required."})
		return
	}

	machine := lead.Pipeline()
	if err := machine.Event(c.Request.Context(), models.MoveEvent(input.Status)); err != nil {
		if _, ok := err.(fsm.NoTransitionError); !ok {
			utils.RespondError(c, utils.ValidationError("Unknown pipeline stage."))
			return
		}
	}

	lead.Status = machine.Current()
	if err := utils.DB.Save(&lead).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "lead": lead})
}

func AddLeadComment(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required."})
		return
	}

	comment := models.LeadComment{LeadID: lead.ID, Text: input.Text}
	if err := utils.DB.Create(&comment).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
}

// SendLeadFollowUp pushes a WhatsApp message to the lead and records it as a
// comment so the thread stays visible on the card.
func SendLeadFollowUp(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var input struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required."})
		return
	}

	if err := utils.SendLeadWhatsApp(lead.Phone, input.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send WhatsApp message"})
		return
	}

	comment := models.LeadComment{LeadID: lead.ID, Text: "WhatsApp: " + input.Message}
	if err := utils.DB.Create(&comment).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
}
