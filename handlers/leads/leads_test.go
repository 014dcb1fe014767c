package leads

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AyanAhmed30/Logistix-sub000/handlers/auth"
	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Sequence{}, &models.User{}, &models.SalesAgent{},
		&models.Lead{}, &models.LeadComment{}, &models.Customer{},
	))
	utils.DB = db
	utils.JwtSecret = []byte("test-secret")

	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(auth.AuthMiddleware(), auth.RequireRole(models.RoleAdmin, models.RoleSalesAgent))
	RegisterLeadsRoutes(admin)
	return r
}

func adminToken(t *testing.T) string {
	user := models.User{Username: "admin", Password: "unused", Role: models.RoleAdmin, Name: "Admin"}
	require.NoError(t, utils.DB.Create(&user).Error)

	token, err := utils.GenerateSessionToken(user.Username, models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func createAgent(t *testing.T) models.SalesAgent {
	agent := models.SalesAgent{Name: "Agent One", Username: "agent1", Password: "unused", Code: 101}
	require.NoError(t, utils.DB.Create(&agent).Error)
	return agent
}

func createLead(t *testing.T, agentID uint, status string) models.Lead {
	lead := models.Lead{
		Name:         "Prospect",
		Company:      "Prospect Co",
		Phone:        "+923001234567",
		Email:        "prospect@example.com",
		Country:      "Pakistan",
		Source:       models.LeadSourceWhatsApp,
		Status:       status,
		SalesAgentID: agentID,
	}
	require.NoError(t, utils.DB.Create(&lead).Error)
	return lead
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateLeadStatusMovesAcrossPipeline(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	agent := createAgent(t)
	lead := createLead(t, agent.ID, models.LeadStatusLeads)

	w := doJSON(t, r, "POST", "/admin/leads/1/status", token, gin.H{"status": models.LeadStatusNegotiation})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Lead
	require.NoError(t, utils.DB.First(&got, lead.ID).Error)
	assert.Equal(t, models.LeadStatusNegotiation, got.Status)

	// Dragging backwards is allowed.
	w = doJSON(t, r, "POST", "/admin/leads/1/status", token, gin.H{"status": models.LeadStatusLeads})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, utils.DB.First(&got, lead.ID).Error)
	assert.Equal(t, models.LeadStatusLeads, got.Status)
}

func TestUpdateLeadStatusSameColumnIsNoop(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	agent := createAgent(t)
	lead := createLead(t, agent.ID, models.LeadStatusWin)

	w := doJSON(t, r, "POST", "/admin/leads/1/status", token, gin.H{"status": models.LeadStatusWin})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Lead
	require.NoError(t, utils.DB.First(&got, lead.ID).Error)
	assert.Equal(t, models.LeadStatusWin, got.Status)
}

func TestUpdateLeadStatusRejectsUnknownStage(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	agent := createAgent(t)
	createLead(t, agent.ID, models.LeadStatusLeads)

	w := doJSON(t, r, "POST", "/admin/leads/1/status", token, gin.H{"status": "Closed Lost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConvertLeadRequiresWin(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	agent := createAgent(t)
	createLead(t, agent.ID, models.LeadStatusNegotiation)

	w := doJSON(t, r, "POST", "/admin/leads/1/convert", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Win")

	var count int64
	require.NoError(t, utils.DB.Model(&models.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestConvertLeadCreatesCustomerOnce(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	agent := createAgent(t)
	lead := createLead(t, agent.ID, models.LeadStatusWin)

	w := doJSON(t, r, "POST", "/admin/leads/1/convert", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var customer models.Customer
	require.NoError(t, utils.DB.Where("lead_id = ?", lead.ID).First(&customer).Error)
	assert.Equal(t, lead.Name, customer.Name)
	assert.Equal(t, lead.Phone, customer.Phone)
	assert.Equal(t, 1, customer.SequenceNo)
	require.NotNil(t, customer.CustomerCode)
	assert.Equal(t, "10101", *customer.CustomerCode)
	require.NotNil(t, customer.SalesAgentID)
	assert.Equal(t, agent.ID, *customer.SalesAgentID)

	var got models.Lead
	require.NoError(t, utils.DB.First(&got, lead.ID).Error)
	assert.True(t, got.Converted)

	// The second attempt bounces off the converted flag.
	w = doJSON(t, r, "POST", "/admin/leads/1/convert", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, utils.DB.Model(&models.Customer{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConvertLeadRejectsExistingCustomerLink(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	agent := createAgent(t)
	lead := createLead(t, agent.ID, models.LeadStatusWin)

	// A customer already points at this lead even though the flag is unset.
	leadID := lead.ID
	customer := models.Customer{Name: "Existing", SequenceNo: 1, LeadID: &leadID}
	require.NoError(t, utils.DB.Create(&customer).Error)

	w := doJSON(t, r, "POST", "/admin/leads/1/convert", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddLeadComment(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	agent := createAgent(t)
	lead := createLead(t, agent.ID, models.LeadStatusLeads)

	w := doJSON(t, r, "POST", "/admin/leads/1/comments", token, gin.H{"text": "Called, will follow up Friday"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var comments []models.LeadComment
	require.NoError(t, utils.DB.Where("lead_id = ?", lead.ID).Find(&comments).Error)
	require.Len(t, comments, 1)
	assert.Equal(t, "Called, will follow up Friday", comments[0].Text)
}

func TestLeadBoardGroupsByStage(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	agent := createAgent(t)
	createLead(t, agent.ID, models.LeadStatusLeads)
	createLead(t, agent.ID, models.LeadStatusWin)
	createLead(t, agent.ID, models.LeadStatusWin)

	w := doJSON(t, r, "GET", "/admin/leads/board", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Board   map[string][]models.Lead `json:"board"`
		Columns []string                 `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.LeadStatuses, resp.Columns)
	assert.Len(t, resp.Board[models.LeadStatusLeads], 1)
	assert.Len(t, resp.Board[models.LeadStatusWin], 2)
	assert.Empty(t, resp.Board[models.LeadStatusNegotiation])
}
