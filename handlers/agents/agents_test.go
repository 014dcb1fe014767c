package agents

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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.SalesAgent{}, &models.Sequence{}))
	utils.DB = db
	utils.JwtSecret = []byte("test-secret")

	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(auth.AuthMiddleware(), auth.RequireRole(models.RoleAdmin, models.RoleSalesAgent))
	RegisterAgentsRoutes(admin)
	return r
}

func adminToken(t *testing.T) string {
	user := models.User{Username: "admin", Password: "x", Role: models.RoleAdmin, Name: "Admin"}
	require.NoError(t, utils.DB.Create(&user).Error)

	token, err := utils.GenerateSessionToken(user.Username, user.Role)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
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

func createAgent(t *testing.T, r *gin.Engine, token, username string, permissions []models.Capability) models.SalesAgent {
	w := doJSON(t, r, "POST", "/admin/agents", token, gin.H{
		"name":        "Agent " + username,
		"username":    username,
		"password":    "secret123",
		"permissions": permissions,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Agent models.SalesAgent `json:"agent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Agent
}

func TestAgentCodesStartAt101(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	first := createAgent(t, r, token, "agent1", []models.Capability{models.CapabilityLead})
	second := createAgent(t, r, token, "agent2", nil)

	assert.Equal(t, 101, first.Code)
	assert.Equal(t, 102, second.Code)
}

func TestAgentPasswordIsHashed(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	created := createAgent(t, r, token, "agent1", nil)

	var stored models.SalesAgent
	require.NoError(t, utils.DB.First(&stored, created.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestCreateAgentRejectsUnknownPermission(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, "POST", "/admin/agents", token, gin.H{
		"name":        "Agent X",
		"username":    "agentx",
		"password":    "secret123",
		"permissions": []string{"warehouse"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAgentDuplicateUsername(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	createAgent(t, r, token, "agent1", nil)

	w := doJSON(t, r, "POST", "/admin/agents", token, gin.H{
		"name":     "Agent Again",
		"username": "agent1",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Username already exists."}`, w.Body.String())
}

func TestUpdateAgentKeepsCodeAndRotatesPassword(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	created := createAgent(t, r, token, "agent1", []models.Capability{models.CapabilityLead})

	w := doJSON(t, r, "PUT", "/admin/agents/1", token, gin.H{
		"name":        "Renamed",
		"username":    "agent1",
		"password":    "rotated456",
		"permissions": []models.Capability{models.CapabilityOrder, models.CapabilityConsole},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.SalesAgent
	require.NoError(t, utils.DB.First(&stored, created.ID).Error)
	assert.Equal(t, created.Code, stored.Code)
	assert.Equal(t, "Renamed", stored.Name)
	assert.ElementsMatch(t, []models.Capability{models.CapabilityOrder, models.CapabilityConsole}, stored.Permissions)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("rotated456")))
}

func TestAgentRoutesAreAdminOnly(t *testing.T) {
	r := setupRouter(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("agentpass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	agent := models.SalesAgent{
		Name: "Agent", Username: "agent1", Password: string(hashed), Code: 101,
		Permissions: models.AllCapabilities,
	}
	require.NoError(t, utils.DB.Create(&agent).Error)

	token, err := utils.GenerateSessionToken("agent1", models.RoleSalesAgent)
	require.NoError(t, err)

	w := doJSON(t, r, "GET", "/admin/agents", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
