package orders

import (
	"bytes"
	"encoding/json"
	"fmt"
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
		&models.User{}, &models.SalesAgent{},
		&models.Order{}, &models.Carton{}, &models.Console{},
		&models.Sequence{},
	))
	utils.DB = db
	utils.JwtSecret = []byte("test-secret")

	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(auth.AuthMiddleware(), auth.RequireRole(models.RoleAdmin, models.RoleSalesAgent))
	RegisterOrdersRoutes(admin)

	user := r.Group("/user")
	user.Use(auth.AuthMiddleware(), auth.RequireRole(models.RoleUser))
	RegisterUserOrdersRoutes(user)
	return r
}

func adminToken(t *testing.T) string {
	user := models.User{Username: "admin", Password: "x", Role: models.RoleAdmin, Name: "Admin"}
	require.NoError(t, utils.DB.Create(&user).Error)

	token, err := utils.GenerateSessionToken(user.Username, user.Role)
	require.NoError(t, err)
	return token
}

func userToken(t *testing.T, username string) string {
	user := models.User{Username: username, Password: "x", Role: models.RoleUser, Name: username}
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

func createOrder(t *testing.T, r *gin.Engine, token, username string) uint {
	w := doJSON(t, r, "POST", "/admin/orders", token, gin.H{
		"username":      username,
		"shipping_mark": "MARK-" + username,
		"destination":   "Karachi",
		"total_cartons": 3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Order.ID
}

func addCartons(t *testing.T, r *gin.Engine, token string, orderID uint, cartons []gin.H) []models.Carton {
	w := doJSON(t, r, "POST", fmt.Sprintf("/admin/orders/%d/cartons", orderID), token, gin.H{"cartons": cartons})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Cartons []models.Carton `json:"cartons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Cartons
}

func TestCartonSerialsAreGlobalAcrossOrders(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	first := createOrder(t, r, token, "alice")
	second := createOrder(t, r, token, "bob")

	box := gin.H{"weight": 10, "length": 50, "width": 40, "height": 30}

	got := addCartons(t, r, token, first, []gin.H{box, box})
	require.Len(t, got, 2)
	assert.Equal(t, "0000001", got[0].SerialNo)
	assert.Equal(t, "0000002", got[1].SerialNo)
	assert.Equal(t, 1, got[0].CartonIndex)
	assert.Equal(t, 2, got[1].CartonIndex)

	// The counter keeps climbing on the next order; the per-order index
	// restarts at 1.
	got = addCartons(t, r, token, second, []gin.H{box})
	require.Len(t, got, 1)
	assert.Equal(t, "0000003", got[0].SerialNo)
	assert.Equal(t, 1, got[0].CartonIndex)

	got = addCartons(t, r, token, first, []gin.H{box})
	require.Len(t, got, 1)
	assert.Equal(t, "0000004", got[0].SerialNo)
	assert.Equal(t, 3, got[0].CartonIndex)
}

func TestAddCartonsDefaultsUnit(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	orderID := createOrder(t, r, token, "alice")

	got := addCartons(t, r, token, orderID, []gin.H{{"weight": 5, "length": 10, "width": 10, "height": 10}})
	require.Len(t, got, 1)
	assert.Equal(t, "cm", got[0].Unit)
}

func TestAddCartonsRequiresAtLeastOne(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	orderID := createOrder(t, r, token, "alice")

	w := doJSON(t, r, "POST", fmt.Sprintf("/admin/orders/%d/cartons", orderID), token, gin.H{"cartons": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderValidation(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, "POST", "/admin/orders", token, gin.H{
		"username":      "alice",
		"shipping_mark": "",
		"destination":   "Karachi",
		"total_cartons": 3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/admin/orders", token, gin.H{
		"username":      "alice",
		"shipping_mark": "MK-1",
		"destination":   "Karachi",
		"total_cartons": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartonLabelPayload(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	orderID := createOrder(t, r, token, "alice")

	got := addCartons(t, r, token, orderID, []gin.H{{"weight": 12, "length": 50, "width": 40, "height": 30}})
	require.Len(t, got, 1)

	w := doJSON(t, r, "GET", fmt.Sprintf("/admin/orders/%d/cartons/%d/label", orderID, got[0].ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Label struct {
			SerialNo     string  `json:"serial_no"`
			ShippingMark string  `json:"shipping_mark"`
			Destination  string  `json:"destination"`
			CartonIndex  int     `json:"carton_index"`
			VolumeCBM    float64 `json:"volume_cbm"`
			QRContent    string  `json:"qr_content"`
		} `json:"label"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "0000001", resp.Label.SerialNo)
	assert.Equal(t, "MARK-alice", resp.Label.ShippingMark)
	assert.Equal(t, "Karachi", resp.Label.Destination)
	assert.Equal(t, 1, resp.Label.CartonIndex)
	assert.InDelta(t, 0.06, resp.Label.VolumeCBM, 1e-9)

	var qr map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Label.QRContent), &qr))
	assert.Equal(t, "0000001", qr["serial_no"])
	assert.Equal(t, "MARK-alice", qr["shipping_mark"])
}

func TestDeleteCarton(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	orderID := createOrder(t, r, token, "alice")

	got := addCartons(t, r, token, orderID, []gin.H{
		{"weight": 5, "length": 10, "width": 10, "height": 10},
		{"weight": 5, "length": 10, "width": 10, "height": 10},
	})
	require.Len(t, got, 2)

	w := doJSON(t, r, "DELETE", fmt.Sprintf("/admin/orders/%d/cartons/%d", orderID, got[0].ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var remaining int64
	require.NoError(t, utils.DB.Model(&models.Carton{}).Where("order_id = ?", orderID).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	// Serials are never reused after a delete.
	next := addCartons(t, r, token, orderID, []gin.H{{"weight": 5, "length": 10, "width": 10, "height": 10}})
	require.Len(t, next, 1)
	assert.Equal(t, "0000003", next[0].SerialNo)
}

func TestPortalUserSeesOnlyOwnOrders(t *testing.T) {
	r := setupRouter(t)
	admin := adminToken(t)

	aliceOrder := createOrder(t, r, admin, "alice")
	createOrder(t, r, admin, "bob")

	alice := userToken(t, "alice")

	w := doJSON(t, r, "GET", "/user/orders", alice, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "alice", resp.Orders[0].Username)

	// Someone else's order is invisible, not forbidden.
	w = doJSON(t, r, "GET", fmt.Sprintf("/user/orders/%d", aliceOrder), alice, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPortalUserCreateStampsOwnUsername(t *testing.T) {
	r := setupRouter(t)
	alice := userToken(t, "alice")

	w := doJSON(t, r, "POST", "/user/orders", alice, gin.H{
		"username":      "bob",
		"shipping_mark": "MK-9",
		"destination":   "Dubai",
		"total_cartons": 2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Order.Username)
}

func TestDeleteOrderRemovesCartonsAndRecomputesConsoles(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)
	orderID := createOrder(t, r, token, "alice")
	addCartons(t, r, token, orderID, []gin.H{{"weight": 5, "length": 100, "width": 100, "height": 100}})

	console := models.Console{ConsoleNo: "CON-1", Status: models.ConsoleStatusActive}
	require.NoError(t, utils.DB.Create(&console).Error)
	var order models.Order
	require.NoError(t, utils.DB.First(&order, orderID).Error)
	require.NoError(t, utils.DB.Model(&console).Association("Orders").Append(&order))
	require.NoError(t, utils.DB.Model(&console).Updates(map[string]any{"total_cartons": 3, "total_cbm": 1.0}).Error)

	w := doJSON(t, r, "DELETE", fmt.Sprintf("/admin/orders/%d", orderID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cartons int64
	require.NoError(t, utils.DB.Model(&models.Carton{}).Where("order_id = ?", orderID).Count(&cartons).Error)
	assert.EqualValues(t, 0, cartons)

	require.NoError(t, utils.DB.First(&console, console.ID).Error)
	assert.Equal(t, 0, console.TotalCartons)
	assert.Equal(t, 0.0, console.TotalCBM)
}
