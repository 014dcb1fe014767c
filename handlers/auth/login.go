package auth

import (
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please provide a valid username and password."})
		return
	}

	if input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required."})
		return
	}

	// Admins and portal users live in the users table, sales agents in their
	// own. The username decides which lookup wins.
	var user models.User
	if err := utils.DB.Where("username = ?", input.Username).First(&user).Error; err == nil {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
			return
		}

		issueSession(c, user.Username, user.Role, gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"role":     user.Role,
		})
		return
	}

	var agent models.SalesAgent
	if err := utils.DB.Where("username = ?", input.Username).First(&agent).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(agent.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
		return
	}

	issueSession(c, agent.Username, models.RoleSalesAgent, gin.H{
		"id":          agent.ID,
		"username":    agent.Username,
		"name":        agent.Name,
		"role":        models.RoleSalesAgent,
		"code":        agent.Code,
		"permissions": agent.Permissions,
	})
}

func issueSession(c *gin.Context, username, role string, profile gin.H) {
	tokenString, err := utils.GenerateSessionToken(username, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.SetCookie(SessionCookie, tokenString, int(utils.SessionDuration.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful.",
		"token":    tokenString,
		"role":     role,
		"redirect": DashboardPath(role),
		"user":     profile,
	})
}

// Logout clears the session cookie. Tokens themselves stay stateless.
func Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful.",
	})
}

// RootRedirect sends the bare path to the login page.
func RootRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

// LoginGate handles GET /login: an already authenticated caller is bounced
// straight to their dashboard.
func LoginGate(c *gin.Context) {
	if tokenString := sessionToken(c); tokenString != "" {
		if _, role, err := utils.ParseSessionToken(tokenString); err == nil {
			c.Redirect(http.StatusFound, DashboardPath(role))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Please log in."})
}
