package auth

import (
	"net/http"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/AyanAhmed30/Logistix-sub000/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware re-derives the session from the cookie (or bearer header)
// on every request. Unauthenticated portal traffic is bounced to /login.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			redirectToLogin(c)
			return
		}

		username, role, err := utils.ParseSessionToken(tokenString)
		if err != nil {
			redirectToLogin(c)
			return
		}

		sess := Session{Username: username, Role: role}

		switch role {
		case models.RoleAdmin, models.RoleUser:
			var user models.User
			if err := utils.DB.Where("username = ?", username).First(&user).Error; err != nil {
				redirectToLogin(c)
				return
			}
			// The role claim must still match the stored row.
			if user.Role != role {
				redirectToLogin(c)
				return
			}
			sess.User = &user
		case models.RoleSalesAgent:
			var agent models.SalesAgent
			if err := utils.DB.Where("username = ?", username).First(&agent).Error; err != nil {
				redirectToLogin(c)
				return
			}
			sess.Agent = &agent
		default:
			redirectToLogin(c)
			return
		}

		c.Set("session", sess)
		c.Next()
	}
}

// RequireRole denies everyone whose session role is not in the allowed set.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			deny(c)
			return
		}
		for _, role := range roles {
			if sess.Role == role {
				c.Next()
				return
			}
		}
		deny(c)
	}
}

// RequireCapability gates one back-office area. Admins pass unconditionally;
// sales agents pass iff the capability is in their stored permission list;
// every other role is denied.
func RequireCapability(capability models.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			deny(c)
			return
		}

		switch sess.Role {
		case models.RoleAdmin:
			c.Next()
		case models.RoleSalesAgent:
			if sess.Agent == nil || !sess.Agent.HasCapability(capability) {
				deny(c)
				return
			}
			c.Next()
		default:
			deny(c)
		}
	}
}

func deny(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
