package auth

import (
	"strings"

	"github.com/AyanAhmed30/Logistix-sub000/models"
	"github.com/gin-gonic/gin"
)

// SessionCookie carries the signed session token between requests.
const SessionCookie = "logistix_session"

// Session is what the auth middleware derives from the cookie on every call.
// Exactly one of User or Agent is set, matching the role.
type Session struct {
	Username string
	Role     string
	User     *models.User
	Agent    *models.SalesAgent
}

// CurrentSession returns the session placed in the context by AuthMiddleware.
func CurrentSession(c *gin.Context) (Session, bool) {
	value, exists := c.Get("session")
	if !exists {
		return Session{}, false
	}
	sess, ok := value.(Session)
	return sess, ok
}

// DashboardPath is where a freshly authenticated caller belongs. Sales
// agents work inside the admin portal, gated per area by capability.
func DashboardPath(role string) string {
	switch role {
	case models.RoleAdmin, models.RoleSalesAgent:
		return "/admin/dashboard"
	default:
		return "/user/dashboard"
	}
}

// sessionToken pulls the raw token from the cookie, falling back to a bearer
// header for non-browser clients.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}
