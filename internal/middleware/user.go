package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/monjournal/journal-api/internal/constants"
	apierrors "github.com/monjournal/journal-api/internal/errors"
	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/services"
)

// ResolveUser threads the single implicit user through every request.
// The session only caches the resolved id so later requests skip the
// lookup-or-create; losing it is harmless.
func ResolveUser(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		var user *models.User
		if cached, ok := session.Get(constants.SessionKeyUserID).(string); ok && cached != "" {
			if found, err := userService.FindByID(cached); err == nil {
				user = found
			}
		}

		if user == nil {
			resolved, err := userService.Resolve()
			if err != nil {
				apierrors.InternalError(c, "Failed to resolve user")
				c.Abort()
				return
			}
			user = resolved

			session.Set(constants.SessionKeyUserID, user.ID)
			_ = session.Save()
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// GetCurrentUser retrieves the resolved user from context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
