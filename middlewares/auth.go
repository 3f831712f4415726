package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wbonfim/DeliveryApp/entity"
	"github.com/wbonfim/DeliveryApp/pkg/apperr"
	"github.com/wbonfim/DeliveryApp/pkg/resp"
	"github.com/wbonfim/DeliveryApp/utils"
)

// Auth verifies the bearer token, resolves the subject and, when roles are
// given, enforces them. The subject id and role are passed downstream via
// the gin context; handlers read them back with utils.CurrentUserID.
func Auth(db *gorm.DB, secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			resp.Error(c, err)
			c.Abort()
			return
		}

		// The subject must still exist and be active; a token outliving its
		// account is rejected.
		var user entity.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			resp.Error(c, apperr.ErrSubjectNotFound)
			c.Abort()
			return
		}
		if !user.IsActive {
			resp.Error(c, apperr.ErrAccountDeactivated)
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("role", user.UserType)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if user.UserType == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
