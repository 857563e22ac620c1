package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KevinThakor17/EMS/internal/models"
	"github.com/KevinThakor17/EMS/internal/utils"
)

const ContextActor = "actor"

// AuthRequired verifies the bearer token and resolves the acting employee
// from the store. Inactive or vanished accounts fail exactly like a bad
// token.
func AuthRequired(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization"})
			return
		}

		claims, err := utils.ParseAccessToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		var actor models.Employee
		if err := db.Where("email = ? AND is_active = ?", claims.Subject, true).First(&actor).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "employee not found or inactive"})
			return
		}

		c.Set(ContextActor, actor)
		c.Next()
	}
}

// Actor returns the employee resolved by AuthRequired.
func Actor(c *gin.Context) (models.Employee, bool) {
	value, ok := c.Get(ContextActor)
	if !ok {
		return models.Employee{}, false
	}
	actor, ok := value.(models.Employee)
	return actor, ok
}

func RequireAnyRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := Actor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
