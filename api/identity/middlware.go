package identity

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Mnour3593/C-Maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"
)

// Authoriz rejects requests without a valid bearer token and stores the
// token claims under ContextUserClaims.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// Player returns the ID and username of the authenticated caller.
func Player(c *gin.Context) (uuid.UUID, string, bool) {
	raw, ok := c.Get(ContextUserClaims)
	if !ok {
		return uuid.Nil, "", false
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, "", false
	}

	id, err := uuid.Parse(fmt.Sprint(claims["userID"]))
	if err != nil {
		return uuid.Nil, "", false
	}
	username, _ := claims["username"].(string)
	return id, username, true
}
