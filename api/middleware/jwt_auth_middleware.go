package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hurricanemark/SchoolApp.mongo.API/internal/tokenutil"
)

func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "NOT_AUTHORIZED",
				"message": "missing bearer token",
			})
			return
		}

		authToken := parts[1]
		authorized, err := tokenutil.IsAuthorized(authToken, secret)
		if err != nil || !authorized {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "NOT_AUTHORIZED",
				"message": "invalid token",
			})
			return
		}

		userID, err := tokenutil.ExtractIDFromToken(authToken, secret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "NOT_AUTHORIZED",
				"message": "invalid token",
			})
			return
		}

		ctx.Set("x-user-id", userID)
		ctx.Next()
	}
}
