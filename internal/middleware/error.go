package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastenamibia/recipe-catalog/backend/internal/types"
)

// Recovery turns a panic in any handler into a JSON 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("Error: request %s %s panicked (request id %s): %v",
			c.Request.Method, c.Request.URL.Path, GetRequestID(c), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Internal Server Error"})
	})
}
