package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/animalloo/animalloo-backend/internal/platform/ctxutil"
)

// AttachRequestContext stores the caller's address on the request context.
// The user id is filled in later by RequireAuth.
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{
			ClientIP: c.ClientIP(),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
