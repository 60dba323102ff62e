package middleware

import "github.com/gin-gonic/gin"

// requestIDKey is the key used to store the request id in the Gin and request contexts.
const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request id set by StructuredLoggingMiddleware.
// It returns the id and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	requestIDVal, exists := c.Get(string(requestIDKey))
	if !exists {
		// check in the request context as well
		if id, ok := c.Request.Context().Value(requestIDKey).(string); ok {
			return id, true
		}
		return "", false
	}

	requestID, ok := requestIDVal.(string)
	if !ok {
		return "", false
	}

	return requestID, true
}
