package handler

import "github.com/gin-gonic/gin"

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// ownerID pulls the authenticated owner id set by the auth middleware.
func ownerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("owner_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
