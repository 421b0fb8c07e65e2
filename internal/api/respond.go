package api

import "github.com/gin-gonic/gin"

// ErrorBody is the inner payload of the standard error envelope.
type ErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse is the envelope every non-2xx response carries.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func respondError(c *gin.Context, status int, message string, details ...string) {
	body := ErrorBody{Message: message}
	if len(details) > 0 {
		body.Details = details[0]
	}
	c.JSON(status, ErrorResponse{Error: body})
}
