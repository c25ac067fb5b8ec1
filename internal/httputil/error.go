package httputil

import (
	"github.com/gin-gonic/gin"
)

// NewError writes an error response with the status.
func NewError(c *gin.Context, status int, err error) {
	e := err.Error()
	c.JSON(status, HTTPError{
		Error: &e,
	})
}

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid positive integer"`
}
