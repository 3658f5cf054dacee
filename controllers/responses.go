package controllers

import (
	"errors"

	"littlemeals/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type fieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorBody maps engine findings to the wire shape, resolving display
// messages through the code table.
func errorBody(errs []utils.ValidationError) []fieldError {
	out := make([]fieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, fieldError{
			Field:   e.Field,
			Code:    e.Code,
			Message: utils.MessageFor(e),
		})
	}
	return out
}

// respondError translates service errors: validation failures become
// 422 with the structured error list, missing rows 404, anything else
// 500.
func respondError(c *gin.Context, err error) {
	var invalid *utils.InvalidRecordError
	if errors.As(err, &invalid) {
		c.JSON(422, gin.H{"errors": errorBody(invalid.Errors)})
		return
	}
	var single utils.ValidationError
	if errors.As(err, &single) {
		c.JSON(422, gin.H{"errors": errorBody([]utils.ValidationError{single})})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	c.JSON(500, gin.H{"error": err.Error()})
}
