package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
)

// BindJSON binds and validates the request body into obj.
// On failure it writes the error response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if validationResponse, ok := dto.HandleValidationError(err); ok {
			c.JSON(http.StatusUnprocessableEntity, validationResponse)
			return false
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return false
	}
	return true
}
