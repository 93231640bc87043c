package responses

import (
	"github.com/gin-gonic/gin"

	"nebulanotes/internal/services"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func JSON(c *gin.Context, statusCode int, status string, data interface{}, message string, err error) {
	response := APIResponse{
		Status:  status,
		Message: message,
		Data:    data,
	}

	if err != nil {
		response.Error = err.Error()
		if ve, ok := services.AsValidationError(err); ok {
			response.Errors = ve
		}
	}

	c.JSON(statusCode, response)
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}
