package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageResponse carries the pagination fields next to the envelope so list
// clients can read total/page/limit without unwrapping.
type PageResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	Orders  interface{} `json:"orders"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

func RespondPage(c *gin.Context, code int, message string, total int64, page, limit int, orders interface{}) {
	c.JSON(code, PageResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Total:   total,
		Page:    page,
		Limit:   limit,
		Orders:  orders,
	})
}
