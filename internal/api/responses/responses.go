// internal/api/responses/responses.go
package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

var logger = zap.NewNop()

// APIResponse defines the standard envelope for API responses.
type APIResponse struct {
	Status  string      `json:"status"` // "success" or "error"
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// InitLogger sets the structured logger used for API responses.
func InitLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Attachment sends data as a downloadable file.
func Attachment(c *gin.Context, fileName, contentType string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, contentType, data)
	logger.Info("API success",
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", http.StatusOK),
		zap.String("file", fileName),
		zap.Int("bytes", len(data)),
		zap.String(RequestIDKey, c.GetString(RequestIDKey)),
	)
}

// Error sends an error response with the provided code, message, and optional errors.
func Error(c *gin.Context, code int, message string, errs ...string) {
	resp := APIResponse{Status: "error", Message: message, Errors: errs}
	c.JSON(code, resp)
	logger.Error("API error",
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", code),
		zap.Strings("errors", errs),
		zap.String(RequestIDKey, c.GetString(RequestIDKey)),
	)
}
