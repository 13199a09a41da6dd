package middleware

import (
	"bulk-order-service/internal/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carrega o id da requisição nos dois sentidos.
const RequestIDHeader = "X-Request-ID"

// RequestID reaproveita o X-Request-ID do cliente ou gera um novo, guarda no
// contexto e devolve na resposta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(responses.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
