package middleware

import (
	"fmt"
	"net/http"

	"bulk-order-service/internal/api/responses"

	"github.com/gin-gonic/gin"
)

// BodyLimit rejeita requisições maiores que maxBytes. Um Content-Length
// declarado acima do limite é recusado com 413 antes de ler o corpo; nos
// demais casos o corpo é envolvido por http.MaxBytesReader e a leitura falha
// com *http.MaxBytesError ao ultrapassar o limite.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			responses.Error(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Requisição excede o limite de %d bytes", maxBytes))
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
