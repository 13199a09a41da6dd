package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"bulk-order-service/internal/api/responses"
	"bulk-order-service/internal/core/bulkorder"
	"bulk-order-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// Campos multipart do upload de bulk order.
const (
	FieldTransactions = "transactionsFile"
	FieldBuyers       = "buyersFile"
	FieldProducts     = "productsFile"
	FieldTemplate     = "templateFile"
)

// WarningsHeader lista os fallbacks aplicados ao montar a planilha.
const WarningsHeader = "X-Bulk-Order-Warnings"

var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xls":  true,
	".csv":  true,
}

var errFileMissing = errors.New("arquivo não encontrado")

// BulkOrderHandler lida com as requisições de geração de bulk order.
type BulkOrderHandler struct {
	service bulkorder.Service
}

// NewBulkOrderHandler cria um novo handler de bulk order.
func NewBulkOrderHandler(service bulkorder.Service) *BulkOrderHandler {
	return &BulkOrderHandler{
		service: service,
	}
}

// readUpload carrega um arquivo multipart em memória. Campo ausente retorna errFileMissing.
func readUpload(c *gin.Context, field string) (*domain.InputFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, errFileMissing
		}
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("extensão de arquivo não suportada em %s: %q", field, ext)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("não foi possível abrir %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("não foi possível ler %s: %w", field, err)
	}
	return &domain.InputFile{Name: header.Filename, Data: data}, nil
}

// HandleBuildBulkOrder gera a planilha de bulk order a partir dos arquivos enviados.
func (h *BulkOrderHandler) HandleBuildBulkOrder(c *gin.Context) {
	files := make(map[string]*domain.InputFile, 4)
	for _, field := range []string{FieldTransactions, FieldBuyers, FieldProducts, FieldTemplate} {
		file, err := readUpload(c, field)
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, errFileMissing):
			if field == FieldProducts {
				continue
			}
			responses.Error(c, http.StatusBadRequest,
				fmt.Sprintf("Arquivo %s (.xlsx, .xls, .csv) não encontrado ou inválido", field))
			return
		case errors.As(err, &tooLarge):
			responses.Error(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Requisição excede o limite de %d bytes", tooLarge.Limit))
			return
		case err != nil:
			responses.Error(c, http.StatusBadRequest, "Upload inválido", err.Error())
			return
		}
		files[field] = file
	}

	result, err := h.service.Build(domain.BuildRequest{
		Transactions: *files[FieldTransactions],
		Buyers:       *files[FieldBuyers],
		Products:     files[FieldProducts],
		Template:     files[FieldTemplate],
		RequestID:    c.GetString(responses.RequestIDKey),
	})
	if err != nil {
		if bulkorder.IsInputError(err) {
			responses.Error(c, http.StatusBadRequest, "Arquivos de entrada inválidos", err.Error())
			return
		}
		responses.Error(c, http.StatusInternalServerError, "Erro ao gerar o bulk order", err.Error())
		return
	}

	if len(result.Warnings) > 0 {
		c.Header(WarningsHeader, strings.Join(result.Warnings, " | "))
	}
	responses.Attachment(c, result.FileName, domain.XLSXMimeType, result.Content)
}
