package bulkorder

import (
	"errors"
	"fmt"
	"time"

	"bulk-order-service/internal/domain"
	"bulk-order-service/internal/spreadsheet"

	"go.uber.org/zap"
)

// Service define a interface do serviço de geração de bulk order.
type Service interface {
	Build(req domain.BuildRequest) (*domain.BuildResult, error)
}

// Options configures the derived values of a run.
type Options struct {
	CreatedAtOffsetDays int
	Customer            domain.CustomerDefaults
	// Now is the clock used to name the output file. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions mirrors the storefront defaults: created date two days before
// the invoice date.
func DefaultOptions() Options {
	return Options{
		CreatedAtOffsetDays: domain.DefaultCreatedAtOffsetDays,
		Customer:            domain.DefaultCustomerDefaults(),
		Now:                 time.Now,
	}
}

type service struct {
	logger *zap.Logger
	opts   Options
}

// NewService cria uma nova instância do serviço de bulk order.
func NewService(logger *zap.Logger, opts Options) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{logger: logger, opts: opts}
}

// IsInputError informa se o erro veio dos arquivos enviados e não do servidor.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, spreadsheet.ErrMissingColumns) ||
		errors.Is(err, spreadsheet.ErrUnreadableFile)
}

// Build carrega os uploads, aplica os fallbacks das entradas opcionais e monta a planilha.
func (svc *service) Build(req domain.BuildRequest) (*domain.BuildResult, error) {
	log := svc.logger
	if req.RequestID != "" {
		log = log.With(zap.String("request_id", req.RequestID))
	}

	txs, err := LoadTransactions(req.Transactions)
	if err != nil {
		return nil, err
	}
	buyers, err := LoadBuyers(req.Buyers)
	if err != nil {
		return nil, err
	}

	var warnings []string
	products, warn, err := LoadProducts(req.Products)
	if err != nil {
		return nil, err
	}
	if warn != "" {
		warnings = append(warnings, warn)
	}
	templateColumns, warn, err := LoadTemplateColumns(req.Template)
	if err != nil {
		return nil, err
	}
	if warn != "" {
		warnings = append(warnings, warn)
	}
	for _, w := range warnings {
		log.Warn(w)
	}

	result, err := Assemble(Input{
		Transactions:    txs,
		Buyers:          buyers,
		Products:        products,
		TemplateColumns: templateColumns,
	}, svc.opts, svc.opts.Now())
	if err != nil {
		return nil, err
	}
	result.Warnings = warnings

	log.Info("bulk order gerado",
		zap.String("file", result.FileName),
		zap.Int("transactions", result.Rows),
		zap.Int("buyers", len(buyers)),
		zap.Int("matched", result.Matched),
		zap.Int("products", len(products.Rows)),
		zap.Int("warnings", len(warnings)),
	)
	return result, nil
}

// Input is the already-loaded data of one run.
type Input struct {
	Transactions    []domain.TransactionRow
	Buyers          []domain.BuyerRecord
	Products        *domain.Table
	TemplateColumns []string
}

// Assemble is the pure pipeline: join, derive, map, synthesize and write. The
// caller's slices are not modified. A nil Products or TemplateColumns is
// replaced by its empty schema.
func Assemble(in Input, opts Options, now time.Time) (*domain.BuildResult, error) {
	txs := make([]domain.TransactionRow, len(in.Transactions))
	copy(txs, in.Transactions)
	buyers := make([]domain.BuyerRecord, len(in.Buyers))
	copy(buyers, in.Buyers)

	products := in.Products
	if products == nil {
		products = EmptyProducts()
	}
	templateColumns := in.TemplateColumns
	if templateColumns == nil {
		templateColumns = EmptyCustomerTemplate()
	}

	matched := JoinBuyers(txs, buyers)
	DeriveNames(txs)
	if err := DeriveDates(txs, opts.CreatedAtOffsetDays); err != nil {
		return nil, err
	}

	transactions := MapTransactions(txs)
	customers := SynthesizeCustomers(templateColumns, txs, opts.Customer)

	content, err := WriteWorkbook(customers, products, transactions)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar a planilha de bulk order: %w", err)
	}

	return &domain.BuildResult{
		Content:  content,
		FileName: FileName(now),
		Rows:     len(transactions.Rows),
		Matched:  matched,
	}, nil
}
