package bulkorder

import (
	"errors"
	"fmt"

	"bulk-order-service/internal/domain"
	"bulk-order-service/internal/spreadsheet"
)

func readFirstSheet(file domain.InputFile) (*spreadsheet.Sheet, error) {
	wb, err := spreadsheet.Open(file.Name, file.Data)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	rows, err := spreadsheet.FirstSheet(wb)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", spreadsheet.ErrUnreadableFile, file.Name, err)
	}
	return spreadsheet.NewSheet(rows), nil
}

// LoadTransactions lê o export de transações e limpa cada CUIT.
func LoadTransactions(file domain.InputFile) ([]domain.TransactionRow, error) {
	sheet, err := readFirstSheet(file)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar arquivo de transações: %w", err)
	}
	idx, err := sheet.Resolve("transactions", domain.TransactionColumns)
	if err != nil {
		return nil, err
	}

	txs := make([]domain.TransactionRow, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		get := func(col string) string { return spreadsheet.Cell(row, idx[col]) }
		txs = append(txs, domain.TransactionRow{
			Invoice:     get(domain.ColInvoice),
			RawDate:     get(domain.ColDate),
			RawTaxID:    get(domain.ColTaxID),
			TaxID:       CleanTaxID(get(domain.ColTaxID)),
			ArticleID:   get(domain.ColArticleID),
			Description: get(domain.ColArticleName),
			Total:       get(domain.ColTotal),
			Quantity:    get(domain.ColQuantity),
			UnitPrice:   get(domain.ColUnitPrice),
		})
	}
	return txs, nil
}

// LoadBuyers lê o export de compradores.
func LoadBuyers(file domain.InputFile) ([]domain.BuyerRecord, error) {
	sheet, err := readFirstSheet(file)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar arquivo de compradores: %w", err)
	}
	idx, err := sheet.Resolve("buyers", domain.BuyerColumns)
	if err != nil {
		return nil, err
	}

	buyers := make([]domain.BuyerRecord, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		get := func(col string) string { return spreadsheet.Cell(row, idx[col]) }
		buyers = append(buyers, domain.BuyerRecord{
			TaxID:           get(domain.ColBuyerTaxID),
			CleanTaxID:      CleanTaxID(get(domain.ColBuyerTaxID)),
			Name:            get(domain.ColBuyerName),
			Email:           get(domain.ColBuyerEmail),
			ShippingAddress: get(domain.ColShippingAddress),
			ShippingCity:    get(domain.ColShippingCity),
			Phone:           get(domain.ColBuyerPhone),
		})
	}
	return buyers, nil
}

// LoadProducts returns the Products_Sample sheet unchanged, cell types included. A nil file or a
// workbook without that sheet yields the empty catalog and a warning.
func LoadProducts(file *domain.InputFile) (*domain.Table, string, error) {
	if file == nil || len(file.Data) == 0 {
		return EmptyProducts(), WarnNoProductsFile, nil
	}

	wb, err := spreadsheet.Open(file.Name, file.Data)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao carregar arquivo de produtos: %w", err)
	}
	defer wb.Close()

	if !spreadsheet.HasSheet(wb, domain.SheetProducts) {
		return EmptyProducts(), WarnNoProductsSheet, nil
	}
	values, err := wb.Values(domain.SheetProducts)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrSheetNotFound) {
			return EmptyProducts(), WarnNoProductsSheet, nil
		}
		return nil, "", fmt.Errorf("erro ao ler a planilha %s: %w", domain.SheetProducts, err)
	}

	header, rows := spreadsheet.SplitValues(values)
	return passThroughTable(header, rows), "", nil
}

// LoadTemplateColumns returns the header of the template's first sheet. A nil
// file yields the fallback customer schema and a warning.
func LoadTemplateColumns(file *domain.InputFile) ([]string, string, error) {
	if file == nil || len(file.Data) == 0 {
		return EmptyCustomerTemplate(), WarnNoTemplateFile, nil
	}

	sheet, err := readFirstSheet(*file)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao carregar arquivo de template: %w", err)
	}
	if len(sheet.Header) == 0 {
		return EmptyCustomerTemplate(), WarnEmptyTemplateSheet, nil
	}
	return passThroughTable(sheet.Header, nil).Columns, "", nil
}
