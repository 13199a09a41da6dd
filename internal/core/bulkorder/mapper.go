package bulkorder

import "bulk-order-service/internal/domain"

// MapTransactions projects enriched transactions onto the fixed
// Transactions_Sample schema, one output row per input row, order preserved.
func MapTransactions(txs []domain.TransactionRow) *domain.Table {
	table := domain.NewTable(domain.TransactionsSampleColumns)
	table.Rows = make([][]interface{}, 0, len(txs))
	for _, tx := range txs {
		table.Rows = append(table.Rows, []interface{}{
			CellValue(tx.Invoice),
			textCell(tx.Date),
			textCell(tx.CreatedAt),
			textCell(tx.Suffix),
			textCell(tx.FirstName),
			textCell(tx.LastName),
			textCell(tx.BuyerEmail),
			CellValue(tx.ArticleID),
			textCell(tx.Description),
			CellValue(tx.Total),
			CellValue(tx.Quantity),
			CellValue(tx.UnitPrice),
		})
	}
	return table
}
