package bulkorder

import (
	"fmt"

	"bulk-order-service/internal/domain"
)

// Warnings raised when an optional input is replaced by its empty schema.
const (
	WarnNoProductsFile     = "No Products file provided. Creating an empty Products_Sample."
	WarnNoProductsSheet    = "Products_Sample sheet not found. Creating an empty Products_Sample."
	WarnNoTemplateFile     = "No template file provided. Creating an empty Customer_Sample with the right columns."
	WarnEmptyTemplateSheet = "Template file has no header row. Creating an empty Customer_Sample with the right columns."
)

// EmptyProducts returns a products table with the full catalog header and no rows.
func EmptyProducts() *domain.Table {
	return domain.NewTable(domain.ProductsSampleColumns)
}

// EmptyCustomerTemplate returns the customer import header used without a template.
func EmptyCustomerTemplate() []string {
	cols := make([]string, len(domain.CustomerTemplateColumns))
	copy(cols, domain.CustomerTemplateColumns)
	return cols
}

// passThroughTable turns a sheet into an output table keeping every cell
// value and type as read. Blank or missing header cells are named
// "Unnamed: <n>".
func passThroughTable(header []string, rows [][]interface{}) *domain.Table {
	width := len(header)
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	columns := make([]string, width)
	for i := range columns {
		if i < len(header) && header[i] != "" {
			columns[i] = header[i]
			continue
		}
		columns[i] = fmt.Sprintf("Unnamed: %d", i)
	}

	table := domain.NewTable(columns)
	for _, r := range rows {
		out := make([]interface{}, width)
		copy(out, r)
		table.Rows = append(table.Rows, out)
	}
	return table
}
