package bulkorder

import (
	"regexp"

	"bulk-order-service/internal/domain"
)

var postcodeRegex = regexp.MustCompile(`(\d+),AR`)
var streetRegex = regexp.MustCompile(`(.*?),\d+`)

// ExtractPostcode returns the digit run right before ",AR", or "".
func ExtractPostcode(address string) string {
	if m := postcodeRegex.FindStringSubmatch(address); len(m) > 1 {
		return m[1]
	}
	return ""
}

// ExtractStreet returns the text before the first ",<digits>" segment, or "".
func ExtractStreet(address string) string {
	if m := streetRegex.FindStringSubmatch(address); len(m) > 1 {
		return m[1]
	}
	return ""
}

// BuildCustomerRow derives the customer record of one joined transaction.
func BuildCustomerRow(tx domain.TransactionRow, d domain.CustomerDefaults) domain.CustomerRow {
	row := domain.CustomerRow{
		Email:                  tx.BuyerEmail,
		Website:                d.Website,
		Store:                  d.Store,
		CreatedIn:              d.CreatedIn,
		DisableAutoGroupChange: d.DisableAutoGroupChange,
		FirstName:              tx.FirstName,
		LastName:               tx.LastName,
		Prefix:                 d.Prefix,
		Suffix:                 tx.Suffix,
		TaxVat:                 tx.MatchedTaxID,
		WebsiteID:              d.WebsiteID,
		AddressFax:             d.AddressFax,
		AddressFirstName:       tx.FirstName,
		AddressLastName:        tx.LastName,
		DefaultBilling:         d.DefaultBilling,
		DefaultShipping:        d.DefaultShipping,
	}
	if b := tx.Buyer; b != nil {
		row.AddressCity = b.ShippingCity
		row.AddressRegion = b.ShippingCity
		row.AddressPostcode = ExtractPostcode(b.ShippingAddress)
		row.AddressStreet = ExtractStreet(b.ShippingAddress)
		row.AddressTelephone = CellValue(b.Phone)
	}
	return row
}

// SynthesizeCustomers lays one customer row per transaction over the template
// columns. Populated columns the template lacks are appended after it; template
// columns nobody populates stay empty.
func SynthesizeCustomers(templateColumns []string, txs []domain.TransactionRow, d domain.CustomerDefaults) *domain.Table {
	table := domain.NewTable(templateColumns)

	positions := make(map[string][]int, len(table.Columns))
	for i, c := range table.Columns {
		positions[c] = append(positions[c], i)
	}
	for _, f := range (domain.CustomerRow{}).Fields() {
		if _, ok := positions[f.Column]; !ok {
			positions[f.Column] = []int{len(table.Columns)}
			table.Columns = append(table.Columns, f.Column)
		}
	}

	table.Rows = make([][]interface{}, 0, len(txs))
	for _, tx := range txs {
		out := make([]interface{}, len(table.Columns))
		for _, f := range BuildCustomerRow(tx, d).Fields() {
			v := f.Value
			if s, ok := v.(string); ok {
				v = textCell(s)
			}
			for _, p := range positions[f.Column] {
				out[p] = v
			}
		}
		table.Rows = append(table.Rows, out)
	}
	return table
}
