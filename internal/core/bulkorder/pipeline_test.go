package bulkorder

import (
	"testing"
	"time"

	"bulk-order-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinBuyersKeepsEveryTransaction(t *testing.T) {
	buyers := []domain.BuyerRecord{
		{TaxID: "20-12345678-9", CleanTaxID: "20123456789", Name: "Maria Eugenia Lopez", Email: "maria@example.com"},
		{TaxID: "20123456789", CleanTaxID: "20123456789", Name: "Duplicate Buyer", Email: "dup@example.com"},
		{TaxID: "", CleanTaxID: "", Name: "No Id", Email: "noid@example.com"},
	}
	txs := []domain.TransactionRow{
		{Invoice: "1", TaxID: "20123456789"},
		{Invoice: "2", TaxID: "27999999999"},
		{Invoice: "3", TaxID: ""},
		{Invoice: "4", TaxID: "20123456789"},
	}

	matched := JoinBuyers(txs, buyers)
	DeriveNames(txs)

	require.Len(t, txs, 4)
	assert.Equal(t, 2, matched)
	assert.Equal(t, []string{"1", "2", "3", "4"}, []string{txs[0].Invoice, txs[1].Invoice, txs[2].Invoice, txs[3].Invoice})

	assert.Equal(t, "maria@example.com", txs[0].BuyerEmail, "first buyer wins on duplicated tax id")
	assert.Equal(t, "20123456789", txs[0].MatchedTaxID)
	assert.Equal(t, "Maria", txs[0].FirstName)
	assert.Equal(t, "Eugenia Lopez", txs[0].LastName)
	assert.Equal(t, "MEL", txs[0].Suffix)
	assert.Same(t, &buyers[0], txs[3].Buyer)

	for _, tx := range txs[1:3] {
		assert.Empty(t, tx.BuyerName)
		assert.Empty(t, tx.BuyerEmail)
		assert.Empty(t, tx.MatchedTaxID)
		assert.Empty(t, tx.FirstName)
		assert.Empty(t, tx.LastName)
		assert.Empty(t, tx.Suffix)
		assert.Nil(t, tx.Buyer)
	}
}

func TestDeriveDates(t *testing.T) {
	tests := []struct {
		raw       string
		date      string
		createdAt string
	}{
		{"2024-03-10", "10/03/2024", "08/03/2024"},
		{"2024-03-10 14:30:00", "10/03/2024", "08/03/2024"},
		{"45361", "10/03/2024", "08/03/2024"},
		{"10/03/2024", "10/03/2024", "08/03/2024"},
		{"2024-03-01", "01/03/2024", "28/02/2024"},
		{"2025-01-01", "01/01/2025", "30/12/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			txs := []domain.TransactionRow{{RawDate: tt.raw}}
			require.NoError(t, DeriveDates(txs, 2))
			assert.Equal(t, tt.date, txs[0].Date)
			assert.Equal(t, tt.createdAt, txs[0].CreatedAt)
		})
	}
}

// Slash dates in the Argentine exports are day-first: "03/10/2024" is
// 3 October, never 10 March.
func TestParseTransactionDateSlashIsDayFirst(t *testing.T) {
	got, err := ParseTransactionDate("03/10/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.October, 3, 0, 0, 0, 0, time.UTC), got)

	txs := []domain.TransactionRow{{RawDate: "03/10/2024"}}
	require.NoError(t, DeriveDates(txs, 2))
	assert.Equal(t, "03/10/2024", txs[0].Date)
	assert.Equal(t, "01/10/2024", txs[0].CreatedAt)

	_, err = ParseTransactionDate("10/13/2024")
	assert.ErrorIs(t, err, ErrInvalidDate, "month-first dates are rejected")
}

func TestDeriveDatesFailsOnBadDate(t *testing.T) {
	for _, raw := range []string{"", "not a date", "31/02/2024"} {
		txs := []domain.TransactionRow{{RawDate: "2024-03-10"}, {Invoice: "B-2", RawDate: raw}}
		err := DeriveDates(txs, 2)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, ErrInvalidDate)
		assert.Contains(t, err.Error(), "B-2")
	}
}

func TestMapTransactionsFixedSchema(t *testing.T) {
	txs := []domain.TransactionRow{{
		Invoice: "A-0001", Date: "10/03/2024", CreatedAt: "08/03/2024", Suffix: "MEL",
		FirstName: "Maria", LastName: "Eugenia Lopez", BuyerEmail: "maria@example.com",
		ArticleID: "1001", Description: "Yerba 1kg", Total: "1500.5", Quantity: "2", UnitPrice: "750.25",
	}, {}}

	table := MapTransactions(txs)

	assert.Equal(t, domain.TransactionsSampleColumns, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []interface{}{
		"A-0001", "10/03/2024", "08/03/2024", "MEL", "Maria", "Eugenia Lopez",
		"maria@example.com", int64(1001), "Yerba 1kg", 1500.5, int64(2), 750.25,
	}, table.Rows[0])
	assert.Len(t, table.Rows[1], 12)
	for _, v := range table.Rows[1] {
		assert.Nil(t, v)
	}
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		raw  string
		want interface{}
	}{
		{"", nil},
		{"3", int64(3)},
		{"-12", int64(-12)},
		{"1500.5", 1500.5},
		{"0.25", 0.25},
		{"20123456789", int64(20123456789)},
		{"007", "007"},
		{"A-0001", "A-0001"},
		{"1,5", "1,5"},
		{" 3", " 3"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CellValue(tt.raw), tt.raw)
	}
}

func TestAddressExtraction(t *testing.T) {
	tests := []struct {
		address  string
		street   string
		postcode string
	}{
		{"Av. Siempreviva 742,1900,AR", "Av. Siempreviva 742", "1900"},
		{"Ruta 2 km 5,7600,AR", "Ruta 2 km 5", "7600"},
		{"San Martin 100,C1004,AR", "", ""},
		{"Calle Falsa 123", "", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			assert.Equal(t, tt.street, ExtractStreet(tt.address))
			assert.Equal(t, tt.postcode, ExtractPostcode(tt.address))
		})
	}
}

func TestSynthesizeCustomersFallbackTemplate(t *testing.T) {
	buyer := &domain.BuyerRecord{
		ShippingAddress: "Av. Siempreviva 742,1900,AR",
		ShippingCity:    "La Plata",
		Phone:           "2214567890",
	}
	txs := []domain.TransactionRow{
		{BuyerEmail: "maria@example.com", FirstName: "Maria", LastName: "Eugenia Lopez", Suffix: "MEL", MatchedTaxID: "20123456789", Buyer: buyer},
		{},
	}

	table := SynthesizeCustomers(EmptyCustomerTemplate(), txs, domain.DefaultCustomerDefaults())

	assert.Equal(t, domain.CustomerTemplateColumns, table.Columns)
	require.Len(t, table.Rows, 2)

	row := func(i int, col string) interface{} {
		return table.Rows[i][table.ColumnIndex(col)]
	}
	assert.Equal(t, "maria@example.com", row(0, "email"))
	assert.Equal(t, "Argentina", row(0, "_website"))
	assert.Equal(t, "RM_ARG_VW", row(0, "_store"))
	assert.Equal(t, "WIX", row(0, "created_in"))
	assert.Equal(t, 0, row(0, "disable_auto_group_change"))
	assert.Equal(t, "Maria", row(0, "firstname"))
	assert.Equal(t, "Eugenia Lopez", row(0, "lastname"))
	assert.Equal(t, "NHE", row(0, "prefix"))
	assert.Equal(t, "MEL", row(0, "suffix"))
	assert.Equal(t, "20123456789", row(0, "taxvat"))
	assert.Equal(t, 2, row(0, "website_id"))
	assert.Equal(t, "La Plata", row(0, "_address_city"))
	assert.Equal(t, "La Plata", row(0, "_address_region"))
	assert.Equal(t, "ARG", row(0, "_address_fax"))
	assert.Equal(t, "Maria", row(0, "_address_firstname"))
	assert.Equal(t, "Eugenia Lopez", row(0, "_address_lastname"))
	assert.Equal(t, "1900", row(0, "_address_postcode"))
	assert.Equal(t, "Av. Siempreviva 742", row(0, "_address_street"))
	assert.Equal(t, int64(2214567890), row(0, "_address_telephone"))
	assert.Equal(t, 1, row(0, "_address_default_billing_"))
	assert.Equal(t, 1, row(0, "_address_default_shipping_"))
	assert.Nil(t, row(0, "dob"))
	assert.Nil(t, row(0, "password_hash"))

	// unmatched transaction: constants only
	assert.Nil(t, row(1, "email"))
	assert.Nil(t, row(1, "taxvat"))
	assert.Nil(t, row(1, "_address_city"))
	assert.Nil(t, row(1, "_address_telephone"))
	assert.Equal(t, "Argentina", row(1, "_website"))
	assert.Equal(t, 2, row(1, "website_id"))
}

func TestSynthesizeCustomersCustomTemplate(t *testing.T) {
	template := []string{"email", "loyalty_tier", "suffix", "email"}
	txs := []domain.TransactionRow{{BuyerEmail: "a@example.com", Suffix: "AB"}}

	table := SynthesizeCustomers(template, txs, domain.DefaultCustomerDefaults())

	assert.Equal(t, template, table.Columns[:4])
	assert.Equal(t, "_website", table.Columns[4], "missing populated columns are appended in order")
	assert.Equal(t, "_address_default_shipping_", table.Columns[len(table.Columns)-1])
	assert.Len(t, table.Columns, 4+19)

	r := table.Rows[0]
	assert.Equal(t, "a@example.com", r[0])
	assert.Nil(t, r[1])
	assert.Equal(t, "AB", r[2])
	assert.Equal(t, "a@example.com", r[3])
}

func TestFallbacks(t *testing.T) {
	products := EmptyProducts()
	assert.Len(t, products.Columns, 23)
	assert.Empty(t, products.Rows)
	assert.Equal(t, "sku", products.Columns[0])
	assert.Equal(t, "source_code", products.Columns[22])

	cols := EmptyCustomerTemplate()
	assert.Equal(t, domain.CustomerTemplateColumns, cols)
	cols[0] = "changed"
	assert.Equal(t, "email", domain.CustomerTemplateColumns[0], "fallback returns a copy")
}

func TestPassThroughTableNamesBlankHeaders(t *testing.T) {
	table := passThroughTable([]string{"sku", "", "price"}, [][]interface{}{
		{"SKU-1", "x", 10.5, "extra"},
		{"SKU-2"},
	})
	assert.Equal(t, []string{"sku", "Unnamed: 1", "price", "Unnamed: 3"}, table.Columns)
	assert.Equal(t, []interface{}{"SKU-1", "x", 10.5, "extra"}, table.Rows[0])
	assert.Equal(t, []interface{}{"SKU-2", nil, nil, nil}, table.Rows[1])
}

func TestPassThroughTableKeepsTextThatLooksNumeric(t *testing.T) {
	table := passThroughTable([]string{"sku", "additional_attributes", "qty"}, [][]interface{}{
		{"1001", "1.10", float64(7)},
	})
	assert.Equal(t, []interface{}{"1001", "1.10", float64(7)}, table.Rows[0])
}
