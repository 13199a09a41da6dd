package bulkorder

import (
	"bytes"
	"testing"
	"time"

	"bulk-order-service/internal/domain"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sheetFixture struct {
	name string
	rows [][]interface{}
}

func buildXLSX(t *testing.T, sheets ...sheetFixture) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func readXLSX(t *testing.T, data []byte) (names []string, sheets map[string][][]string) {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets = make(map[string][][]string)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		require.NoError(t, err)
		sheets[name] = rows
	}
	return f.GetSheetList(), sheets
}

func transactionsFixture(t *testing.T) domain.InputFile {
	return domain.InputFile{Name: "ventas.xlsx", Data: buildXLSX(t, sheetFixture{
		name: "Ventas",
		rows: [][]interface{}{
			{"comprobante", "fecha", "cuit", "art_id", "art_nombre", "total", "art_Cantidad", "precio_unidad"},
			{"A-0001", "2024-03-10", 20123456789, 1001, "Yerba 1kg", 1500.5, 2, 750.25},
			{"A-0002", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), "27-99999999-1", "SKU-9", "Mate", 900, 1, 900},
			{"A-0003", "2024-03-12", "20-12345678-9", 1002, "Bombilla", 300, 3, 100},
		},
	})}
}

func buyersFixture(t *testing.T) domain.InputFile {
	return domain.InputFile{Name: "buyers.xlsx", Data: buildXLSX(t, sheetFixture{
		name: "Buyers",
		rows: [][]interface{}{
			{"Buyer Name", "Buyer Email", "Tax ID", "Shipping City", "Shipping Address", "Buyer Phone Number"},
			{"Maria Eugenia Lopez", "maria@example.com", "20-12345678-9", "La Plata", "Av. Siempreviva 742,1900,AR", 2214567890},
			{"Otro Comprador", "otro@example.com", "30111111118", "Rosario", "Sin numero", "n/a"},
		},
	})}
}

func productsFixture(t *testing.T) *domain.InputFile {
	header := make([]interface{}, len(domain.ProductsSampleColumns))
	for i, c := range domain.ProductsSampleColumns {
		header[i] = c
	}
	return &domain.InputFile{Name: "products.xlsx", Data: buildXLSX(t,
		sheetFixture{name: "Notes", rows: [][]interface{}{{"ignored"}}},
		sheetFixture{name: "Products_Sample", rows: [][]interface{}{
			header,
			{"1001", "Default", "simple", "Yerbas"},
		}},
	)}
}

func templateFixture(t *testing.T) *domain.InputFile {
	header := make([]interface{}, len(domain.CustomerTemplateColumns))
	for i, c := range domain.CustomerTemplateColumns {
		header[i] = c
	}
	return &domain.InputFile{Name: "template.xlsx", Data: buildXLSX(t,
		sheetFixture{name: "Customers", rows: [][]interface{}{header, {"sample@row.com"}}},
	)}
}

func fixedOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC) }
	return opts
}
