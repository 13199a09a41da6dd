package bulkorder

import (
	"fmt"
	"time"

	"bulk-order-service/internal/domain"

	"github.com/xuri/excelize/v2"
)

// FileName returns BULK_ORDER_<DDMMYYYY>.xlsx for the given day.
func FileName(now time.Time) string {
	return fmt.Sprintf("BULK_ORDER_%s.xlsx", now.Format("02012006"))
}

// WriteWorkbook writes the customer, products and transactions tables, in that
// order, as sheets of one in-memory workbook. Each sheet starts with its header.
func WriteWorkbook(customers, products, transactions *domain.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name  string
		table *domain.Table
	}{
		{domain.SheetCustomer, customers},
		{domain.SheetProducts, products},
		{domain.SheetTransactions, transactions},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return nil, fmt.Errorf("erro ao renomear a planilha %s: %w", s.name, err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, fmt.Errorf("erro ao criar a planilha %s: %w", s.name, err)
		}
		if err := writeSheet(f, s.name, s.table); err != nil {
			return nil, fmt.Errorf("erro ao escrever a planilha %s: %w", s.name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, name string, table *domain.Table) error {
	sw, err := f.NewStreamWriter(name)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}
