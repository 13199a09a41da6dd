// internal/spreadsheet/workbook.go
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/structure"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnreadableFile indica que o upload não pôde ser aberto como planilha.
	ErrUnreadableFile = errors.New("arquivo de planilha ilegível")
	// ErrSheetNotFound indica que a planilha pedida não existe no arquivo.
	ErrSheetNotFound = errors.New("planilha não encontrada")
)

// Workbook gives row access to every sheet of an uploaded file.
type Workbook interface {
	SheetNames() []string
	// Rows returns every cell as its raw text.
	Rows(sheet string) ([][]string, error)
	// Values returns every cell with the type stored in the file: string,
	// float64 or bool, nil for empty cells. CSV cells are always text.
	Values(sheet string) ([][]interface{}, error)
	Close() error
}

// Open detecta o formato pela extensão e abre o arquivo.
// Extensões desconhecidas são testadas como xlsx e depois xls.
func Open(name string, data []byte) (Workbook, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s está vazio", ErrUnreadableFile, name)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		wb, err := openXLSX(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, name, err)
		}
		return wb, nil
	case ".xls":
		wb, err := openXLS(data)
		if err != nil {
			// alguns exports salvam conteúdo xlsx com extensão .xls
			if wbx, errX := openXLSX(data); errX == nil {
				return wbx, nil
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, name, err)
		}
		return wb, nil
	case ".csv":
		return openCSV(name, data)
	}

	if wb, err := openXLSX(data); err == nil {
		return wb, nil
	}
	if wb, err := openXLS(data); err == nil {
		return wb, nil
	}
	return nil, fmt.Errorf("%w: %s: formato de planilha não suportado", ErrUnreadableFile, name)
}

// FirstSheet returns the rows of the first sheet of the workbook.
func FirstSheet(wb Workbook) ([][]string, error) {
	names := wb.SheetNames()
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: arquivo sem planilhas", ErrSheetNotFound)
	}
	return wb.Rows(names[0])
}

// HasSheet reports whether the workbook contains a sheet with exactly this name.
func HasSheet(wb Workbook, name string) bool {
	for _, n := range wb.SheetNames() {
		if n == name {
			return true
		}
	}
	return false
}

// ---------------------- xlsx ----------------------

type xlsxWorkbook struct {
	f *excelize.File
}

func openXLSX(data []byte) (*xlsxWorkbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{f: f}, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Rows reads raw cell values so numeric ids and date serials are not
// rewritten by the cell number format.
func (w *xlsxWorkbook) Rows(sheet string) ([][]string, error) {
	if idx, err := w.f.GetSheetIndex(sheet); err != nil || idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	return w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
}

func (w *xlsxWorkbook) Values(sheet string) ([][]interface{}, error) {
	rows, err := w.Rows(sheet)
	if err != nil {
		return nil, err
	}
	out := make([][]interface{}, len(rows))
	for r, row := range rows {
		vals := make([]interface{}, len(row))
		for c, raw := range row {
			if raw == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			typ, err := w.f.GetCellType(sheet, cell)
			if err != nil {
				return nil, err
			}
			vals[c] = xlsxValue(typ, raw)
		}
		out[r] = vals
	}
	return out, nil
}

// xlsxValue keeps text cells as text, even when they look numeric.
func xlsxValue(typ excelize.CellType, raw string) interface{} {
	switch typ {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "TRUE")
	}
	return raw
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}

// ---------------------- xls ----------------------

type xlsWorkbook struct {
	names  []string
	rows   map[string][][]string
	values map[string][][]interface{}
}

// openXLS reads every sheet eagerly; the legacy reader keeps no handle to release.
func openXLS(data []byte) (*xlsWorkbook, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	wb := &xlsWorkbook{
		rows:   make(map[string][][]string),
		values: make(map[string][][]interface{}),
	}
	for i := 0; i < workbook.GetNumberSheets(); i++ {
		sheet, err := workbook.GetSheet(i)
		if err != nil || sheet == nil {
			continue
		}
		name := sheet.GetName()
		var allRows [][]string
		var allValues [][]interface{}
		for _, row := range sheet.GetRows() {
			var cells []string
			var vals []interface{}
			for _, cell := range row.GetCols() {
				if cell == nil {
					cells = append(cells, "")
					vals = append(vals, nil)
					continue
				}
				cells = append(cells, cell.GetString())
				vals = append(vals, xlsValue(cell))
			}
			allRows = append(allRows, cells)
			allValues = append(allValues, vals)
		}
		wb.names = append(wb.names, name)
		wb.rows[name] = allRows
		wb.values[name] = allValues
	}
	if len(wb.names) == 0 {
		return nil, errors.New("o arquivo .xls não contém planilhas")
	}
	return wb, nil
}

func (w *xlsWorkbook) SheetNames() []string {
	return w.names
}

func (w *xlsWorkbook) Rows(sheet string) ([][]string, error) {
	rows, ok := w.rows[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	return rows, nil
}

func (w *xlsWorkbook) Values(sheet string) ([][]interface{}, error) {
	vals, ok := w.values[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	return vals, nil
}

// xlsValue maps the BIFF record of a cell to its value: number records
// (NUMBER, RK, MULRK) become float64, blanks nil, everything else text.
func xlsValue(cell structure.CellData) interface{} {
	switch cell.GetType() {
	case "*record.Number", "*record.Rk":
		return cell.GetFloat64()
	case "*record.Blank", "*record.FakeBlank":
		return nil
	}
	if s := cell.GetString(); s != "" {
		return s
	}
	return nil
}

func (w *xlsWorkbook) Close() error {
	return nil
}
