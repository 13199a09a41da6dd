package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvWorkbook exposes a CSV export as a single-sheet workbook named after the file.
type csvWorkbook struct {
	name string
	rows [][]string
}

func openCSV(name string, data []byte) (*csvWorkbook, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var text []byte
	if utf8.Valid(data) {
		text = data
	} else {
		// exports from the ERP come in Latin-1
		decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, name, err)
		}
		text = decoded
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, name, err)
	}

	sheet := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return &csvWorkbook{name: sheet, rows: records}, nil
}

// sniffDelimiter picks ';' or ',' based on the header line.
func sniffDelimiter(text []byte) rune {
	line := text
	if i := bytes.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func (w *csvWorkbook) SheetNames() []string {
	return []string{w.name}
}

func (w *csvWorkbook) Rows(sheet string) ([][]string, error) {
	if sheet != w.name {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	return w.rows, nil
}

// Values returns the CSV cells as text; the format carries no cell types.
func (w *csvWorkbook) Values(sheet string) ([][]interface{}, error) {
	rows, err := w.Rows(sheet)
	if err != nil {
		return nil, err
	}
	out := make([][]interface{}, len(rows))
	for r, row := range rows {
		vals := make([]interface{}, len(row))
		for c, v := range row {
			if v != "" {
				vals[c] = v
			}
		}
		out[r] = vals
	}
	return out, nil
}

func (w *csvWorkbook) Close() error {
	return nil
}
