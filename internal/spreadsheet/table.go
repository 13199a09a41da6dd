package spreadsheet

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/schollz/closestmatch"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrMissingColumns is returned when required columns are absent from a sheet header.
var ErrMissingColumns = errors.New("colunas obrigatórias ausentes")

// MissingColumnsError lists the required columns a sheet lacks and, when one
// exists, the closest header found for each.
type MissingColumnsError struct {
	Table       string
	Missing     []string
	Suggestions map[string]string
}

func (e *MissingColumnsError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, col := range e.Missing {
		if s, ok := e.Suggestions[col]; ok {
			parts = append(parts, fmt.Sprintf("%q (você quis dizer %q?)", col, s))
			continue
		}
		parts = append(parts, fmt.Sprintf("%q", col))
	}
	return fmt.Sprintf("%s: %s: %s", e.Table, ErrMissingColumns.Error(), strings.Join(parts, ", "))
}

func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}

// Sheet is a header row plus its data rows. Fully blank rows are dropped.
type Sheet struct {
	Header []string
	Rows   [][]string
}

// NewSheet uses the first row as header.
func NewSheet(rows [][]string) *Sheet {
	s := &Sheet{Rows: [][]string{}}
	if len(rows) == 0 {
		return s
	}
	s.Header = make([]string, len(rows[0]))
	for i, h := range rows[0] {
		s.Header[i] = strings.TrimSpace(h)
	}
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// SplitValues uses the first typed row as header and drops fully blank data rows.
func SplitValues(rows [][]interface{}) (header []string, data [][]interface{}) {
	data = [][]interface{}{}
	if len(rows) == 0 {
		return nil, data
	}
	header = make([]string, len(rows[0]))
	for i, v := range rows[0] {
		if v != nil {
			header[i] = strings.TrimSpace(fmt.Sprint(v))
		}
	}
	for _, row := range rows[1:] {
		if isBlankValues(row) {
			continue
		}
		data = append(data, row)
	}
	return header, data
}

func isBlankValues(row []interface{}) bool {
	for _, v := range row {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		if v != nil {
			return false
		}
	}
	return true
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Cell returns the value at idx, or "" when the row is shorter.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Resolve maps each required column to its index in the header. Headers are
// matched exactly first, then after NormalizeHeader.
func (s *Sheet) Resolve(table string, required []string) (map[string]int, error) {
	exact := make(map[string]int, len(s.Header))
	normalized := make(map[string]int, len(s.Header))
	for i, h := range s.Header {
		if _, ok := exact[h]; !ok {
			exact[h] = i
		}
		key := NormalizeHeader(h)
		if _, ok := normalized[key]; !ok && key != "" {
			normalized[key] = i
		}
	}

	idx := make(map[string]int, len(required))
	var missing []string
	for _, col := range required {
		if i, ok := exact[col]; ok {
			idx[col] = i
			continue
		}
		if i, ok := normalized[NormalizeHeader(col)]; ok {
			idx[col] = i
			continue
		}
		missing = append(missing, col)
	}
	if len(missing) == 0 {
		return idx, nil
	}

	return nil, &MissingColumnsError{
		Table:       table,
		Missing:     missing,
		Suggestions: s.suggest(missing, normalized),
	}
}

func (s *Sheet) suggest(missing []string, normalized map[string]int) map[string]string {
	suggestions := make(map[string]string)
	if len(normalized) == 0 {
		return suggestions
	}
	keys := make([]string, 0, len(normalized))
	for k := range normalized {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cm := closestmatch.New(keys, []int{2, 3})
	for _, col := range missing {
		if match := cm.Closest(NormalizeHeader(col)); match != "" {
			suggestions[col] = s.Header[normalized[match]]
		}
	}
	return suggestions
}

var nonAlphanumericRegex = regexp.MustCompile(`[^A-Z0-9 ]+`)
var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeHeader strips accents, uppercases and collapses punctuation and
// whitespace, so "Art_Cantidad " and "art cantidad" compare equal.
func NormalizeHeader(str string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	result, _, _ := transform.String(t, str)
	result = strings.ToUpper(result)
	result = nonAlphanumericRegex.ReplaceAllString(result, " ")
	result = whitespaceRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
