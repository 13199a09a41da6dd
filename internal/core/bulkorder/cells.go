package bulkorder

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var plainNumberRegex = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?$`)

// CellValue types a text-read transaction cell for the output sheet: plain numbers
// become numeric cells, blanks become empty cells, anything else stays text.
// Values with leading zeros or separators are kept as text.
func CellValue(raw string) interface{} {
	if raw == "" {
		return nil
	}
	if !plainNumberRegex.MatchString(raw) {
		return raw
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}
	if d.IsInteger() {
		if bi := d.BigInt(); bi.IsInt64() {
			return bi.Int64()
		}
		return raw
	}
	return d.InexactFloat64()
}

// textCell keeps derived strings as text; blanks become empty cells.
func textCell(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
