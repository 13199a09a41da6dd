package bulkorder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bulk-order-service/internal/domain"
)

// ErrInvalidDate indica data de transação ausente ou ilegível.
var ErrInvalidDate = errors.New("data de transação inválida")

// DisplayDateLayout is the DD/MM/YYYY format used in the output sheets.
const DisplayDateLayout = "02/01/2006"

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02/01/2006",
	"02/01/2006 15:04:05",
	"2/1/2006",
	"02-01-2006",
}

// ParseTransactionDate accepts ISO dates, day-first dates and Excel serial numbers.
func ParseTransactionDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: valor vazio", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 1 && f < 2958466 {
		return excelSerialToDate(f), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

func excelSerialToDate(serial float64) time.Time {
	// base Excel serial -> 1899-12-30
	base := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	frac := serial - float64(int64(serial))
	duration := time.Duration(int64(serial)*24) * time.Hour
	duration += time.Duration(frac * 24 * float64(time.Hour))
	return base.Add(duration)
}

// DeriveDates reformats each transaction date and computes the created date
// offsetDays earlier. The first unparseable date aborts the run.
func DeriveDates(txs []domain.TransactionRow, offsetDays int) error {
	for i := range txs {
		t, err := ParseTransactionDate(txs[i].RawDate)
		if err != nil {
			return fmt.Errorf("transação %d, comprovante %q (%s): %w", i+1, txs[i].Invoice, domain.ColDate, err)
		}
		txs[i].Date = t.Format(DisplayDateLayout)
		txs[i].CreatedAt = t.AddDate(0, 0, -offsetDays).Format(DisplayDateLayout)
	}
	return nil
}
