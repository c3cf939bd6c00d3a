package google

import (
	"fmt"
	"strconv"
	"strings"

	"contabilidad/internal/core"
)

// Header names expected in the first row of the movements sheet.
var columns = []string{"ID", "Title", "Amount", "Date", "Category"}

// RowError describes a data row that could not be turned into a movement.
type RowError struct {
	Row int // 1-based sheet row
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// parseMovements converts a values matrix (as returned by the Sheets API)
// into movements. The first row must hold the headers in any order. Bad rows
// are reported and skipped; a missing header fails the whole read.
func parseMovements(values [][]interface{}) ([]core.Movement, []RowError, error) {
	if len(values) == 0 {
		return nil, nil, nil
	}
	headers := toStrings(values[0])
	idx := make(map[string]int, len(columns))
	var missing []string
	for _, name := range columns {
		i := indexOf(headers, name)
		if i == -1 {
			missing = append(missing, name)
		}
		idx[name] = i
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("unexpected movements header: missing %s; got headers=%v", strings.Join(missing, ","), headers)
	}

	var (
		out     []core.Movement
		skipped []RowError
		seen    = map[int64]bool{}
	)
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		if isBlank(row) {
			continue
		}
		m, err := parseRow(values[i], row, idx)
		if err == nil && seen[m.ID] {
			err = fmt.Errorf("duplicate id %d", m.ID)
		}
		if err != nil {
			skipped = append(skipped, RowError{Row: i + 1, Err: err})
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out, skipped, nil
}

func parseRow(raw []interface{}, row []string, idx map[string]int) (core.Movement, error) {
	id, err := strconv.ParseInt(safeGet(row, idx["ID"]), 10, 64)
	if err != nil {
		return core.Movement{}, fmt.Errorf("id %q: %w", safeGet(row, idx["ID"]), core.ErrInvalidID)
	}
	amount, err := parseAmount(raw, row, idx["Amount"])
	if err != nil {
		return core.Movement{}, fmt.Errorf("amount %q: %w", safeGet(row, idx["Amount"]), err)
	}
	cat, err := core.ParseCategory(safeGet(row, idx["Category"]))
	if err != nil {
		return core.Movement{}, err
	}
	m := core.Movement{
		ID:       id,
		Title:    safeGet(row, idx["Title"]),
		Amount:   amount,
		Date:     safeGet(row, idx["Date"]),
		Category: cat,
	}
	if err := m.Validate(); err != nil {
		return core.Movement{}, err
	}
	return m, nil
}

// parseAmount prefers the numeric cell value returned with UNFORMATTED_VALUE
// and falls back to parsing the text, which accepts a comma separator.
func parseAmount(raw []interface{}, row []string, i int) (core.Money, error) {
	if i >= 0 && i < len(raw) {
		if v, ok := raw[i].(float64); ok {
			return core.MoneyFromFloat(v)
		}
	}
	cents, err := core.ParseDecimalToCents(safeGet(row, i))
	if err != nil {
		return core.Money{}, err
	}
	return core.Money{Cents: cents}, nil
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func indexOf(arr []string, target string) int {
	for i, v := range arr {
		if strings.EqualFold(v, target) {
			return i
		}
	}
	return -1
}

func safeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}

func isBlank(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
