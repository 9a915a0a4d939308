// Package model defines database models and schema descriptors for the persistence layer.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Value coercion for rows scanned into generic maps. Drivers differ in the
// Go types they produce for the same column (postgres numeric arrives as
// string, sqlite may hand back float64; dates arrive as time.Time or as
// text), so entity conversion goes through these helpers.

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func rowString(r Row, col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func rowNullString(r Row, col string) *string {
	if r[col] == nil {
		return nil
	}
	s := rowString(r, col)
	return &s
}

func rowDecimal(r Row, col string) (decimal.Decimal, error) {
	switch v := r[col].(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return v, nil
	case string:
		return decimal.NewFromString(v)
	case []byte:
		return decimal.NewFromString(string(v))
	case float64:
		return decimal.NewFromFloat(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Zero, fmt.Errorf("column %s: cannot convert %T to decimal", col, v)
	}
}

func rowNullTime(r Row, col string) (*time.Time, error) {
	switch v := r[col].(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case *time.Time:
		return v, nil
	case string:
		return parseDate(col, v)
	case []byte:
		return parseDate(col, string(v))
	default:
		return nil, fmt.Errorf("column %s: cannot convert %T to time", col, v)
	}
}

func parseDate(col, s string) (*time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("column %s: unrecognized time format %q", col, s)
}
