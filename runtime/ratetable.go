package runtime

import (
	"fmt"
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

// RateMap tracks the conversion rate from a source currency to each target currency
type RateMap map[string]map[string]decimal.Decimal

// NewRateMap creates a new empty RateMap
func NewRateMap() RateMap {
	return make(RateMap)
}

// SetRate sets the exact rate for a source/target pair (replacing any existing value)
func (rm RateMap) SetRate(source, target string, rate decimal.Decimal) {
	if rm[source] == nil {
		rm[source] = make(map[string]decimal.Decimal)
	}
	rm[source][target] = rate
}

// GetRate returns the rate for a source/target pair
func (rm RateMap) GetRate(source, target string) (rate decimal.Decimal, ok bool) {
	if rm[source] == nil {
		return
	}
	rate, ok = rm[source][target]
	return
}

// RateTable is the immutable conversion matrix built from a currency table.
// Rows are source currencies, columns are target currencies.
type RateTable struct {
	columns []string
	rows    []string
	rates   RateMap
}

// NewRateTable builds the conversion matrix.  A nil statement yields an empty
// table in which every cast and conversion fails.
func NewRateTable(stmt *TableStmt) (*RateTable, error) {
	t := &RateTable{rates: NewRateMap()}
	if stmt == nil {
		return t, nil
	}
	for _, col := range stmt.Columns {
		if slices.Contains(t.columns, col.Name) {
			return nil, errorf(col.Pos(), ErrMalformedTable, "duplicate column '%s'", col.Name)
		}
		t.columns = append(t.columns, col.Name)
	}
	for _, row := range stmt.Rows {
		source := row.Currency.Name
		if slices.Contains(t.rows, source) {
			return nil, errorf(row.Pos(), ErrMalformedTable, "duplicate row '%s'", source)
		}
		if len(row.Rates) != len(t.columns) {
			return nil, errorf(row.Pos(), ErrMalformedTable, "row '%s' has %d rates for %d columns", source, len(row.Rates), len(t.columns))
		}
		t.rows = append(t.rows, source)
		t.rates[source] = make(map[string]decimal.Decimal, len(t.columns))
		for i, lit := range row.Rates {
			rate, err := rateFromLiteral(lit)
			if err != nil {
				return nil, err
			}
			t.rates.SetRate(source, t.columns[i], rate)
		}
	}
	return t, nil
}

func rateFromLiteral(lit *LiteralExpr) (decimal.Decimal, error) {
	switch lit.Value.Type {
	case TypeInt:
		return decimal.NewFromInt(lit.Value.IntVal()), nil
	case TypeFloat:
		f := lit.Value.FloatVal()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return decimal.Zero, errorf(lit.Pos(), ErrMalformedTable, "rate %s is not finite", lit.Value)
		}
		return decimal.NewFromFloat(f), nil
	}
	return decimal.Zero, errorf(lit.Pos(), ErrMalformedTable, "rate must be a number, found %s", lit.Value.Type)
}

// Columns returns the target currencies in table order.
func (t *RateTable) Columns() []string {
	return slices.Clone(t.columns)
}

// Rows returns the source currencies in table order.
func (t *RateTable) Rows() []string {
	return slices.Clone(t.rows)
}

// IsKnownCurrencyName is true if name appears on either axis of the table.
func (t *RateTable) IsKnownCurrencyName(name string) bool {
	return slices.Contains(t.rows, name) || slices.Contains(t.columns, name)
}

// Resolve returns the rate to convert source into target.  A source that is not
// a row fails with ErrVariableDoesNotExist, a target that is not a column of that
// row fails with ErrInvalidCurrencyName.
func (t *RateTable) Resolve(source, target string) (decimal.Decimal, error) {
	if !slices.Contains(t.rows, source) {
		return decimal.Zero, fmt.Errorf("%w: currency '%s' has no row in the currency table", ErrVariableDoesNotExist, source)
	}
	rate, ok := t.rates.GetRate(source, target)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no rate from '%s' to '%s'", ErrInvalidCurrencyName, source, target)
	}
	return rate, nil
}

// Convert converts an amount of currency into target.
func (t *RateTable) Convert(c Currency, target string) (Currency, error) {
	rate, err := t.Resolve(c.Name, target)
	if err != nil {
		return Currency{}, err
	}
	return Currency{Amount: c.Amount.Mul(rate), Name: target}, nil
}
