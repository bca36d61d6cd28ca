package rupeelogic

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of every amount the catalog was authored for.
const DefaultCurrency = "LKR"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a major unit value.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// LKR is a shortcut for M(value, "LKR").
func LKR[T float64 | int | int64 | decimal.Decimal](value T) Money { return M(value, DefaultCurrency) }

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.code()).Currency()
}

func (m Money) code() string {
	if m.cur == "" {
		return DefaultCurrency
	}
	return m.cur
}

// String returns the amount formatted with its currency symbol and grouping,
// rounded to the currency's minor unit.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string                { return m.code() }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// Lt and Gte compare against a plain major-unit threshold, which is how the
// rule conditions are authored.
func (m Money) Lt(v int64) bool  { return m.value.LessThan(decimal.NewFromInt(v)) }
func (m Money) Gte(v int64) bool { return m.value.GreaterThanOrEqual(decimal.NewFromInt(v)) }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Times multiplies by an integer factor.
func (m Money) Times(n int64) Money { return Money{value: m.value.Mul(decimal.NewFromInt(n)), cur: m.cur} }

// Share returns percent% of m.
func (m Money) Share(percent int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100)), cur: m.cur}
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

type jsonMoney struct {
	Currency string          `json:"currency,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMoney{Currency: m.cur, Amount: m.value.Round(int32(m.currency().Fraction))})
}

// UnmarshalJSON accepts either {"currency": "LKR", "amount": 1000} or a bare number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v jsonMoney
	if err := json.Unmarshal(data, &v); err == nil {
		m.value, m.cur = v.Amount, v.Currency
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid money %s: %w", data, err)
	}
	m.value, m.cur = d, ""
	return nil
}
