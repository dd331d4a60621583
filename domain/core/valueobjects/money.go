package valueobjects

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Every backend stores amounts as numeric(12,2).
const (
	MoneyScale         = 2
	MoneyIntegerDigits = 10
)

var moneyLimit = decimal.New(1, MoneyIntegerDigits)

// Money is an exact currency amount. It never passes through float64 on the
// way to or from storage.
type Money struct {
	decimal.Decimal
}

// NewMoney parses a decimal string such as "1500.00".
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{Decimal: d}, nil
}

// MustMoney is NewMoney for literals known to be valid.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyPtr is a convenience for optional money fields.
func MoneyPtr(s string) *Money {
	m := MustMoney(s)
	return &m
}

// Storable reports whether m has at most MoneyScale fractional digits and
// MoneyIntegerDigits integer digits, so every backend reads back exactly m.
func (m Money) Storable() bool {
	return m.Decimal.Equal(m.Decimal.Round(MoneyScale)) && m.Decimal.Abs().LessThan(moneyLimit)
}

// Equal compares amounts numerically: 1500 equals 1500.00.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// String renders at least two fractional digits and never drops precision.
func (m Money) String() string {
	if m.Decimal.Equal(m.Decimal.Round(2)) {
		return m.Decimal.StringFixed(2)
	}
	return m.Decimal.String()
}

// MarshalJSON renders the amount as a JSON string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare numbers without float rounding.
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	return m.Decimal.UnmarshalJSON(data)
}

// MarshalDynamoDBAttributeValue stores the amount as an exact N attribute.
func (m Money) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: m.Decimal.String()}, nil
}

// UnmarshalDynamoDBAttributeValue accepts N and S attributes.
func (m *Money) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		return m.parse(v.Value)
	case *types.AttributeValueMemberS:
		return m.parse(v.Value)
	case *types.AttributeValueMemberNULL:
		return nil
	default:
		return fmt.Errorf("unsupported attribute type %T for money", av)
	}
}

func (m *Money) parse(s string) error {
	parsed, err := NewMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
