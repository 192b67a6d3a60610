package decl

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveTypeString(t *testing.T) {
	assert.Equal(t, "none", TypeNone.String())
	assert.Equal(t, "int", TypeInt.String())
	assert.Equal(t, "float", TypeFloat.String())
	assert.Equal(t, "string", TypeString.String())
	assert.Equal(t, "bool", TypeBool.String())
	assert.Equal(t, "currency", TypeCurrency.String())
	assert.False(t, PrimitiveType(42).IsValid())
}

func TestParsePrimitiveType(t *testing.T) {
	for _, typ := range []PrimitiveType{TypeNone, TypeInt, TypeFloat, TypeString, TypeBool, TypeCurrency} {
		parsed, err := ParsePrimitiveType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
	parsed, err := ParsePrimitiveType("VOID")
	require.NoError(t, err)
	assert.Equal(t, TypeNone, parsed)

	_, err = ParsePrimitiveType("money")
	assert.Error(t, err)
}

func TestNewValue(t *testing.T) {
	v, err := NewValue(TypeInt, 42)
	require.NoError(t, err)
	assert.Equal(t, TypeInt, v.Type)
	assert.Equal(t, int64(42), v.IntVal())

	v, err = NewValue(TypeFloat, float32(1.5))
	require.NoError(t, err)
	assert.Equal(t, 1.5, v.FloatVal())

	v, err = NewValue(TypeCurrency, Currency{Amount: decimal.NewFromInt(3), Name: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "USD", v.CurrencyVal().Name)

	v, err = NewValue(TypeNone, nil)
	require.NoError(t, err)
	assert.True(t, v.IsNone())

	// Mismatched payloads never produce a value
	_, err = NewValue(TypeInt, "42")
	assert.Error(t, err)
	_, err = NewValue(TypeString, 42)
	assert.Error(t, err)
	_, err = NewValue(TypeBool, 1)
	assert.Error(t, err)
	_, err = NewValue(TypeCurrency, Currency{Amount: decimal.NewFromInt(3)})
	assert.Error(t, err)
	_, err = NewValue(TypeNone, 0)
	assert.Error(t, err)
}

func TestValueGetters(t *testing.T) {
	i, err := IntValue(7).GetInt()
	require.NoError(t, err)
	assert.Equal(t, int64(7), i)

	_, err = IntValue(7).GetFloat()
	assert.Error(t, err)
	_, err = StringValue("x").GetBool()
	assert.Error(t, err)
	_, err = BoolValue(true).GetString()
	assert.Error(t, err)
	_, err = FloatValue(1).GetCurrency()
	assert.Error(t, err)

	c, err := CurrencyValue(decimal.RequireFromString("1.25"), "EUR").GetCurrency()
	require.NoError(t, err)
	assert.Equal(t, "EUR", c.Name)
	assert.True(t, c.Amount.Equal(decimal.RequireFromString("1.25")))
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{NoneValue(), "none"},
		{IntValue(-12), "-12"},
		{FloatValue(2.5), "2.5"},
		{FloatValue(3), "3.0"},
		{FloatValue(-0.25), "-0.25"},
		{StringValue("hello world"), "hello world"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{CurrencyValue(decimal.RequireFromString("9"), "EUR"), "9.00 EUR"},
		{CurrencyValue(decimal.RequireFromString("9.5"), "EUR"), "9.50 EUR"},
		{CurrencyValue(decimal.RequireFromString("0.125"), "USD"), "0.125 USD"},
		{CurrencyValue(decimal.RequireFromString("-4.10"), "PLN"), "-4.10 PLN"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestValueEquals(t *testing.T) {
	assert.True(t, IntValue(1).Equals(IntValue(1)))
	assert.False(t, IntValue(1).Equals(FloatValue(1)))
	assert.True(t, NoneValue().Equals(NoneValue()))
	assert.True(t, StringValue("a").Equals(StringValue("a")))

	nine := CurrencyValue(decimal.RequireFromString("9"), "EUR")
	assert.True(t, nine.Equals(CurrencyValue(decimal.RequireFromString("9.00"), "EUR")))
	assert.False(t, nine.Equals(CurrencyValue(decimal.RequireFromString("9"), "USD")))
	assert.False(t, nine.Equals(CurrencyValue(decimal.RequireFromString("9.01"), "EUR")))
}

func TestParseLiteral(t *testing.T) {
	v, err := ParseLiteral("INT", "123")
	require.NoError(t, err)
	assert.Equal(t, IntValue(123), v)

	v, err = ParseLiteral("FLOAT", "0.5")
	require.NoError(t, err)
	assert.Equal(t, FloatValue(0.5), v)

	v, err = ParseLiteral("BOOL", "false")
	require.NoError(t, err)
	assert.Equal(t, BoolValue(false), v)

	_, err = ParseLiteral("INT", "12x")
	assert.Error(t, err)
	_, err = ParseLiteral("CHAR", "c")
	assert.Error(t, err)
}
