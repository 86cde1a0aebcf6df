package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(100), INR)
	require.NoError(t, err)
	assert.Equal(t, INR, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))

	_, err = NewMoney(decimal.NewFromInt(100), "")
	assert.Error(t, err)
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("123.45", INR)
	require.NoError(t, err)
	assert.Equal(t, "123.45", m.Amount().StringFixed(2))

	_, err = NewMoneyFromString("not-a-number", INR)
	assert.Error(t, err)
}

func TestMoney_Add(t *testing.T) {
	a := NewMoneyINRFromFloat(280.00)
	b := NewMoneyINRFromFloat(120.50)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "400.50", sum.Amount().StringFixed(2))

	usd, _ := NewMoney(decimal.NewFromInt(1), USD)
	_, err = a.Add(usd)
	assert.Error(t, err)
}

func TestMoney_Subtract(t *testing.T) {
	a := NewMoneyINRFromFloat(300)
	b := NewMoneyINRFromFloat(20)

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "280.00", diff.Amount().StringFixed(2))
}

func TestMoney_Multiply(t *testing.T) {
	m := NewMoneyINRFromFloat(400.50)
	tax := m.Multiply(decimal.NewFromFloat(0.09))
	assert.Equal(t, "36.045", tax.Amount().String())
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroINR().IsZero())
	assert.True(t, NewMoneyINRFromFloat(1).IsPositive())
	assert.True(t, NewMoneyINRFromFloat(-1).IsNegative())
}

func TestMoney_Equals(t *testing.T) {
	a := NewMoneyINRFromFloat(10)
	b := NewMoneyINR(decimal.NewFromInt(10))
	assert.True(t, a.Equals(b))

	usd, _ := NewMoney(decimal.NewFromInt(10), USD)
	assert.False(t, a.Equals(usd))
}

func TestMoney_String(t *testing.T) {
	m := NewMoneyINRFromFloat(472.59)
	assert.Equal(t, "INR 472.59", m.String())
}
