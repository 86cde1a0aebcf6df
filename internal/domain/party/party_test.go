package party

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParty(t *testing.T) {
	companyID := uuid.New()

	p, err := NewSupplier(companyID, "SUP/001", "Precision Tools Co")
	require.NoError(t, err)

	assert.Equal(t, KindSupplier, p.Kind)
	assert.Equal(t, "SUP/001", p.Code)
	assert.Equal(t, "Precision Tools Co", p.Name)
	assert.Equal(t, companyID, p.CompanyID)
	assert.True(t, p.IsSupplier())
	assert.False(t, p.IsBuyer())
	assert.True(t, p.CreditLimit.IsZero())
}

func TestNewParty_Buyer(t *testing.T) {
	p, err := NewBuyer(uuid.New(), "BUY/014", "Acme Fabricators")
	require.NoError(t, err)

	assert.Equal(t, KindBuyer, p.Kind)
	assert.True(t, p.IsBuyer())
}

func TestNewParty_Validation(t *testing.T) {
	companyID := uuid.New()

	_, err := NewParty(companyID, Kind("vendor"), "SUP/001", "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_KIND")

	_, err = NewSupplier(companyID, "", "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_CODE")

	_, err = NewSupplier(companyID, "SUP/001", "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_NAME")
}

func TestParty_SetCreditTerms(t *testing.T) {
	p, err := NewSupplier(uuid.New(), "SUP/001", "Precision Tools Co")
	require.NoError(t, err)

	require.NoError(t, p.SetCreditTerms(decimal.NewFromInt(500000), 45))
	assert.Equal(t, 45, p.CreditPeriod)
	assert.True(t, p.HasCreditTerms())

	err = p.SetCreditTerms(decimal.NewFromInt(-1), 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_CREDIT_LIMIT")

	err = p.SetCreditTerms(decimal.Zero, 400)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_CREDIT_PERIOD")
}

func TestParty_SetStatutoryIDs(t *testing.T) {
	p, err := NewBuyer(uuid.New(), "BUY/001", "Acme")
	require.NoError(t, err)

	require.NoError(t, p.SetStatutoryIDs("27aabcu9603r1zm", "aabcu9603r", "L17110MH1973PLC019786", "UDYAM-MH-18-0012345"))
	assert.Equal(t, "27AABCU9603R1ZM", p.GSTIN)
	assert.Equal(t, "AABCU9603R", p.PAN)
	assert.Equal(t, "UDYAM-MH-18-0012345", p.MSMEID)

	err = p.SetStatutoryIDs("27AABCU9603R1ZM5", "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_GSTIN")
}

func TestParty_SetContact(t *testing.T) {
	p, err := NewSupplier(uuid.New(), "SUP/002", "Precision Tools Co")
	require.NoError(t, err)

	require.NoError(t, p.SetContact("Mr. Anil Kumar", "+91 9876543210", "anil@precision.in", "https://precision.in"))
	assert.Equal(t, "Mr. Anil Kumar", p.ContactPerson)

	err = p.SetContact("", "", "not-an-email", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_EMAIL")
}
