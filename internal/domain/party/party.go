package party

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizrecords/backend/internal/domain/shared"
)

// Kind distinguishes the two party ledgers. Suppliers source purchase
// orders; buyers receive sale documents. Codes are assigned from
// independent per-company sequences.
type Kind string

const (
	KindSupplier Kind = "supplier"
	KindBuyer    Kind = "buyer"
)

// Party represents a supplier or buyer that the company trades with.
// It is the aggregate root for party-related operations.
type Party struct {
	shared.CompanyAggregateRoot
	Kind          Kind
	Code          string // assigned once at creation, never changes
	Name          string
	Address       string
	ContactNumber string
	ContactPerson string
	Email         string
	Website       string
	GSTIN         string
	PAN           string
	CIN           string
	MSMEID        string
	CreditLimit   decimal.Decimal
	CreditPeriod  int // days
}

// NewParty creates a new party with required fields. The code comes from
// the caller, which obtains it from the document sequence service.
func NewParty(companyID uuid.UUID, kind Kind, code, name string) (*Party, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := validatePartyCode(code); err != nil {
		return nil, err
	}
	if err := validatePartyName(name); err != nil {
		return nil, err
	}

	return &Party{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Kind:                 kind,
		Code:                 code,
		Name:                 name,
		CreditLimit:          decimal.Zero,
		CreditPeriod:         0,
	}, nil
}

// NewSupplier creates a new supplier party
func NewSupplier(companyID uuid.UUID, code, name string) (*Party, error) {
	return NewParty(companyID, KindSupplier, code, name)
}

// NewBuyer creates a new buyer party
func NewBuyer(companyID uuid.UUID, code, name string) (*Party, error) {
	return NewParty(companyID, KindBuyer, code, name)
}

// Update updates the party's name
func (p *Party) Update(name string) error {
	if err := validatePartyName(name); err != nil {
		return err
	}

	p.Name = name
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetContact sets the party's contact information
func (p *Party) SetContact(contactPerson, contactNumber, email, website string) error {
	if contactPerson != "" && len(contactPerson) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_PERSON", "Contact person cannot exceed 100 characters")
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	p.ContactPerson = contactPerson
	p.ContactNumber = contactNumber
	p.Email = email
	p.Website = website
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetAddress sets the party's address
func (p *Party) SetAddress(address string) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	p.Address = address
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetStatutoryIDs sets the party's registration identifiers
func (p *Party) SetStatutoryIDs(gstin, pan, cin, msmeID string) error {
	if gstin != "" && len(gstin) > 15 {
		return shared.NewDomainError("INVALID_GSTIN", "GSTIN cannot exceed 15 characters")
	}
	if pan != "" && len(pan) > 10 {
		return shared.NewDomainError("INVALID_PAN", "PAN cannot exceed 10 characters")
	}

	p.GSTIN = strings.ToUpper(gstin)
	p.PAN = strings.ToUpper(pan)
	p.CIN = strings.ToUpper(cin)
	p.MSMEID = msmeID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCreditTerms sets the party's credit limit and period
func (p *Party) SetCreditTerms(creditLimit decimal.Decimal, creditPeriod int) error {
	if creditLimit.IsNegative() {
		return shared.NewDomainError("INVALID_CREDIT_LIMIT", "Credit limit cannot be negative")
	}
	if creditPeriod < 0 {
		return shared.NewDomainError("INVALID_CREDIT_PERIOD", "Credit period cannot be negative")
	}
	if creditPeriod > 365 {
		return shared.NewDomainError("INVALID_CREDIT_PERIOD", "Credit period cannot exceed 365 days")
	}

	p.CreditLimit = creditLimit
	p.CreditPeriod = creditPeriod
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsSupplier returns true if the party is a supplier
func (p *Party) IsSupplier() bool {
	return p.Kind == KindSupplier
}

// IsBuyer returns true if the party is a buyer
func (p *Party) IsBuyer() bool {
	return p.Kind == KindBuyer
}

// HasCreditTerms returns true if credit terms are configured
func (p *Party) HasCreditTerms() bool {
	return p.CreditPeriod > 0 || p.CreditLimit.GreaterThan(decimal.Zero)
}

// Validation functions

func validateKind(k Kind) error {
	switch k {
	case KindSupplier, KindBuyer:
		return nil
	default:
		return shared.NewDomainError("INVALID_KIND", "Party kind must be supplier or buyer")
	}
}

func validatePartyCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Party code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Party code cannot exceed 50 characters")
	}
	return nil
}

func validatePartyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Party name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Party name cannot exceed 200 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
