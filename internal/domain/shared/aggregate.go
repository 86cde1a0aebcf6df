package shared

import (
	"github.com/google/uuid"
)

// BaseAggregateRoot adds an optimistic-locking version to BaseEntity.
// The version starts at 1 and every mutating method on an aggregate
// bumps it.
type BaseAggregateRoot struct {
	BaseEntity
	Version int
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// CompanyAggregateRoot extends BaseAggregateRoot with company scoping.
// Every master record and document in the system belongs to exactly one
// company; the active company is always passed in explicitly rather than
// read from ambient state.
type CompanyAggregateRoot struct {
	BaseAggregateRoot
	CompanyID uuid.UUID
}

// NewCompanyAggregateRoot creates a new company-scoped aggregate root
func NewCompanyAggregateRoot(companyID uuid.UUID) CompanyAggregateRoot {
	return CompanyAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		CompanyID:         companyID,
	}
}
