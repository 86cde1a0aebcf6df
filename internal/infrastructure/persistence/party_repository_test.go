package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bizrecords/backend/internal/domain/party"
	"github.com/bizrecords/backend/internal/domain/shared"
)

func newMockPartyRepository(t *testing.T) (*GormPartyRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormPartyRepository(gormDB), mock, mockDB
}

func partyRows(id, companyID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "version", "company_id",
		"kind", "code", "name", "address", "gstin", "credit_period",
	}).AddRow(
		id, now, now, 1, companyID,
		"supplier", "SUP/001", "Apex Industrial Supplies", "Plot 14, MIDC, Pune", "27AAACA1234F1Z5", 30,
	)
}

func TestGormPartyRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, mockDB := newMockPartyRepository(t)
		defer mockDB.Close()

		companyID := uuid.New()
		partyID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "parties" WHERE company_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(companyID, partyID, 1).
			WillReturnRows(partyRows(partyID, companyID))

		found, err := repo.FindByID(context.Background(), companyID, partyID)
		require.NoError(t, err)
		assert.Equal(t, partyID, found.ID)
		assert.Equal(t, companyID, found.CompanyID)
		assert.Equal(t, party.KindSupplier, found.Kind)
		assert.Equal(t, "SUP/001", found.Code)
		assert.Equal(t, "Apex Industrial Supplies", found.Name)
		assert.Equal(t, 30, found.CreditPeriod)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, mockDB := newMockPartyRepository(t)
		defer mockDB.Close()

		companyID := uuid.New()
		partyID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "parties"`).
			WithArgs(companyID, partyID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), companyID, partyID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormPartyRepository_FindByCode(t *testing.T) {
	repo, mock, mockDB := newMockPartyRepository(t)
	defer mockDB.Close()

	companyID := uuid.New()
	partyID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "parties" WHERE company_id = \$1 AND code = \$2 ORDER BY .* LIMIT .*`).
		WithArgs(companyID, "SUP/001", 1).
		WillReturnRows(partyRows(partyID, companyID))

	found, err := repo.FindByCode(context.Background(), companyID, "SUP/001")
	require.NoError(t, err)
	assert.Equal(t, partyID, found.ID)
	assert.Equal(t, "SUP/001", found.Code)
}

func TestGormPartyRepository_FindAll(t *testing.T) {
	repo, mock, mockDB := newMockPartyRepository(t)
	defer mockDB.Close()

	companyID := uuid.New()
	partyID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "parties" WHERE company_id = \$1 AND kind = \$2`).
		WithArgs(companyID, "supplier").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM "parties" WHERE company_id = \$1 AND kind = \$2 ORDER BY created_at desc LIMIT .*`).
		WithArgs(companyID, "supplier", 20).
		WillReturnRows(partyRows(partyID, companyID))

	parties, total, err := repo.FindAll(context.Background(), companyID, party.KindSupplier, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, parties, 1)
	assert.Equal(t, "SUP/001", parties[0].Code)
}

func TestGormPartyRepository_Delete(t *testing.T) {
	t.Run("deletes existing party", func(t *testing.T) {
		repo, mock, mockDB := newMockPartyRepository(t)
		defer mockDB.Close()

		companyID := uuid.New()
		partyID := uuid.New()

		mock.ExpectExec(`DELETE FROM "parties" WHERE company_id = \$1 AND id = \$2`).
			WithArgs(companyID, partyID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), companyID, partyID)
		assert.NoError(t, err)
	})

	t.Run("missing party returns not found", func(t *testing.T) {
		repo, mock, mockDB := newMockPartyRepository(t)
		defer mockDB.Close()

		companyID := uuid.New()
		partyID := uuid.New()

		mock.ExpectExec(`DELETE FROM "parties"`).
			WithArgs(companyID, partyID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), companyID, partyID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormPartyRepository_CountByKind(t *testing.T) {
	repo, mock, mockDB := newMockPartyRepository(t)
	defer mockDB.Close()

	companyID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "parties" WHERE company_id = \$1 AND kind = \$2`).
		WithArgs(companyID, "buyer").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByKind(context.Background(), companyID, party.KindBuyer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
