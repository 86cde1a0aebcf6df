package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/bizrecords/backend/internal/application/catalog"
	companyapp "github.com/bizrecords/backend/internal/application/company"
	partyapp "github.com/bizrecords/backend/internal/application/party"
	procurementapp "github.com/bizrecords/backend/internal/application/procurement"
	"github.com/bizrecords/backend/internal/domain/catalog"
	"github.com/bizrecords/backend/internal/domain/party"
	"github.com/bizrecords/backend/internal/domain/shared"
	"github.com/bizrecords/backend/internal/infrastructure/cache"
	"github.com/bizrecords/backend/internal/infrastructure/persistence"
)

// TestPurchaseOrderFlow_Integration drives the full record-keeping flow
// against a real PostgreSQL database: company, supplier, catalog items,
// then a purchase order with server-side numbering and tax totals.
func TestPurchaseOrderFlow_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	ctx := context.Background()

	companyRepo := persistence.NewGormCompanyRepository(testDB.DB)
	partyRepo := persistence.NewGormPartyRepository(testDB.DB)
	itemRepo := persistence.NewGormItemRepository(testDB.DB)
	orderRepo := persistence.NewGormPurchaseOrderRepository(testDB.DB)
	sequenceRepo := persistence.NewGormSequenceRepository(testDB.DB)

	idempotencyStore := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() { _ = idempotencyStore.Close() })

	companyService := companyapp.NewService(companyRepo)
	partyService := partyapp.NewService(partyRepo, sequenceRepo)
	itemService := catalogapp.NewService(itemRepo, sequenceRepo)
	orderService := procurementapp.NewService(
		orderRepo, companyRepo, partyRepo, sequenceRepo,
		idempotencyStore, time.Hour, nil)

	comp, err := companyService.Create(ctx, companyapp.CreateCompanyRequest{
		Name:    "Wasco Engineering Works",
		Code:    "WASCO",
		Address: "Plot 14, MIDC Industrial Area, Pune",
		GSTIN:   "27AABCW1234A1Z5",
		PAN:     "AABCW1234A",
	})
	require.NoError(t, err)

	supplier, err := partyService.Create(ctx, comp.ID, party.KindSupplier, partyapp.CreatePartyRequest{
		Name:          "Precision Tools Pvt Ltd",
		Address:       "Bhosari, Pune",
		ContactPerson: "R. Kulkarni",
	})
	require.NoError(t, err)
	assert.Equal(t, "SUP/001", supplier.Code)

	second, err := partyService.Create(ctx, comp.ID, party.KindSupplier, partyapp.CreatePartyRequest{
		Name: "Sharp Abrasives",
	})
	require.NoError(t, err)
	assert.Equal(t, "SUP/002", second.Code)

	item, err := itemService.Create(ctx, comp.ID, catalog.KindPurchase, catalogapp.CreateItemRequest{
		Name: "HSS Drill Bit 12mm",
		UoM:  "Nos",
	})
	require.NoError(t, err)
	assert.Contains(t, item.Code, "ITM/001/")

	order, err := orderService.Create(ctx, comp.ID, procurementapp.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID,
		OrderDate:  "2026-08-15",
		Items: []procurementapp.CreateLineItemRequest{
			{
				Description: "HSS Drill Bit 12mm",
				Unit:        "Nos",
				Quantity:    procurementapp.LooseDecimal{Decimal: decimal.NewFromInt(5)},
				UnitRate:    procurementapp.LooseDecimal{Decimal: decimal.NewFromInt(291)},
			},
			{
				Description: "Grinding Wheel 150mm",
				Unit:        "Nos",
				Quantity:    procurementapp.LooseDecimal{Decimal: decimal.NewFromInt(2)},
				UnitRate:    procurementapp.LooseDecimal{Decimal: decimal.NewFromInt(500)},
			},
		},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "PO/WASCO/2026-27/0001", order.PONumber)
	assert.Equal(t, "Precision Tools Pvt Ltd", order.SupplierName)
	assert.Equal(t, "draft", order.Status)
	assert.True(t, order.BasicAmount.Equal(decimal.NewFromInt(2455)),
		"basic amount %s", order.BasicAmount)
	assert.True(t, order.GrandTotal.Equal(decimal.NewFromFloat(2896.9)),
		"grand total %s", order.GrandTotal)

	t.Run("round trip with line items", func(t *testing.T) {
		found, err := orderService.GetByID(ctx, comp.ID, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.PONumber, found.PONumber)
		require.Len(t, found.Items, 2)
		assert.Equal(t, 1, found.Items[0].Ordinal)
		assert.True(t, found.Items[0].Amount.Equal(decimal.NewFromInt(1455)))
	})

	t.Run("sequence advances per order", func(t *testing.T) {
		next, err := orderService.Create(ctx, comp.ID, procurementapp.CreatePurchaseOrderRequest{
			SupplierID: supplier.ID,
			OrderDate:  "2026-08-20",
			Items: []procurementapp.CreateLineItemRequest{
				{
					Description: "Cutting Oil 5L",
					Quantity:    procurementapp.LooseDecimal{Decimal: decimal.NewFromInt(1)},
					UnitRate:    procurementapp.LooseDecimal{Decimal: decimal.NewFromInt(850)},
				},
			},
		}, "")
		require.NoError(t, err)
		assert.Equal(t, "PO/WASCO/2026-27/0002", next.PONumber)
	})

	t.Run("idempotent create replays first order", func(t *testing.T) {
		req := procurementapp.CreatePurchaseOrderRequest{
			SupplierID: supplier.ID,
			OrderDate:  "2026-08-21",
			Items: []procurementapp.CreateLineItemRequest{
				{
					Description: "Welding Rods 3.15mm",
					Quantity:    procurementapp.LooseDecimal{Decimal: decimal.NewFromInt(10)},
					UnitRate:    procurementapp.LooseDecimal{Decimal: decimal.NewFromInt(120)},
				},
			},
		}

		first, err := orderService.Create(ctx, comp.ID, req, "submit-once")
		require.NoError(t, err)
		replay, err := orderService.Create(ctx, comp.ID, req, "submit-once")
		require.NoError(t, err)

		assert.Equal(t, first.ID, replay.ID)
		assert.Equal(t, first.PONumber, replay.PONumber)

		_, total, err := orderService.List(ctx, comp.ID, procurementapp.PurchaseOrderListFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("delete removes draft and its lines", func(t *testing.T) {
		err := orderService.Delete(ctx, comp.ID, order.ID)
		require.NoError(t, err)

		_, err = orderService.GetByID(ctx, comp.ID, order.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
