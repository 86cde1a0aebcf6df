package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bizrecords/backend/internal/domain/catalog"
	"github.com/bizrecords/backend/internal/domain/shared"
)

// MockItemRepository is a mock implementation of catalog.Repository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*catalog.Item, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindAll(ctx context.Context, companyID uuid.UUID, kind catalog.Kind, filter shared.Filter) ([]*catalog.Item, int64, error) {
	args := m.Called(ctx, companyID, kind, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*catalog.Item), args.Get(1).(int64), args.Error(2)
}

func (m *MockItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockItemRepository) CountByKind(ctx context.Context, companyID uuid.UUID, kind catalog.Kind) (int64, error) {
	args := m.Called(ctx, companyID, kind)
	return args.Get(0).(int64), args.Error(1)
}

// MockSequenceRepository is a mock implementation of sequence.Repository
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) Next(ctx context.Context, companyID uuid.UUID, key string) (int, error) {
	args := m.Called(ctx, companyID, key)
	return args.Int(0), args.Error(1)
}

func (m *MockSequenceRepository) Peek(ctx context.Context, companyID uuid.UUID, key string) (int, error) {
	args := m.Called(ctx, companyID, key)
	return args.Int(0), args.Error(1)
}

func TestService_Create(t *testing.T) {
	companyID := uuid.New()
	year := time.Now().Year()

	t.Run("sale item gets the next yearly ITM code", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		seqRepo := new(MockSequenceRepository)
		service := NewService(itemRepo, seqRepo)

		key := fmt.Sprintf("sale_item:%d", year)
		seqRepo.On("Next", mock.Anything, companyID, key).Return(12, nil)
		itemRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Item")).Return(nil)

		price := decimal.NewFromFloat(245.50)
		taxRate := decimal.NewFromFloat(0.18)
		resp, err := service.Create(context.Background(), companyID, catalog.KindSale, CreateItemRequest{
			Name:      "6205-2RS Deep Groove Bearing",
			ItemGroup: "Bearings",
			HSNCode:   "8482",
			UoM:       "Nos",
			Price:     &price,
			TaxRate:   &taxRate,
		})
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("ITM/012/%d", year), resp.Code)
		assert.Equal(t, "sale", resp.Kind)
		assert.Equal(t, "8482", resp.HSNCode)
		assert.Equal(t, "Nos", resp.UoM)
		assert.True(t, resp.Price.Equal(price))
		assert.Equal(t, "INR", resp.Currency)
		itemRepo.AssertExpectations(t)
	})

	t.Run("purchase items count on their own sequence", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		seqRepo := new(MockSequenceRepository)
		service := NewService(itemRepo, seqRepo)

		key := fmt.Sprintf("purchase_item:%d", year)
		seqRepo.On("Next", mock.Anything, companyID, key).Return(1, nil)
		itemRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Item")).Return(nil)

		resp, err := service.Create(context.Background(), companyID, catalog.KindPurchase, CreateItemRequest{
			Name: "Hydraulic Seal Kit",
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("ITM/001/%d", year), resp.Code)
		assert.Equal(t, "purchase", resp.Kind)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		seqRepo := new(MockSequenceRepository)
		service := NewService(itemRepo, seqRepo)

		_, err := service.Create(context.Background(), companyID, catalog.Kind("rental"), CreateItemRequest{
			Name: "Anything",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_KIND", domainErr.Code)
		seqRepo.AssertNotCalled(t, "Next", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Update(t *testing.T) {
	companyID := uuid.New()

	t.Run("merges only provided fields and keeps the code", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		seqRepo := new(MockSequenceRepository)
		service := NewService(itemRepo, seqRepo)

		existing, err := catalog.NewItem(companyID, catalog.KindSale, "ITM/004/2026", "6205-2RS Deep Groove Bearing")
		require.NoError(t, err)
		require.NoError(t, existing.SetClassification("8482", "Nos"))

		itemRepo.On("FindByID", mock.Anything, companyID, existing.ID).Return(existing, nil)
		itemRepo.On("Save", mock.Anything, existing).Return(nil)

		newGroup := "Ball Bearings"
		resp, err := service.Update(context.Background(), companyID, existing.ID, UpdateItemRequest{
			ItemGroup: &newGroup,
		})
		require.NoError(t, err)

		assert.Equal(t, "ITM/004/2026", resp.Code)
		assert.Equal(t, "Ball Bearings", resp.ItemGroup)
		assert.Equal(t, "8482", resp.HSNCode)
		assert.Equal(t, "6205-2RS Deep Groove Bearing", resp.Name)
	})

	t.Run("missing item propagates not found", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		seqRepo := new(MockSequenceRepository)
		service := NewService(itemRepo, seqRepo)

		id := uuid.New()
		itemRepo.On("FindByID", mock.Anything, companyID, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(context.Background(), companyID, id, UpdateItemRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestService_List(t *testing.T) {
	companyID := uuid.New()
	itemRepo := new(MockItemRepository)
	seqRepo := new(MockSequenceRepository)
	service := NewService(itemRepo, seqRepo)

	a, err := catalog.NewItem(companyID, catalog.KindSale, "ITM/001/2026", "6205-2RS Bearing")
	require.NoError(t, err)
	b, err := catalog.NewItem(companyID, catalog.KindSale, "ITM/002/2026", "6305-ZZ Bearing")
	require.NoError(t, err)

	expected := shared.DefaultFilter()
	expected.Page = 2
	expected.PageSize = 10
	itemRepo.On("FindAll", mock.Anything, companyID, catalog.KindSale, expected).
		Return([]*catalog.Item{a, b}, int64(22), nil)

	items, total, err := service.List(context.Background(), companyID, catalog.KindSale, ItemListFilter{
		Page:     2,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(22), total)
	require.Len(t, items, 2)
	assert.Equal(t, "ITM/001/2026", items[0].Code)
}
