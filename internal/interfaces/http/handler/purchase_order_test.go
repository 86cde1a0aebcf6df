package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	procurementapp "github.com/bizrecords/backend/internal/application/procurement"
	"github.com/bizrecords/backend/internal/domain/company"
	"github.com/bizrecords/backend/internal/domain/party"
	"github.com/bizrecords/backend/internal/domain/procurement"
	"github.com/bizrecords/backend/internal/domain/shared"
	"github.com/bizrecords/backend/internal/infrastructure/cache"
	"github.com/bizrecords/backend/internal/infrastructure/printing"
	"github.com/bizrecords/backend/internal/interfaces/http/dto"
	"github.com/bizrecords/backend/internal/interfaces/http/middleware"
)

// MockOrderRepository implements procurement.Repository for testing
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*procurement.PurchaseOrder, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) FindByNumber(ctx context.Context, companyID uuid.UUID, poNumber string) (*procurement.PurchaseOrder, error) {
	args := m.Called(ctx, companyID, poNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]*procurement.PurchaseOrder, int64, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*procurement.PurchaseOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *procurement.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

// MockCompanyRepository implements company.Repository for testing
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByCode(ctx context.Context, code string) (*company.Company, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context) ([]*company.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPartyRepository implements party.Repository for testing
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*party.Party, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*party.Party, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) FindAll(ctx context.Context, companyID uuid.UUID, kind party.Kind, filter shared.Filter) ([]*party.Party, int64, error) {
	args := m.Called(ctx, companyID, kind, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*party.Party), args.Get(1).(int64), args.Error(2)
}

func (m *MockPartyRepository) Save(ctx context.Context, p *party.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartyRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockPartyRepository) CountByKind(ctx context.Context, companyID uuid.UUID, kind party.Kind) (int64, error) {
	args := m.Called(ctx, companyID, kind)
	return args.Get(0).(int64), args.Error(1)
}

// MockSequenceRepository implements sequence.Repository for testing
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

type stubRenderer struct{}

func (stubRenderer) Render(ctx context.Context, req *printing.RenderRequest) (*printing.RenderResult, error) {
	return &printing.RenderResult{PDFData: []byte("%PDF-1.7 stub")}, nil
}

func (stubRenderer) Close() error { return nil }

type orderHandlerFixture struct {
	router    *gin.Engine
	orders    *MockOrderRepository
	companies *MockCompanyRepository
	parties   *MockPartyRepository
	sequences *MockSequenceRepository
	company   *company.Company
	supplier  *party.Party
}

func newOrderHandlerFixture(t *testing.T) *orderHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, err := company.NewCompany("Wasco Engineering", "WASCO")
	require.NoError(t, err)
	supplier, err := party.NewSupplier(c.ID, "SUP/001", "Apex Bearing Traders")
	require.NoError(t, err)

	f := &orderHandlerFixture{
		orders:    new(MockOrderRepository),
		companies: new(MockCompanyRepository),
		parties:   new(MockPartyRepository),
		sequences: new(MockSequenceRepository),
		company:   c,
		supplier:  supplier,
	}

	idempotencyStore := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() { _ = idempotencyStore.Close() })

	orderService := procurementapp.NewService(
		f.orders, f.companies, f.parties, f.sequences, idempotencyStore, time.Hour, nil)

	engine, err := printing.NewTemplateEngine()
	require.NoError(t, err)
	documentService := procurementapp.NewDocumentService(
		f.orders, f.companies, f.parties, engine, stubRenderer{}, nil, nil)

	h := NewPurchaseOrderHandler(orderService, documentService)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.CompanyContext())
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)
	f.router = r
	return f
}

func (f *orderHandlerFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.CompanyHeaderKey, f.company.ID.String())

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestPurchaseOrderHandler_Create(t *testing.T) {
	payload := func(supplierID uuid.UUID) gin.H {
		return gin.H{
			"supplier_id": supplierID,
			"order_date":  "2026-08-15",
			"items": []gin.H{
				{
					"description": "6205-2RS Deep Groove Bearing",
					"make":        "SKF",
					"unit":        "Nos",
					"quantity":    10,
					"unit_rate":   245.50,
				},
			},
		}
	}

	t.Run("valid order returns 201 with totals", func(t *testing.T) {
		f := newOrderHandlerFixture(t)
		f.companies.On("FindByID", mock.Anything, f.company.ID).Return(f.company, nil)
		f.parties.On("FindByID", mock.Anything, f.company.ID, f.supplier.ID).Return(f.supplier, nil)
		f.sequences.On("Next", mock.Anything, f.company.ID, "purchase_order:2026").Return(1, nil)
		f.orders.On("Save", mock.Anything, mock.Anything).Return(nil)

		w := f.do(http.MethodPost, "/api/v1/purchase-orders", payload(f.supplier.ID))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "PO/WASCO/2026-27/0001", data["po_number"])
		assert.Equal(t, "2455", data["basic_amount"])
		assert.Equal(t, "2896.9", data["grand_total"])
	})

	t.Run("missing company header returns 400", func(t *testing.T) {
		f := newOrderHandlerFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/purchase-orders", bytes.NewReader([]byte("{}")))
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown supplier returns 422 MISSING_PARTY", func(t *testing.T) {
		f := newOrderHandlerFixture(t)
		f.companies.On("FindByID", mock.Anything, f.company.ID).Return(f.company, nil)
		f.parties.On("FindByID", mock.Anything, f.company.ID, f.supplier.ID).Return(nil, shared.ErrNotFound)

		w := f.do(http.MethodPost, "/api/v1/purchase-orders", payload(f.supplier.ID))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeMissingParty, resp.Error.Code)
	})

	t.Run("order without items returns 422 EMPTY_LINE_ITEMS", func(t *testing.T) {
		f := newOrderHandlerFixture(t)

		f.companies.On("FindByID", mock.Anything, f.company.ID).Return(f.company, nil)
		f.parties.On("FindByID", mock.Anything, f.company.ID, f.supplier.ID).Return(f.supplier, nil)

		body := payload(f.supplier.ID)
		body["items"] = []gin.H{}
		w := f.do(http.MethodPost, "/api/v1/purchase-orders", body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeEmptyLineItems, resp.Error.Code)
	})

	t.Run("replayed idempotency key returns the original order", func(t *testing.T) {
		f := newOrderHandlerFixture(t)
		f.companies.On("FindByID", mock.Anything, f.company.ID).Return(f.company, nil)
		f.parties.On("FindByID", mock.Anything, f.company.ID, f.supplier.ID).Return(f.supplier, nil)
		f.sequences.On("Next", mock.Anything, f.company.ID, "purchase_order:2026").Return(1, nil).Once()

		var saved *procurement.PurchaseOrder
		f.orders.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*procurement.PurchaseOrder)
		}).Return(nil).Once()

		send := func() *httptest.ResponseRecorder {
			data, _ := json.Marshal(payload(f.supplier.ID))
			req := httptest.NewRequest(http.MethodPost, "/api/v1/purchase-orders", bytes.NewReader(data))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(middleware.CompanyHeaderKey, f.company.ID.String())
			req.Header.Set(IdempotencyKeyHeader, "submit-once")
			w := httptest.NewRecorder()
			f.router.ServeHTTP(w, req)
			return w
		}

		first := send()
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
		require.NotNil(t, saved)

		f.orders.On("FindByID", mock.Anything, f.company.ID, saved.ID).Return(saved, nil)

		second := send()
		require.Equal(t, http.StatusCreated, second.Code, second.Body.String())

		var firstResp, secondResp dto.Response
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))
		assert.Equal(t,
			firstResp.Data.(map[string]interface{})["id"],
			secondResp.Data.(map[string]interface{})["id"])
	})
}

func TestPurchaseOrderHandler_Get(t *testing.T) {
	t.Run("missing order returns 404", func(t *testing.T) {
		f := newOrderHandlerFixture(t)
		id := uuid.New()
		f.orders.On("FindByID", mock.Anything, f.company.ID, id).Return(nil, shared.ErrNotFound)

		w := f.do(http.MethodGet, "/api/v1/purchase-orders/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed ID returns 400", func(t *testing.T) {
		f := newOrderHandlerFixture(t)
		w := f.do(http.MethodGet, "/api/v1/purchase-orders/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPurchaseOrderHandler_NextNumber(t *testing.T) {
	f := newOrderHandlerFixture(t)

	f.companies.On("FindByID", mock.Anything, f.company.ID).Return(f.company, nil)
	f.sequences.On("Peek", mock.Anything, f.company.ID, mock.AnythingOfType("string")).Return(4, nil)

	w := f.do(http.MethodGet, "/api/v1/purchase-orders/next-number", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Contains(t, data["po_number"], "PO/WASCO/")
	assert.Contains(t, data["po_number"], "0004")
}

func TestPurchaseOrderHandler_RenderPDF(t *testing.T) {
	f := newOrderHandlerFixture(t)

	order, err := procurement.NewPurchaseOrder(
		f.company.ID, "PO/WASCO/2026-27/0001", f.supplier.ID, f.supplier.Name,
		time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = order.AddLineItem("6205-2RS Deep Groove Bearing", "SKF", "Nos",
		decimal.NewFromInt(10), decimal.NewFromFloat(245.50), decimal.Zero)
	require.NoError(t, err)

	f.orders.On("FindByID", mock.Anything, f.company.ID, order.ID).Return(order, nil)
	f.companies.On("FindByID", mock.Anything, f.company.ID).Return(f.company, nil)
	f.parties.On("FindByID", mock.Anything, f.company.ID, f.supplier.ID).Return(f.supplier, nil)

	w := f.do(http.MethodGet, "/api/v1/purchase-orders/"+order.ID.String()+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "PO_PO-WASCO-2026-27-0001.pdf")
	assert.Equal(t, "%PDF-1.7 stub", w.Body.String())
}
