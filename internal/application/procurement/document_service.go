package procurement

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bizrecords/backend/internal/domain/company"
	"github.com/bizrecords/backend/internal/domain/party"
	"github.com/bizrecords/backend/internal/domain/procurement"
	infralog "github.com/bizrecords/backend/internal/infrastructure/logger"
	"github.com/bizrecords/backend/internal/infrastructure/printing"
	"github.com/bizrecords/backend/internal/infrastructure/telemetry"
)

// DocumentService renders purchase orders as printable PDFs. Everything
// that appears on the document is re-read from the repositories at
// render time, so the PDF always reflects the persisted order.
type DocumentService struct {
	orderRepo   procurement.Repository
	companyRepo company.Repository
	partyRepo   party.Repository
	engine      *printing.TemplateEngine
	renderer    printing.PDFRenderer
	storage     printing.DocumentStorage
	logger      *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	orderRepo procurement.Repository,
	companyRepo company.Repository,
	partyRepo party.Repository,
	engine *printing.TemplateEngine,
	renderer printing.PDFRenderer,
	storage printing.DocumentStorage,
	logger *zap.Logger,
) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		orderRepo:   orderRepo,
		companyRepo: companyRepo,
		partyRepo:   partyRepo,
		engine:      engine,
		renderer:    renderer,
		storage:     storage,
		logger:      logger,
	}
}

// RenderPDF renders the purchase order document and archives a copy
func (s *DocumentService) RenderPDF(ctx context.Context, companyID, orderID uuid.UUID) (*DocumentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "procurement.DocumentService", "RenderPDF",
		telemetry.WithAttribute("order_id", orderID.String()))
	defer span.End()

	order, err := s.orderRepo.FindByID(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}
	c, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	supplier, err := s.partyRepo.FindByID(ctx, companyID, order.SupplierID)
	if err != nil {
		return nil, err
	}

	doc := printing.BuildPurchaseOrderDocument(c, supplier, order)
	html, err := s.engine.RenderPurchaseOrder(doc)
	if err != nil {
		return nil, err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  html,
		Title: order.PONumber,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttribute(span, "pdf_bytes", len(result.PDFData))

	fileName := printing.PDFFileName(order.PONumber)

	// archiving is best effort, the caller still gets the bytes
	if s.storage != nil {
		if _, err := s.storage.Store(ctx, &printing.StoreRequest{
			CompanyID: companyID,
			FileName:  fileName,
			PDFData:   result.PDFData,
		}); err != nil {
			infralog.WithLogger(ctx, s.logger).Warn("failed to archive rendered PDF",
				zap.String("po_number", order.PONumber),
				zap.Error(err))
		}
	}

	infralog.WithLogger(ctx, s.logger).Info("purchase order PDF rendered",
		zap.String("po_number", order.PONumber),
		zap.Int("bytes", len(result.PDFData)),
		zap.Duration("duration", result.RenderDuration))

	return &DocumentResponse{
		FileName: fileName,
		Data:     result.PDFData,
	}, nil
}
