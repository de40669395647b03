package report

import (
	"context"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// InventoryPDFGenerator genera la versión imprimible del reporte de inventario.
// Lo implementa infrastructure/pdf.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, summary *repository.InventorySummary, lowStock []*entity.Item) ([]byte, error)
}

// ReportUseCase arma el resumen de inventario (totales, valor de stock, ítems
// bajo punto de reposición) y su versión PDF.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	itemRepo   repository.ItemRepository
	pdf        InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	itemRepo repository.ItemRepository,
	pdf InventoryPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, itemRepo: itemRepo, pdf: pdf}
}

// Summary devuelve los agregados del inventario más el detalle de ítems en o
// bajo su punto de reposición.
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.InventorySummaryResponse, error) {
	summary, err := uc.reportRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.itemRepo.ListLowStock()
	if err != nil {
		return nil, err
	}

	categories := make([]dto.CategoryCountResponse, 0, len(summary.Categories))
	for _, c := range summary.Categories {
		categories = append(categories, dto.CategoryCountResponse{Category: c.Category, Count: c.Count})
	}
	lowStockItems := make([]dto.ItemResponse, 0, len(lowStock))
	for _, it := range lowStock {
		lowStockItems = append(lowStockItems, dto.ItemResponse{
			ID:           it.ID,
			Name:         it.Name,
			SKU:          it.SKU,
			Category:     it.Category,
			Supplier:     it.Supplier,
			Quantity:     it.Quantity,
			Unit:         it.Unit,
			Price:        it.Price,
			Batch:        it.Batch,
			EntryDate:    it.EntryDate,
			ExpiryDate:   it.ExpiryDate,
			ReorderPoint: it.ReorderPoint,
			Description:  it.Description,
			LowStock:     true,
			CreatedAt:    it.CreatedAt,
			UpdatedAt:    it.UpdatedAt,
		})
	}
	return &dto.InventorySummaryResponse{
		TotalItems:      summary.TotalItems,
		TotalStockValue: summary.TotalStockValue,
		LowStockCount:   summary.LowStockCount,
		Categories:      categories,
		LowStockItems:   lowStockItems,
	}, nil
}

// InventoryPDF genera el reporte de inventario en PDF y devuelve sus bytes.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	summary, err := uc.reportRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.itemRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateInventoryPDF(ctx, summary, lowStock)
}
