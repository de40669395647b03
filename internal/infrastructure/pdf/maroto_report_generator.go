// Package pdf implementa la versión imprimible del reporte de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Inventario + fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total ítems / valor de stock / bajo stock         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍAS: categoría | ítems                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BAJO STOCK: producto | SKU | cantidad | punto reposición   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreport "github.com/jhoicas/despensa-api/internal/application/report"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ appreport.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	summary *repository.InventorySummary,
	lowStock []*entity.Item,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("Ítems por categoría"))
	for _, r := range categoryRows(summary.Categories) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("Bajo punto de reposición"))
	m.AddRows(lowStockHeaderRow())
	for _, r := range lowStockRows(lowStock) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func summaryRow(s *repository.InventorySummary) core.Row {
	return row.New(12).Add(
		col.New(4).Add(
			text.New(fmt.Sprintf("Ítems: %d", s.TotalItems), props.Text{Size: 10, Top: 2}),
		),
		col.New(4).Add(
			text.New("Valor de stock: $"+s.TotalStockValue.StringFixed(2), props.Text{Size: 10, Top: 2}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Bajo stock: %d", s.LowStockCount), props.Text{
				Size: 10, Top: 2, Color: colorAlert, Style: fontstyle.Bold,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2, Color: colorPrimary}),
		),
	)
}

func categoryRows(categories []repository.CategoryCount) []core.Row {
	rows := make([]core.Row, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(c.Category, props.Text{Size: 9})),
			col.New(4).Add(text.New(fmt.Sprintf("%d", c.Count), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return rows
}

func lowStockHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray}
	right := header
	right.Align = align.Right
	return row.New(7).Add(
		col.New(5).Add(text.New("Producto", header)),
		col.New(3).Add(text.New("SKU", header)),
		col.New(2).Add(text.New("Cantidad", right)),
		col.New(2).Add(text.New("Reposición", right)),
	)
}

func lowStockRows(items []*entity.Item) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(it.Name, props.Text{Size: 9})),
			col.New(3).Add(text.New(it.SKU, props.Text{Size: 9})),
			col.New(2).Add(text.New(it.Quantity.String()+" "+it.Unit, props.Text{Size: 9, Align: align.Right, Color: colorAlert})),
			col.New(2).Add(text.New(it.ReorderPoint.String(), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return rows
}
