// Package pdf implementa la generación del comprobante de compra (PDF) de una
// orden del marketplace.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: FarmingPlatform  │  N° Orden + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENDEDOR (farmer) / COMPRADOR (corporate)                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR + estado de la orden                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/Manas-Mehakare/FarmingPlatform/internal/application/orders"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ orders.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa orders.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	platformName string
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(platformName string) *MarotoReceiptGenerator {
	if platformName == "" {
		platformName = "FarmingPlatform"
	}
	return &MarotoReceiptGenerator{platformName: platformName}
}

// GenerateReceiptPDF genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de compra", true).
		WithAuthor(g.platformName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(order))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))
	m.AddRows(statusRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la plataforma (izq) y N° de orden + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(order *entity.Order) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.platformName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de compra", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Orden: "+order.ID, props.Text{
				Size: 8, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// partiesRow: vendedor (farmer) y comprador (corporate).
func partiesRow(order *entity.Order) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("VENDEDOR", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(order.SellerName, props.Text{Size: 9, Top: 4}),
		),
		col.New(6).Add(
			text.New("COMPRADOR", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(order.BuyerName, props.Text{Size: 9, Top: 4}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Cantidad", header)),
		col.New(5).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Unitario", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right})),
		col.New(3).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right})),
	)
}

func tableDetailRow(order *entity.Order) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", order.Quantity), props.Text{Size: 9})),
		col.New(5).Add(text.New(order.ProductName, props.Text{Size: 9})),
		col.New(2).Add(text.New("$ "+order.UnitPrice.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		col.New(3).Add(text.New("$ "+order.TotalPrice.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	)
}

func totalRow(order *entity.Order) core.Row {
	return row.New(9).Add(
		col.New(9).Add(
			text.New("TOTAL A PAGAR", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2}),
		),
		col.New(3).Add(
			text.New("$ "+order.TotalPrice.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

func statusRow(order *entity.Order) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New("Estado de la orden: "+string(order.Status), props.Text{Size: 8, Color: colorGray}),
		),
	)
}
