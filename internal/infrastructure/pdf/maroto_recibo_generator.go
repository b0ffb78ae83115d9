// Package pdf genera el justificante de reserva en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre comercial  │  N° Pedido + Fecha + Estado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: usuario que reservó                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | IVA | Dto | Total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QR con el nº de pedido para la recogida + leyenda          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/suminitec/suministros-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReciboGenerator genera justificantes de reserva usando Maroto v2.
type MarotoReciboGenerator struct {
	nombreComercial string
}

// NewMarotoReciboGenerator construye el generador.
func NewMarotoReciboGenerator(nombreComercial string) *MarotoReciboGenerator {
	if nombreComercial == "" {
		nombreComercial = "Suministros Tecnológicos"
	}
	return &MarotoReciboGenerator{nombreComercial: nombreComercial}
}

// GenerarRecibo genera el PDF del justificante y devuelve sus bytes.
func (g *MarotoReciboGenerator) GenerarRecibo(
	_ context.Context,
	pedido *entity.Pedido,
	producto *entity.Producto,
	usuario *entity.Usuario,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Justificante de reserva", true).
		WithAuthor(g.nombreComercial, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(usuario))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(detalleRow(pedido, producto))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(pedido))

	m.AddRows(line.NewRow(3))
	for _, r := range footerRows(pedido) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre comercial (izq) y nº de pedido + fecha + estado (der).
func (g *MarotoReciboGenerator) headerRow(pedido *entity.Pedido) core.Row {
	fecha := pedido.Fecha.Format("02/01/2006 15:04")
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.nombreComercial, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Justificante de reserva", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(pedido.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
			text.New("Estado: "+strings.ToUpper(pedido.Estado), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 16,
			}),
		),
	)
}

// clienteRow: usuario titular de la reserva.
func clienteRow(usuario *entity.Usuario) core.Row {
	nombre := "—"
	if usuario != nil {
		nombre = usuario.Username
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nombre, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalle.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("IVA%", 1, align.Center),
		h("Dto%", 1, align.Center),
		h("Total", 2, align.Right),
	)
}

// detalleRow: la línea del pedido. Si el producto ya no existe se usa su ID.
func detalleRow(pedido *entity.Pedido, producto *entity.Producto) core.Row {
	nombre := pedido.ProductoID
	if producto != nil {
		nombre = producto.Nombre
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", pedido.Cantidad),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(5).Add(text.New(
			nombre,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			pedido.PrecioUnidadVenta.StringFixed(2)+" €",
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(1).Add(text.New(
			pedido.IVAAplicado.StringFixed(0)+"%",
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(1).Add(text.New(
			pedido.DescuentoAplicado.StringFixed(0)+"%",
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			pedido.TotalVenta.StringFixed(2)+" €",
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: total a pagar en recogida (IVA y descuento ya incluidos).
func totalRow(pedido *entity.Pedido) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL A PAGAR:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(pedido.TotalVenta.StringFixed(2)+" €", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// footerRows: QR con el nº de pedido para la recogida en mostrador + leyenda.
func footerRows(pedido *entity.Pedido) []core.Row {
	return []core.Row{
		row.New(40).Add(
			col.New(4).Add(code.NewQr(pedido.ID, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Presenta este código QR en mostrador\npara recoger tu reserva.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("RESERVA DE MATERIAL", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 20,
					Left: 3, Color: colorPrimary,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Las reservas pendientes se liberan automáticamente a las 48 horas. "+
					"El pago se realiza en el momento de la recogida.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}
