// Package pdf gera o relatório de estoque baixo em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  HEADER: Título + data de geração                   │
//	│  ─────────────────────────────────────────────────  │
//	│  TABELA: Produto | Categoria | Qtd | Mín | Preço    │
//	│  ─────────────────────────────────────────────────  │
//	│  RODAPÉ: total de produtos listados                 │
//	└─────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 15, Green: 82, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// LowStockReportGenerator gera o relatório usando Maroto v2.
type LowStockReportGenerator struct{}

// NewLowStockReportGenerator constrói o gerador.
func NewLowStockReportGenerator() *LowStockReportGenerator {
	return &LowStockReportGenerator{}
}

// GenerateLowStockReport gera o PDF e devolve seus bytes.
func (g *LowStockReportGenerator) GenerateLowStockReport(
	_ context.Context,
	products []repository.ProductWithCategory,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque Baixo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(products) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título do relatório (esq) e data de geração (dir).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE ESTOQUE BAIXO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Produtos com quantidade igual ou abaixo do limite mínimo", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em", props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de produtos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 4, align.Left),
		h("Categoria", 3, align.Left),
		h("Qtd. atual", 2, align.Right),
		h("Qtd. mínima", 2, align.Right),
		h("Preço", 1, align.Right),
	)
}

// tableRows: uma linha por produto, quantidade em vermelho quando já está
// abaixo do mínimo.
func tableRows(products []repository.ProductWithCategory) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		qtyColor := colorGray
		if p.Quantity.LessThan(p.MinimumQuantity) {
			qtyColor = colorAlert
		}
		categoryName := "—"
		if p.CategoryName != nil {
			categoryName = *p.CategoryName
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				categoryName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				p.Quantity.String()+" "+p.UnitType,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: qtyColor},
			)),
			col.New(2).Add(text.New(
				p.MinimumQuantity.String()+" "+p.UnitType,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				"R$ "+formatCentavos(p.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: total de produtos listados.
func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de produtos com estoque baixo: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// formatCentavos converte centavos em reais com duas casas decimais.
// Ex: 1999 → "19,99"
func formatCentavos(centavos int64) string {
	value := decimal.NewFromInt(centavos).Div(decimal.NewFromInt(100))
	s := value.StringFixed(2)
	// troca o ponto decimal pela vírgula
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[:i] + "," + s[i+1:]
		}
	}
	return s
}
