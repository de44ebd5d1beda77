// Package report_generator renders sales insight reports as PDF documents.
package report_generator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/autobiz/internal/analysis"
	"github.com/kurochkinivan/autobiz/internal/domain"
)

const (
	lineHeight   = 5.0
	charsPerLine = 95
	barColumns   = 8
)

var (
	headerBackground = &props.Color{Red: 220, Green: 225, Blue: 235}
	barColor         = &props.Color{Red: 135, Green: 206, Blue: 235}
)

type Document struct {
	Title       string
	Source      string
	GeneratedAt time.Time
	Summary     string
	Insights    *domain.Insights
}

type Generator struct {
	cfg *entity.Config
}

func New() *Generator {
	return &Generator{
		cfg: config.NewBuilder().
			WithLeftMargin(15).
			WithTopMargin(15).
			WithRightMargin(15).
			Build(),
	}
}

// Render writes doc as a PDF file to path.
func (g *Generator) Render(path string, doc *Document) error {
	pdf, err := g.Bytes(doc)
	if err != nil {
		return err
	}

	return save(path, pdf)
}

// Bytes renders doc and returns the PDF content.
func (g *Generator) Bytes(doc *Document) ([]byte, error) {
	m := maroto.New(g.cfg)

	m.AddRows(text.NewRow(12, doc.Title, props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))

	m.AddRows(text.NewRow(8, fmt.Sprintf("Source: %s | Generated on: %s",
		doc.Source, doc.GeneratedAt.Format(time.DateTime)), props.Text{
		Size:  9,
		Align: align.Center,
	}))

	m.AddRows(paragraphRows(doc.Summary)...)

	if in := doc.Insights; in != nil {
		m.AddRows(text.NewRow(8, fmt.Sprintf("Total rows in data: %d", in.Records), props.Text{Size: 10, Top: 2}))
		m.AddRows(text.NewRow(6, "Total Sales: "+analysis.Money(in.TotalSales), props.Text{Size: 10}))
		m.AddRows(text.NewRow(6, "Average Sales per record: "+analysis.Money(in.AverageSales), props.Text{Size: 10}))

		m.AddRows(sectionRow("Product-wise Sales"))
		m.AddRows(productRows(in)...)

		m.AddRows(sectionRow("Monthly Sales Share"))
		m.AddRows(monthRows(in)...)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return document.GetBytes(), nil
}

func paragraphRows(summary string) []core.Row {
	var rows []core.Row

	for _, p := range strings.Split(summary, "\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		lines := len(p)/charsPerLine + 1
		rows = append(rows, text.NewRow(float64(lines)*lineHeight+2, p, props.Text{
			Size: 10,
			Top:  1,
		}))
	}

	return rows
}

func sectionRow(title string) core.Row {
	return text.NewRow(12, title, props.Text{
		Size:  12,
		Style: fontstyle.Bold,
		Top:   4,
	})
}

func headerRow(titles ...string) core.Row {
	cols := make([]core.Col, 0, len(titles))
	for _, t := range titles {
		cols = append(cols, text.NewCol(12/len(titles), t, props.Text{Style: fontstyle.Bold, Size: 10, Left: 1}))
	}

	return row.New(7).Add(cols...).WithStyle(&props.Cell{BackgroundColor: headerBackground})
}

// productRows renders per-product totals as a horizontal bar chart.
func productRows(in *domain.Insights) []core.Row {
	rows := []core.Row{headerRow("Product", "Sales")}

	var maxSales float64
	for _, t := range in.ByProduct {
		maxSales = math.Max(maxSales, t.Sales)
	}

	for _, t := range in.ByProduct {
		width := barWidth(t.Sales, maxSales)

		r := row.New(6).Add(
			text.NewCol(3, t.Key, props.Text{Size: 9, Left: 1}),
			col.New(width).WithStyle(&props.Cell{BackgroundColor: barColor}),
		)
		if rest := barColumns - width; rest > 0 {
			r.Add(col.New(rest))
		}
		r.Add(text.NewCol(1, analysis.Money(t.Sales), props.Text{Size: 8, Align: align.Right}))

		rows = append(rows, r)
	}

	return rows
}

func monthRows(in *domain.Insights) []core.Row {
	rows := []core.Row{headerRow("Month", "Sales", "Share")}

	for _, t := range in.ByMonth {
		rows = append(rows, row.New(6).Add(
			text.NewCol(4, t.Key, props.Text{Size: 9, Left: 1}),
			text.NewCol(4, analysis.Money(t.Sales), props.Text{Size: 9, Left: 1}),
			text.NewCol(4, fmt.Sprintf("%.1f%%", analysis.Share(t.Sales, in.TotalSales)), props.Text{Size: 9, Left: 1}),
		))
	}

	return rows
}

func barWidth(v, maxValue float64) int {
	if maxValue <= 0 || v <= 0 {
		return 1
	}

	return max(1, int(math.Round(v/maxValue*barColumns)))
}
