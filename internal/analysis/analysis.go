// Package analysis aggregates decoded sales records into report insights.
package analysis

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kurochkinivan/autobiz/internal/domain"
)

const currency = "Rs."

func Analyze(records []*domain.SalesRecord) *domain.Insights {
	insights := &domain.Insights{Records: len(records)}

	byProduct := make(map[string]float64)
	byMonth := make(map[string]float64)

	for _, r := range records {
		insights.TotalSales += r.Sales
		byProduct[r.Product] += r.Sales
		byMonth[r.Month] += r.Sales
	}

	if len(records) > 0 {
		insights.AverageSales = insights.TotalSales / float64(len(records))
	}

	insights.ByProduct = sortedTotals(byProduct)
	insights.ByMonth = sortedTotals(byMonth)

	// first maximum in key order wins ties
	for i, t := range insights.ByProduct {
		if i == 0 || t.Sales > byProduct[insights.TopProduct] {
			insights.TopProduct = t.Key
		}
	}

	return insights
}

// Lines renders insights as the short human-readable statements returned by
// the insight endpoint and fed to the summarizer.
func Lines(insights *domain.Insights) []string {
	lines := make([]string, 0, 2+len(insights.ByMonth))

	lines = append(lines,
		fmt.Sprintf("Total sales: %s", Money(insights.TotalSales)),
		fmt.Sprintf("Top performing product: %s", insights.TopProduct),
	)

	for _, m := range insights.ByMonth {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Key, Money(m.Sales)))
	}

	return lines
}

// Share returns the percentage of total that part represents, or 0 for an
// empty total.
func Share(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return part / total * 100
}

func Money(v float64) string {
	return currency + groupThousands(fmt.Sprintf("%.2f", v))
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	return sign + b.String() + "." + frac
}

func sortedTotals(m map[string]float64) []domain.Total {
	totals := make([]domain.Total, 0, len(m))
	for k, v := range m {
		totals = append(totals, domain.Total{Key: k, Sales: v})
	}

	slices.SortFunc(totals, func(a, b domain.Total) int {
		return strings.Compare(a.Key, b.Key)
	})

	return totals
}
