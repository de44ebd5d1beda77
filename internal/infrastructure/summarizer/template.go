// Package summarizer turns sales insights into prose and answers agent
// prompts, either offline from templates or through a Gemini model.
package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/kurochkinivan/autobiz/internal/analysis"
	"github.com/kurochkinivan/autobiz/internal/domain"
)

// Template summarizes insights without any model. It is used when no LLM
// API key is configured.
type Template struct{}

func NewTemplate() *Template {
	return &Template{}
}

func (t *Template) Summarize(_ context.Context, insights *domain.Insights) (string, error) {
	if insights.Records == 0 {
		return "The uploaded file contains no sales records.", nil
	}

	var b strings.Builder

	fmt.Fprintf(&b, "This report covers %d sales records with total sales of %s and an average of %s per record. ",
		insights.Records, analysis.Money(insights.TotalSales), analysis.Money(insights.AverageSales))

	if top := insights.TopProduct; top != "" {
		fmt.Fprintf(&b, "%s is the top performing product", top)
		for _, p := range insights.ByProduct {
			if p.Key == top {
				fmt.Fprintf(&b, " with %.1f%% of all sales", analysis.Share(p.Sales, insights.TotalSales))
				break
			}
		}
		b.WriteString(".")
	}

	if best, ok := bestMonth(insights.ByMonth); ok {
		fmt.Fprintf(&b, "\n%s was the strongest month at %s.", best.Key, analysis.Money(best.Sales))
	}

	return b.String(), nil
}

func (t *Template) Reply(_ context.Context, message string) (string, error) {
	return fmt.Sprintf("No language model is configured, so the agent cannot answer %q yet. "+
		"Set an LLM API key to enable replies.", message), nil
}

func bestMonth(months []domain.Total) (domain.Total, bool) {
	if len(months) == 0 {
		return domain.Total{}, false
	}

	best := months[0]
	for _, m := range months[1:] {
		if m.Sales > best.Sales {
			best = m
		}
	}

	return best, true
}
