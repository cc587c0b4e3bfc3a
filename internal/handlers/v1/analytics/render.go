package analytics

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

// Renderer turns insight records into English sentences. Amounts are
// grouped and shown with two decimals after the currency symbol.
type Renderer struct {
	printer *message.Printer
	symbol  string
}

func NewRenderer(currencySymbol string) *Renderer {
	return &Renderer{
		printer: message.NewPrinter(language.English),
		symbol:  currencySymbol,
	}
}

// Money formats d exactly, without passing through float64.
func (r *Renderer) Money(d decimal.Decimal) string {
	rounded := d.Round(2)
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + r.symbol + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func categories(plural bool) string {
	if plural {
		return "categories"
	}
	return "category"
}

func (r *Renderer) Render(in analytics.Insight) string {
	switch in.Kind {
	case analytics.InsightOverBudgetSummary:
		return r.printer.Sprintf("You've gone over budget in %d %s this month.", in.Count, categories(in.Plural))
	case analytics.InsightUnderBudgetSummary:
		return r.printer.Sprintf("Great job! You're under budget in %d %s this month.", in.Count, categories(in.Plural))
	case analytics.InsightCategoryStatus:
		switch in.Status {
		case analytics.BudgetStatusOver:
			return "You are over budget for " + in.Row.CategoryName + " by " + r.Money(in.Row.Variance) + "."
		case analytics.BudgetStatusUnder:
			return "You are under budget for " + in.Row.CategoryName + " by " + r.Money(in.Row.Variance.Neg()) + "."
		default:
			return "You are exactly on budget for " + in.Row.CategoryName + "."
		}
	case analytics.InsightNoBudgetsSet:
		return "Set some budgets to get personalized spending insights!"
	case analytics.InsightTotalExpenses:
		return "Total expenses this month: " + r.Money(in.Total)
	case analytics.InsightNoExpenses:
		return "No expenses recorded for this month yet."
	}
	return string(in.Kind)
}
