package analytics

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/handlers/httperr"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type SummaryInput struct {
	Recent int `query:"recent" default:"-1" minimum:"-1" maximum:"100" doc:"Number of recent transactions, -1 for the server default"`
}

type SummaryBody struct {
	TotalIncome        string                    `json:"totalIncome"`
	TotalExpense       string                    `json:"totalExpense"`
	NetSavings         string                    `json:"netSavings" doc:"Income minus expense, may be negative"`
	RecentTransactions []transaction.Transaction `json:"recentTransactions" doc:"Newest transaction date first"`
}

type SummaryOutput struct {
	Body SummaryBody
}

func (h *Handler) summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	summary, err := h.AnalyticsService.Summary(ctx, input.Recent)
	if err != nil {
		return nil, httperr.FromService(err, "failed to compute summary")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("recentCount", len(summary.Recent))
	}

	body := SummaryBody{
		TotalIncome:        summary.Totals.TotalIncome.StringFixed(2),
		TotalExpense:       summary.Totals.TotalExpense.StringFixed(2),
		NetSavings:         summary.Totals.NetSavings.StringFixed(2),
		RecentTransactions: make([]transaction.Transaction, len(summary.Recent)),
	}
	for i, tx := range summary.Recent {
		body.RecentTransactions[i] = transaction.ToResponse(service.Transaction{
			ID:              tx.ID,
			CategoryID:      tx.Category.NullUUID(),
			Amount:          tx.Amount,
			Description:     tx.Description,
			Type:            tx.Type,
			TransactionDate: tx.Date,
		})
	}
	return &SummaryOutput{Body: body}, nil
}
