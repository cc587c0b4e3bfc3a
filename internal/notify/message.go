package notify

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

// BudgetAlert announces that a period has categories over budget.
type BudgetAlert struct {
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	OverBudgetCount int             `json:"overBudgetCount"`
	Categories      []OverBudgetRow `json:"categories"`
	Timestamp       time.Time       `json:"timestamp"`
}

type OverBudgetRow struct {
	CategoryID *string         `json:"categoryId"`
	Name       string          `json:"name"`
	Budgeted   decimal.Decimal `json:"budgeted"`
	Actual     decimal.Decimal `json:"actual"`
	Variance   decimal.Decimal `json:"variance"`
}

func (m *BudgetAlert) Period() analytics.Period {
	return analytics.Period{Month: m.Month, Year: m.Year}
}

func (m *BudgetAlert) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func BudgetAlertFromJSON(data []byte) (*BudgetAlert, error) {
	var msg BudgetAlert
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
