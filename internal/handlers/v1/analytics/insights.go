package analytics

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/handlers/httperr"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type Insight struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message" doc:"English sentence for display"`
	Count   int            `json:"count,omitempty"`
	Plural  bool           `json:"plural,omitempty"`
	Row     *ComparisonRow `json:"row,omitempty"`
	Total   string         `json:"total,omitempty"`
}

type InsightsOutput struct {
	Body struct {
		Period   Period    `json:"period"`
		Insights []Insight `json:"insights"`
	}
}

func (h *Handler) insights(ctx context.Context, input *PeriodInput) (*InsightsOutput, error) {
	logData := logging.GetLogData(ctx)
	p := h.resolvePeriod(input)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("insightsMs")
	}
	insights, err := h.AnalyticsService.Insights(ctx, p)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to generate insights")
	}

	if logData != nil {
		logData.AddData("period", p.String())
		logData.AddData("insightCount", len(insights))
	}

	out := &InsightsOutput{}
	out.Body.Period = toPeriod(p)
	out.Body.Insights = make([]Insight, len(insights))
	for i, in := range insights {
		rendered := Insight{
			Kind:    string(in.Kind),
			Message: h.Renderer.Render(in),
			Count:   in.Count,
			Plural:  in.Plural,
		}
		if in.Kind == analytics.InsightCategoryStatus {
			row := toComparisonRow(in.Row)
			rendered.Row = &row
		}
		if !in.Total.IsZero() {
			rendered.Total = in.Total.StringFixed(2)
		}
		out.Body.Insights[i] = rendered
	}
	return out, nil
}
