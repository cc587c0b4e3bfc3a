package category

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/httperr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ListCategoriesOutput struct {
	Body struct {
		Categories []Category `json:"categories" doc:"Every category ordered by name"`
	}
}

type categoryLister interface {
	ListCategories(ctx context.Context) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	categories, err := h.CategoryService.ListCategories(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "failed to list categories")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]Category, len(categories))
	for i, c := range categories {
		out.Body.Categories[i] = Category{
			ID:        c.ID.String(),
			Name:      c.Name,
			Type:      string(c.Type),
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
	}
	return out, nil
}
