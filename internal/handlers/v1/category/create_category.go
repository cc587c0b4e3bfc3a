package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/handlers/httperr"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" minLength:"1" maxLength:"50" doc:"Unique category name"`
	Type string `json:"type" enum:"income,expense" doc:"Transaction type the category applies to"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryResponse is the response body for creating a category.
type CreateCategoryResponse struct {
	ID string `json:"id" doc:"Created category UUID"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponse
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, c service.Category) (uuid.UUID, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create category",
		Description:   "Creates a new income or expense category. Names are unique.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	id, err := h.CategoryService.CreateCategory(ctx, service.Category{
		Name: input.Body.Name,
		Type: analytics.TransactionType(input.Body.Type),
	})
	if err != nil {
		return nil, httperr.FromService(err, "failed to create category")
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   CreateCategoryResponse{ID: id.String()},
	}, nil
}
