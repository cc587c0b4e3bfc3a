package category

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Category name"`
	Type      string `json:"type" doc:"income or expense"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}
