package request

// ProductFilterRequest represents query parameters for catalog listing
type ProductFilterRequest struct {
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
	Search   string `form:"search"`
	Category string `form:"category"`
}
