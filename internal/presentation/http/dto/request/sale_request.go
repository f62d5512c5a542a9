package request

// SaleFilterRequest represents query parameters for history listing.
// Dates use the 2006-01-02 layout.
type SaleFilterRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Method    string `form:"method"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
