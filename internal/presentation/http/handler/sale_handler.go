package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matospos/checkout-api/internal/application/service"
	"github.com/matospos/checkout-api/internal/domain/enum"
	"github.com/matospos/checkout-api/internal/domain/repository"
	"github.com/matospos/checkout-api/internal/presentation/http/dto/request"
	"github.com/matospos/checkout-api/internal/presentation/http/dto/response"
	"github.com/matospos/checkout-api/pkg/pagination"
)

// SaleHandler handles sales history HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing the sales history with method and date filters
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}

	if filter.Method != "" {
		method, err := enum.ParsePaymentMethod(filter.Method)
		if err != nil {
			response.BadRequest(c, "Unknown payment method: "+filter.Method)
			return
		}
		params.Method = &method
	}

	if filter.StartDate != "" {
		start, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}

	if filter.EndDate != "" {
		end, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		// Inclusive end of day
		end = end.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &end
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles getting a single sale by ID
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// GetByInvoiceNo handles getting a single sale by invoice number
func (h *SaleHandler) GetByInvoiceNo(c *gin.Context) {
	invoiceNo := c.Param("invoice_no")
	if invoiceNo == "" {
		response.BadRequest(c, "Invoice number is required")
		return
	}

	sale, err := h.saleService.GetSaleByInvoiceNo(c.Request.Context(), invoiceNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Invoice handles composing the invoice document for a sale
func (h *SaleHandler) Invoice(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	invoice, err := h.saleService.BuildInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice composed successfully", invoice)
}

// Export handles downloading the sale record as a JSON document
func (h *SaleHandler) Export(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := json.MarshalIndent(sale, "", "  ")
	if err != nil {
		response.InternalServerError(c, "Failed to encode sale")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", sale.InvoiceNo))
	c.Data(http.StatusOK, "application/json", data)
}

// Stats handles the sales reports view
func (h *SaleHandler) Stats(c *gin.Context) {
	report, err := h.saleService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report retrieved successfully", report)
}
