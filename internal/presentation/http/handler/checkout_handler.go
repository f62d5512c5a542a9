package handler

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/matospos/checkout-api/internal/application/service"
	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/internal/domain/enum"
	"github.com/matospos/checkout-api/internal/infrastructure/qrcode"
	"github.com/matospos/checkout-api/internal/presentation/http/dto/request"
	"github.com/matospos/checkout-api/internal/presentation/http/dto/response"
)

// CheckoutHandler handles the register's transaction HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	customerService *service.CustomerService
	qrGenerator     *qrcode.Generator
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(
	checkoutService *service.CheckoutService,
	customerService *service.CustomerService,
	qrGenerator *qrcode.Generator,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		customerService: customerService,
		qrGenerator:     qrGenerator,
	}
}

// GetCart handles fetching the current cart
func (h *CheckoutHandler) GetCart(c *gin.Context) {
	response.OK(c, "Cart retrieved successfully", h.checkoutService.Cart())
}

// AddItem handles adding a product to the cart by ID
func (h *CheckoutHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.checkoutService.AddItem(c.Request.Context(), productID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cart)
}

// ScanItem handles adding one unit of a product by barcode
func (h *CheckoutHandler) ScanItem(c *gin.Context) {
	var req request.ScanItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.checkoutService.AddItemByBarcode(c.Request.Context(), req.Barcode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cart)
}

// UpdateQuantity handles setting the quantity of a cart line
func (h *CheckoutHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := ParseUUIDParam(c, "product_id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.checkoutService.UpdateQuantity(c.Request.Context(), productID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated", cart)
}

// RemoveItem handles removing a line from the cart
func (h *CheckoutHandler) RemoveItem(c *gin.Context) {
	productID, ok := ParseUUIDParam(c, "product_id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.checkoutService.RemoveItem(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from cart", cart)
}

// ClearCart handles discarding the whole cart
func (h *CheckoutHandler) ClearCart(c *gin.Context) {
	if err := h.checkoutService.ClearCart(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// GetCustomer handles fetching the customer bound to the transaction
func (h *CheckoutHandler) GetCustomer(c *gin.Context) {
	customer := h.checkoutService.Customer()
	if customer == nil {
		response.NotFound(c, "No customer bound to the transaction")
		return
	}
	response.OK(c, "Customer retrieved successfully", customer)
}

// BindCustomer handles validating and binding the buyer identification
func (h *CheckoutHandler) BindCustomer(c *gin.Context) {
	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer := entity.Customer{
		Name:  req.Name,
		TaxID: req.TaxID,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := h.customerService.ValidateCustomer(&customer); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.checkoutService.BindCustomer(c.Request.Context(), customer); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer bound to transaction", customer)
}

// StartPayment handles entering the payment sequence
func (h *CheckoutHandler) StartPayment(c *gin.Context) {
	var req request.StartPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	method, err := enum.ParsePaymentMethod(req.Method)
	if err != nil {
		response.BadRequest(c, "Unknown payment method: "+req.Method)
		return
	}

	var cashCents *int64
	if req.CashAmount != nil {
		v := int64(math.Round(*req.CashAmount * 100))
		cashCents = &v
	}

	if err := h.checkoutService.StartPayment(c.Request.Context(), method, cashCents); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, "Payment started", h.checkoutService.PaymentStatus())
}

// PaymentStatus handles polling the payment dialog state
func (h *CheckoutHandler) PaymentStatus(c *gin.Context) {
	response.OK(c, "Payment status retrieved successfully", h.checkoutService.PaymentStatus())
}

// CancelPayment handles abandoning the in-flight payment
func (h *CheckoutHandler) CancelPayment(c *gin.Context) {
	h.checkoutService.CancelPayment(c.Request.Context())
	response.OK(c, "Payment cancelled", h.checkoutService.PaymentStatus())
}

// PaymentQR handles rendering the instant-transfer charge QR code as PNG
func (h *CheckoutHandler) PaymentQR(c *gin.Context) {
	chargeID, amount, err := h.checkoutService.ChargeQR()
	if err != nil {
		response.Error(c, err)
		return
	}

	png, err := h.qrGenerator.GenerateChargeQR(chargeID, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
