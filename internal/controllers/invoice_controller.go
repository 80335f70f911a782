package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type InvoiceController struct {
	store store.Store
}

func NewInvoiceController(s store.Store) *InvoiceController {
	return &InvoiceController{store: s}
}

type invoiceInput struct {
	UserID      uint    `json:"user_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

type paymentInput struct {
	InvoiceID     uint    `json:"invoice_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
}

type invoiceResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toInvoiceResponse(inv *models.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:          inv.ID,
		UserID:      inv.UserID,
		Amount:      inv.Amount,
		Description: inv.Description,
		Status:      inv.Status,
		CreatedAt:   inv.CreatedAt,
	}
}

var (
	errAlreadyPaid    = errors.New("Invoice has already been paid")
	errAmountMismatch = errors.New("Payment amount does not match invoice amount")
)

func (ic *InvoiceController) Create(c *gin.Context) {
	var input invoiceInput
	if !bindJSON(c, &input) {
		return
	}

	if _, err := ic.store.Users().Get(input.UserID); err != nil {
		respondStoreError(c, "User", "creating the invoice", err)
		return
	}

	invoice := models.Invoice{
		UserID:      input.UserID,
		Amount:      input.Amount,
		Description: input.Description,
		Status:      "Pending",
	}
	if err := ic.store.Invoices().Create(&invoice); err != nil {
		storageError(c, "creating the invoice", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Invoice created successfully", "invoice_id": invoice.ID})
}

func (ic *InvoiceController) Get(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	invoice, err := ic.store.Invoices().Get(id)
	if err != nil {
		respondStoreError(c, "Invoice", "fetching the invoice", err)
		return
	}

	c.JSON(http.StatusOK, toInvoiceResponse(invoice))
}

func (ic *InvoiceController) List(c *gin.Context) {
	invoices, err := ic.store.Invoices().List()
	if err != nil {
		storageError(c, "fetching invoices", err)
		return
	}

	out := make([]invoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, toInvoiceResponse(&invoices[i]))
	}
	c.JSON(http.StatusOK, out)
}

// ProcessPayment transitions Pending -> Paid exactly once. The invoice row is
// locked for the transaction so concurrent payments cannot both succeed.
func (ic *InvoiceController) ProcessPayment(c *gin.Context) {
	var input paymentInput
	if !bindJSON(c, &input) {
		return
	}

	err := ic.store.Transaction(func(s store.Store) error {
		invoice, err := s.Invoices().Get(input.InvoiceID, store.ForUpdate())
		if err != nil {
			return err
		}
		if invoice.Status == "Paid" {
			return errAlreadyPaid
		}
		if input.Amount != invoice.Amount {
			return errAmountMismatch
		}
		return s.Invoices().Updates(invoice.ID, map[string]any{"status": "Paid"})
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			notFound(c, "Invoice")
		case errors.Is(err, errAlreadyPaid), errors.Is(err, errAmountMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			storageError(c, "processing the payment", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment processed successfully"})
}

// BillingHistory lists a user's invoices, newest first.
func (ic *InvoiceController) BillingHistory(c *gin.Context) {
	raw := c.Query("user_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}
	userID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id parameter"})
		return
	}

	if _, err := ic.store.Users().Get(uint(userID)); err != nil {
		respondStoreError(c, "User", "fetching billing history", err)
		return
	}

	invoices, err := ic.store.Invoices().List(store.Where("user_id", uint(userID)), store.NewestFirst())
	if err != nil {
		storageError(c, "fetching billing history", err)
		return
	}

	out := make([]invoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, toInvoiceResponse(&invoices[i]))
	}
	c.JSON(http.StatusOK, out)
}
