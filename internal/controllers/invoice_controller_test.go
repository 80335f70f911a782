package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInvoice(t *testing.T, r *gin.Engine, userID uint, amount float64) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/invoices", gin.H{
		"user_id": userID, "amount": amount, "description": "fee",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return uint(decodeMap(t, w)["invoice_id"].(float64))
}

func TestInvoiceRequiresExistingUser(t *testing.T) {
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/invoices", gin.H{
		"user_id": 7, "amount": 10.0, "description": "fee",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeMap(t, w)["error"])
}

func TestPaymentFlow(t *testing.T) {
	r := newRouter()
	userID := registerUser(t, r, "alice", "a@example.com")
	invoiceID := createInvoice(t, r, userID, 10.0)

	// amount mismatch leaves the invoice pending
	w := doJSON(t, r, http.MethodPost, "/api/v1/payments", gin.H{
		"invoice_id": invoiceID, "amount": 9.0, "payment_method": "card",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Payment amount does not match invoice amount", decodeMap(t, w)["error"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/invoices/1", nil)
	assert.Equal(t, "Pending", decodeMap(t, w)["status"])

	// matching amount pays exactly once
	w = doJSON(t, r, http.MethodPost, "/api/v1/payments", gin.H{
		"invoice_id": invoiceID, "amount": 10.0, "payment_method": "card",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Payment processed successfully", decodeMap(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/invoices/1", nil)
	assert.Equal(t, "Paid", decodeMap(t, w)["status"])

	// a second payment is a conflict
	w = doJSON(t, r, http.MethodPost, "/api/v1/payments", gin.H{
		"invoice_id": invoiceID, "amount": 10.0, "payment_method": "card",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invoice has already been paid", decodeMap(t, w)["error"])
}

func TestPaymentMissingInvoice(t *testing.T) {
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/payments", gin.H{
		"invoice_id": 3, "amount": 10.0, "payment_method": "card",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBillingHistory(t *testing.T) {
	r := newRouter()
	userID := registerUser(t, r, "alice", "a@example.com")
	registerUser(t, r, "bob", "b@example.com")
	createInvoice(t, r, userID, 10.0)
	createInvoice(t, r, userID, 20.0)
	createInvoice(t, r, 2, 30.0)

	w := doJSON(t, r, http.MethodGet, "/api/v1/billing/history?user_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := decodeList(t, w)
	require.Len(t, history, 2)
	// newest first
	assert.EqualValues(t, 20.0, history[0]["amount"])
	assert.EqualValues(t, 10.0, history[1]["amount"])
}

func TestBillingHistoryValidation(t *testing.T) {
	r := newRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/billing/history", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User ID is required", decodeMap(t, w)["error"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/billing/history?user_id=9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
