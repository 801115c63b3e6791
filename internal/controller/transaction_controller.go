package controller

import (
	"net/http"
	"strings"

	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"github.com/Jeansss/payment-ms/internal/infrastructure/observability"
	"github.com/Jeansss/payment-ms/internal/service"
	"github.com/go-chi/chi/v5"
)

type TransactionController struct {
	transactionService *service.TransactionService
	metrics            *observability.Metrics
}

func NewTransactionController(transactionService *service.TransactionService, metrics *observability.Metrics) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
		metrics:            metrics,
	}
}

// Create assembles a transaction for the cart in the path using the payment
// method named in the body.
func (h *TransactionController) Create(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tx, err := h.transactionService.Create(r.Context(), service.CreateTransactionRequest{
		PaymentMethodID: req.PaymentMethodID,
		CartID:          chi.URLParam(r, "cartId"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.TransactionsCreated.Inc()
	}
	writeJSON(w, http.StatusCreated, FromTransaction(tx))
}

func (h *TransactionController) Get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.transactionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromTransaction(tx))
}

// List filters by the optional status query parameter.
func (h *TransactionController) List(w http.ResponseWriter, r *http.Request) {
	status := transaction.Status(strings.TrimSpace(r.URL.Query().Get("status")))

	txs, err := h.transactionService.List(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromTransactions(txs))
}
