package controller

import (
	"net/http"

	"github.com/Jeansss/payment-ms/internal/infrastructure/observability"
	"github.com/Jeansss/payment-ms/internal/service"
)

type WebhookController struct {
	transactionService *service.TransactionService
	metrics            *observability.Metrics
}

func NewWebhookController(transactionService *service.TransactionService, metrics *observability.Metrics) *WebhookController {
	return &WebhookController{
		transactionService: transactionService,
		metrics:            metrics,
	}
}

// UpdateTransaction overwrites the status of the notified transaction and
// returns the updated record.
func (h *WebhookController) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req WebhookRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tx, err := h.transactionService.UpdateStatus(r.Context(), req.toService())
	if err != nil {
		writeError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.TransactionStatusSets.WithLabelValues(string(tx.Status)).Inc()
	}
	writeJSON(w, http.StatusOK, FromTransaction(tx))
}
