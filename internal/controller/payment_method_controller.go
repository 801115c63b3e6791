package controller

import (
	"net/http"

	"github.com/Jeansss/payment-ms/internal/service"
	"github.com/go-chi/chi/v5"
)

type PaymentMethodController struct {
	paymentMethodService *service.PaymentMethodService
}

func NewPaymentMethodController(paymentMethodService *service.PaymentMethodService) *PaymentMethodController {
	return &PaymentMethodController{paymentMethodService: paymentMethodService}
}

func (h *PaymentMethodController) List(w http.ResponseWriter, r *http.Request) {
	pms, err := h.paymentMethodService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromPaymentMethods(pms))
}

func (h *PaymentMethodController) Get(w http.ResponseWriter, r *http.Request) {
	pm, err := h.paymentMethodService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromPaymentMethod(pm))
}

func (h *PaymentMethodController) Create(w http.ResponseWriter, r *http.Request) {
	var req PaymentMethodRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	pm, err := h.paymentMethodService.Create(r.Context(), req.toService())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, FromPaymentMethod(pm))
}

func (h *PaymentMethodController) Update(w http.ResponseWriter, r *http.Request) {
	var req PaymentMethodRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	pm, err := h.paymentMethodService.Update(r.Context(), chi.URLParam(r, "id"), req.toService())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromPaymentMethod(pm))
}

func (h *PaymentMethodController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.paymentMethodService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
