package http

import (
	"net/http"

	"roknsound-backend/internal/domain"
)

type recordPaymentRequest struct {
	AmountCents   int32  `json:"amount_cents"`
	Type          string `json:"type"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Notes         string `json:"notes"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}
	var req recordPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	p := &domain.Payment{
		RentalID:      id,
		AmountCents:   req.AmountCents,
		Type:          domain.PaymentType(req.Type),
		Method:        domain.PaymentMethod(req.Method),
		Status:        domain.PaymentStatus(req.Status),
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
	}
	if err := h.payments.RecordPayment(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}
	payments, err := h.payments.ListPayments(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *Handler) paymentSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}
	summary, err := h.payments.Summary(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
