package http

import (
	"net/http"
	"time"

	"roknsound-backend/internal/domain"
	"roknsound-backend/internal/service"
)

const dateLayout = "2006-01-02"

type createRentalRequest struct {
	CustomerID   int32  `json:"customer_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DurationType string `json:"duration_type"`
	Notes        string `json:"notes"`
}

func (h *Handler) createRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeBadRequest(w, "invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		writeBadRequest(w, "invalid end_date, expected YYYY-MM-DD")
		return
	}

	rental, err := h.rentals.CreateRental(r.Context(), req.CustomerID, start, end,
		domain.DurationType(req.DurationType), req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

type rentalDetailResponse struct {
	Rental *domain.Rental      `json:"rental"`
	Items  []domain.RentalItem `json:"items"`
}

func (h *Handler) getRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}
	rental, items, err := h.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentalDetailResponse{Rental: rental, Items: items})
}

func (h *Handler) listRentals(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	rentals, total, err := h.rentals.ListRentals(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Data: rentals,
		Meta: listMeta{Total: total, Page: page, PageSize: pageSize},
	})
}

type addItemRequest struct {
	EquipmentID        int32  `json:"equipment_id"`
	Quantity           int32  `json:"quantity"`
	CheckoutNote       string `json:"checkout_note"`
	PriceOverrideCents *int32 `json:"price_override_cents,omitempty"`
	StaffOverride      bool   `json:"staff_override"`
}

func (h *Handler) addRentalItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	item, err := h.rentals.AddItem(r.Context(), service.AddItemRequest{
		RentalID:           id,
		EquipmentID:        req.EquipmentID,
		Quantity:           req.Quantity,
		CheckoutNote:       req.CheckoutNote,
		PriceOverrideCents: req.PriceOverrideCents,
		StaffOverride:      req.StaffOverride,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) removeRentalItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}
	itemID, ok := pathID(r, "itemID")
	if !ok {
		writeBadRequest(w, "invalid item id")
		return
	}
	if err := h.rentals.RemoveItem(r.Context(), id, itemID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type signContractRequest struct {
	SignatureData string `json:"signature_data"`
}

func (h *Handler) signContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}
	var req signContractRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	rental, err := h.rentals.SignContract(r.Context(), id, req.SignatureData)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *Handler) cancelRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}
	rental, err := h.rentals.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type extendRentalRequest struct {
	NewEndDate string `json:"new_end_date"`
}

func (h *Handler) extendRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}
	var req extendRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	newEnd, err := time.Parse(dateLayout, req.NewEndDate)
	if err != nil {
		writeBadRequest(w, "invalid new_end_date, expected YYYY-MM-DD")
		return
	}

	rental, err := h.rentals.Extend(r.Context(), id, newEnd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type returnItemRequest struct {
	ItemID     int32  `json:"item_id"`
	Condition  string `json:"condition"`
	ReturnNote string `json:"return_note"`
}

type returnItemsRequest struct {
	Items []returnItemRequest `json:"items"`
}

func (h *Handler) returnItems(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid rental id")
		return
	}
	var req returnItemsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if len(req.Items) == 0 {
		writeBadRequest(w, "at least one item is required")
		return
	}

	returns := make([]service.ItemReturn, 0, len(req.Items))
	for _, it := range req.Items {
		returns = append(returns, service.ItemReturn{
			ItemID:     it.ItemID,
			Condition:  domain.ReturnCondition(it.Condition),
			ReturnNote: it.ReturnNote,
		})
	}

	rental, err := h.rentals.ReturnItems(r.Context(), id, returns)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}
