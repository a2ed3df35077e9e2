package http

import (
	"net/http"
	"time"

	"roknsound-backend/internal/domain"
)

type createEquipmentRequest struct {
	CategoryID        int32  `json:"category_id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Brand             string `json:"brand"`
	ModelNumber       string `json:"model_number"`
	SerialNumber      string `json:"serial_number"`
	Status            string `json:"status"`
	Quantity          int32  `json:"quantity"`
	DailyPriceCents   int32  `json:"daily_price_cents"`
	WeeklyPriceCents  int32  `json:"weekly_price_cents"`
	MonthlyPriceCents int32  `json:"monthly_price_cents"`
	DepositCents      int32  `json:"deposit_cents"`
	Condition         string `json:"condition"`
	Notes             string `json:"notes"`
}

func (h *Handler) createEquipment(w http.ResponseWriter, r *http.Request) {
	var req createEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	eq := &domain.Equipment{
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		Description:       req.Description,
		Brand:             req.Brand,
		ModelNumber:       req.ModelNumber,
		SerialNumber:      req.SerialNumber,
		Status:            domain.EquipmentStatus(req.Status),
		Quantity:          req.Quantity,
		DailyPriceCents:   req.DailyPriceCents,
		WeeklyPriceCents:  req.WeeklyPriceCents,
		MonthlyPriceCents: req.MonthlyPriceCents,
		DepositCents:      req.DepositCents,
		Condition:         req.Condition,
		Notes:             req.Notes,
	}
	if err := h.equipment.CreateEquipment(r.Context(), eq); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

func (h *Handler) getEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid equipment id")
		return
	}
	eq, err := h.equipment.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *Handler) listEquipment(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	items, total, err := h.equipment.ListEquipment(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Data: items,
		Meta: listMeta{Total: total, Page: page, PageSize: pageSize},
	})
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) setEquipmentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid equipment id")
		return
	}
	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := h.equipment.SetStatus(r.Context(), id, domain.EquipmentStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *Handler) getAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid equipment id")
		return
	}
	qty, err := h.equipment.AvailableQuantity(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{
		"equipment_id":       id,
		"available_quantity": qty,
	})
}

type maintenanceRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	CostCents   int32  `json:"cost_cents"`
	PerformedBy string `json:"performed_by"`
}

func (h *Handler) recordMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid equipment id")
		return
	}
	var req maintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeBadRequest(w, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	rec := &domain.MaintenanceRecord{
		EquipmentID: id,
		Date:        date,
		Description: req.Description,
		CostCents:   req.CostCents,
		PerformedBy: req.PerformedBy,
	}
	if err := h.equipment.RecordMaintenance(r.Context(), rec); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *Handler) listMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid equipment id")
		return
	}
	recs, err := h.equipment.ListMaintenanceRecords(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.equipment.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	cat := &domain.Category{Name: req.Name, Description: req.Description}
	if err := h.equipment.CreateCategory(r.Context(), cat); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}
