package http

import (
	"net/http"

	"aris-backend/internal/domain"
	"aris-backend/internal/service"
)

type EquipmentHandler struct {
	svc service.EquipmentService
}

func NewEquipmentHandler(svc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	f, ok := equipmentFilters(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid filter value")
		return
	}
	items, err := h.svc.List(r.Context(), tenantFrom(r.Context()).ID, f)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	eq, err := h.svc.Get(r.Context(), tenantFrom(r.Context()).ID, id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var eq domain.Equipment
	if err := decodeJSON(r, &eq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Create(r.Context(), tenantFrom(r.Context()).ID, &eq); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var eq domain.Equipment
	if err := decodeJSON(r, &eq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	eq.ID = id
	if err := h.svc.Update(r.Context(), tenantFrom(r.Context()).ID, &eq); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Delete(r.Context(), tenantFrom(r.Context()).ID, id); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type bulkRequest struct {
	Action service.BulkAction `json:"action"`
	IDs    []int32            `json:"ids"`
}

type bulkResponse struct {
	Affected int64 `json:"affected"`
}

func (h *EquipmentHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	affected, err := h.svc.Bulk(r.Context(), tenantFrom(r.Context()).ID, req.Action, req.IDs)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, bulkResponse{Affected: affected})
}

func (h *EquipmentHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, ok := equipmentFilters(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid filter value")
		return
	}
	csv, err := h.svc.ExportCSV(r.Context(), tenantFrom(r.Context()).ID, f)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeCSV(w, "equipment.csv", csv)
}

func (h *EquipmentHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	k, err := h.svc.KPIs(r.Context(), tenantFrom(r.Context()).ID)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, k)
}
