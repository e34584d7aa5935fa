package http

import (
	"net/http"

	"aris-backend/internal/domain"
	"aris-backend/internal/service"
)

type CustomerHandler struct {
	svc service.CustomerService
}

func NewCustomerHandler(svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

type customerView struct {
	domain.Customer
	Stats domain.CustomerStats `json:"stats"`
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	f, ok := customerFilters(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid filter value")
		return
	}
	customers, statsByID, err := h.svc.List(r.Context(), tenantFrom(r.Context()).ID, f)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	views := make([]customerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, customerView{Customer: c, Stats: statsByID[c.ID]})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	c, st, err := h.svc.Get(r.Context(), tenantFrom(r.Context()).ID, id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, customerView{Customer: *c, Stats: *st})
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Create(r.Context(), tenantFrom(r.Context()).ID, &c); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var c domain.Customer
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c.ID = id
	if err := h.svc.Update(r.Context(), tenantFrom(r.Context()).ID, &c); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Deactivate(r.Context(), tenantFrom(r.Context()).ID, id); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *CustomerHandler) Rentals(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	rentals, err := h.svc.Rentals(r.Context(), tenantFrom(r.Context()).ID, id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *CustomerHandler) Bulk(w http.ResponseWriter, r *http.Request) {
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

func (h *CustomerHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, ok := customerFilters(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid filter value")
		return
	}
	csv, err := h.svc.ExportCSV(r.Context(), tenantFrom(r.Context()).ID, f)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeCSV(w, "customers.csv", csv)
}

func (h *CustomerHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	k, err := h.svc.KPIs(r.Context(), tenantFrom(r.Context()).ID)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, k)
}
