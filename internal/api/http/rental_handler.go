package http

import (
	"net/http"
	"time"

	"aris-backend/internal/domain"
	"aris-backend/internal/service"
	"aris-backend/internal/utils"
)

type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	f, ok := rentalFilters(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid filter value")
		return
	}
	rentals, err := h.svc.List(r.Context(), tenantFrom(r.Context()).ID, f)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	rental, err := h.svc.Get(r.Context(), tenantFrom(r.Context()).ID, id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type createRentalRequest struct {
	EquipmentID   int32   `json:"equipment_id"`
	CustomerID    int32   `json:"customer_id"`
	StartDate     string  `json:"start_date"`
	DueDate       string  `json:"due_date"`
	DepositCents  int32   `json:"deposit_cents"`
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod *string `json:"payment_method"`
	Notes         string  `json:"notes"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, err := utils.ParseDay(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date, expected yyyy-mm-dd")
		return
	}
	due, err := utils.ParseDay(req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid due_date, expected yyyy-mm-dd")
		return
	}
	rental, err := h.svc.Create(r.Context(), tenantFrom(r.Context()).ID, service.CreateRentalInput{
		EquipmentID:   req.EquipmentID,
		CustomerID:    req.CustomerID,
		StartDate:     start,
		DueDate:       due,
		DepositCents:  req.DepositCents,
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

type returnRentalRequest struct {
	ReturnDate    string  `json:"return_date"`
	WithDamage    bool    `json:"with_damage"`
	DamageNotes   *string `json:"damage_notes"`
	PaymentStatus *string `json:"payment_status"`
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req returnRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in := service.ReturnRentalInput{
		WithDamage:  req.WithDamage,
		DamageNotes: req.DamageNotes,
	}
	if req.ReturnDate != "" {
		var returnDate time.Time
		returnDate, err = utils.ParseDay(req.ReturnDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid return_date, expected yyyy-mm-dd")
			return
		}
		in.ReturnDate = returnDate
	}
	if req.PaymentStatus != nil {
		ps := domain.PaymentStatus(*req.PaymentStatus)
		in.PaymentStatus = &ps
	}
	rental, err := h.svc.Return(r.Context(), tenantFrom(r.Context()).ID, id, in)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type extendRentalRequest struct {
	NewDueDate string `json:"new_due_date"`
}

func (h *RentalHandler) Extend(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req extendRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	due, err := utils.ParseDay(req.NewDueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid new_due_date, expected yyyy-mm-dd")
		return
	}
	rental, err := h.svc.Extend(r.Context(), tenantFrom(r.Context()).ID, id, due)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type updatePaymentRequest struct {
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod *string `json:"payment_method"`
}

func (h *RentalHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req updatePaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rental, err := h.svc.UpdatePayment(r.Context(), tenantFrom(r.Context()).ID, id,
		domain.PaymentStatus(req.PaymentStatus), req.PaymentMethod)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	inv, err := h.svc.GenerateInvoice(r.Context(), tenantFrom(r.Context()).ID, id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (h *RentalHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, ok := rentalFilters(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid filter value")
		return
	}
	csv, err := h.svc.ExportCSV(r.Context(), tenantFrom(r.Context()).ID, f)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeCSV(w, "rentals.csv", csv)
}

func (h *RentalHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	k, err := h.svc.KPIs(r.Context(), tenantFrom(r.Context()).ID)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, k)
}
