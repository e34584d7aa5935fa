package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"aris-backend/internal/domain"
	"aris-backend/internal/filter"
	"aris-backend/internal/utils"
)

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

// Unknown enum values in query filters are rejected rather than silently
// matching nothing.

func equipmentFilters(r *http.Request) (filter.EquipmentFilters, bool) {
	var f filter.EquipmentFilters
	if v := r.URL.Query().Get("type"); v != "" {
		t := domain.EquipmentType(v)
		if !t.Valid() {
			return f, false
		}
		f.Type = &t
	}
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.EquipmentStatus(v)
		if !s.Valid() {
			return f, false
		}
		f.Status = &s
	}
	if v := r.URL.Query().Get("condition"); v != "" {
		c := domain.EquipmentCondition(v)
		if !c.Valid() {
			return f, false
		}
		f.Condition = &c
	}
	f.Location = queryString(r, "location")
	f.Search = r.URL.Query().Get("search")
	return f, true
}

func rentalFilters(r *http.Request) (filter.RentalFilters, bool) {
	var f filter.RentalFilters
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.RentalStatus(v)
		if !s.Valid() {
			return f, false
		}
		f.Status = &s
	}
	if v := r.URL.Query().Get("date_range"); v != "" {
		w := utils.DateWindow(v)
		if !w.Valid() {
			return f, false
		}
		f.DateRange = &w
	}
	if v := r.URL.Query().Get("equipment_type"); v != "" {
		t := domain.EquipmentType(v)
		if !t.Valid() {
			return f, false
		}
		et := string(t)
		f.EquipmentType = &et
	}
	f.Customer = queryString(r, "customer")
	f.Search = r.URL.Query().Get("search")
	return f, true
}

func customerFilters(r *http.Request) (filter.CustomerFilters, bool) {
	var f filter.CustomerFilters
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.CustomerStatus(v)
		if !s.Valid() {
			return f, false
		}
		f.Status = &s
	}
	if v := r.URL.Query().Get("type"); v != "" {
		t := domain.CustomerType(v)
		if !t.Valid() {
			return f, false
		}
		f.Type = &t
	}
	if v := r.URL.Query().Get("sort"); v != "" {
		s := filter.CustomerSort(v)
		if !s.Valid() {
			return f, false
		}
		f.Sort = &s
	}
	f.Search = r.URL.Query().Get("search")
	return f, true
}
