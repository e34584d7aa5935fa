// Package filter implements the pure view pipeline: each Apply function takes
// an entity collection and a filter configuration and returns a new ordered
// subset without mutating its input. Field filters compose with AND; nil
// fields mean "no constraint".
package filter

import (
	"strings"

	"aris-backend/internal/domain"
)

type EquipmentFilters struct {
	Type      *domain.EquipmentType
	Status    *domain.EquipmentStatus
	Location  *string
	Condition *domain.EquipmentCondition
	Search    string
}

// ApplyEquipment filters the fleet view.
func ApplyEquipment(items []domain.Equipment, f EquipmentFilters) []domain.Equipment {
	out := make([]domain.Equipment, 0, len(items))
	for _, eq := range items {
		if f.Type != nil && eq.Type != *f.Type {
			continue
		}
		if f.Status != nil && eq.Status != *f.Status {
			continue
		}
		if f.Location != nil && eq.Location != *f.Location {
			continue
		}
		if f.Condition != nil && eq.Condition != *f.Condition {
			continue
		}
		if f.Search != "" && !equipmentMatches(&eq, f.Search) {
			continue
		}
		out = append(out, eq)
	}
	return out
}

func equipmentMatches(eq *domain.Equipment, search string) bool {
	search = strings.ToLower(search)
	return containsFold(eq.Code(), search) ||
		containsFold(eq.Name, search) ||
		containsFold(string(eq.Type), search) ||
		containsFold(eq.Location, search)
}

// containsFold does a case-insensitive substring match; the needle must
// already be lowercased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
