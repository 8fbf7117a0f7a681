package views

import (
	"sort"
	"strings"

	"fleet/internal/domain"
	"fleet/internal/domain/models"
	"fleet/internal/utils"
)

// DefaultPartSort shows the most recently updated parts first.
var DefaultPartSort = domain.SortConfig{Column: "updated_at", Direction: domain.SortDesc}

// PartSort produces the sort configuration for the parts table. It does not
// reorder anything itself; see SortParts.
type PartSort struct {
	config domain.SortConfig
}

func NewPartSort() *PartSort {
	return &PartSort{config: DefaultPartSort}
}

// PartSortFrom resumes from a configuration previously handed to the client.
func PartSortFrom(cfg domain.SortConfig) *PartSort {
	if cfg.Column == "" {
		return NewPartSort()
	}
	if cfg.Direction != domain.SortDesc {
		cfg.Direction = domain.SortAsc
	}
	return &PartSort{config: cfg}
}

func (s *PartSort) Config() domain.SortConfig { return s.config }

// Sort flips the direction when column is already active, otherwise switches to
// column in ascending order.
func (s *PartSort) Sort(column string) domain.SortConfig {
	if column == s.config.Column {
		s.config = domain.SortConfig{Column: column, Direction: s.config.Direction.Flip()}
	} else {
		s.config = domain.SortConfig{Column: column, Direction: domain.SortAsc}
	}
	return s.config
}

// FilterParts keeps parts whose name, part number or category contains term (case-insensitive).
func FilterParts(parts []models.Part, term string) []models.Part {
	if term == "" {
		return parts
	}
	out := make([]models.Part, 0, len(parts))
	for _, p := range parts {
		if utils.ContainsFold(p.Name, term) ||
			utils.ContainsFold(p.PartNumber, term) ||
			utils.ContainsFold(p.Category, term) {
			out = append(out, p)
		}
	}
	return out
}

// SortParts returns a copy of parts ordered by cfg. Unknown columns keep input order.
func SortParts(parts []models.Part, cfg domain.SortConfig) []models.Part {
	out := make([]models.Part, len(parts))
	copy(out, parts)
	cmp := partComparator(cfg.Column)
	if cmp == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if cfg.Direction == domain.SortDesc {
			return cmp(out[j], out[i]) < 0
		}
		return cmp(out[i], out[j]) < 0
	})
	return out
}

func partComparator(column string) func(a, b models.Part) int {
	switch column {
	case "name":
		return func(a, b models.Part) int { return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) }
	case "part_number":
		return func(a, b models.Part) int { return strings.Compare(a.PartNumber, b.PartNumber) }
	case "category":
		return func(a, b models.Part) int { return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category)) }
	case "quantity":
		return func(a, b models.Part) int { return a.Quantity - b.Quantity }
	case "unit_price":
		return func(a, b models.Part) int {
			switch {
			case a.UnitPrice < b.UnitPrice:
				return -1
			case a.UnitPrice > b.UnitPrice:
				return 1
			}
			return 0
		}
	case "created_at":
		return func(a, b models.Part) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case "updated_at":
		return func(a, b models.Part) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	}
	return nil
}
