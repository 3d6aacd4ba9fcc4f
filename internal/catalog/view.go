// Package catalog derives the ordered plan listing shown by the catalog view
// from a fixed set of records and the active selection.
package catalog

import (
	"sort"

	"github.com/alexanderramin/planhub/internal/domain"
)

// View filters records by every set field of sel, then orders the survivors
// by sel.Sort. Ties keep their input order. The input slice is not modified.
func View(records []*domain.Plan, sel domain.Selection) []*domain.Plan {
	sel = sel.Normalized()

	out := make([]*domain.Plan, 0, len(records))
	for _, p := range records {
		if sel.Matches(p) {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, less(out, sel.Sort))
	return out
}

func less(plans []*domain.Plan, key domain.SortKey) func(i, j int) bool {
	switch key {
	case domain.SortRating:
		return func(i, j int) bool { return plans[i].Rating > plans[j].Rating }
	case domain.SortNewest:
		return func(i, j int) bool { return plans[i].ID > plans[j].ID }
	default:
		return func(i, j int) bool { return plans[i].ReviewCount > plans[j].ReviewCount }
	}
}

// DurationFilter is one choice of the catalog's duration filter.
type DurationFilter struct {
	Value string
	Label string
}

// DurationFilters lists the duration choices offered by the catalog view.
var DurationFilters = []DurationFilter{
	{Value: "4週", Label: "4週"},
	{Value: "5週", Label: "5週"},
	{Value: "6週", Label: "6週"},
	{Value: "7週", Label: "7週"},
	{Value: "8週", Label: "8週以上"},
}
