package services

import (
	"iter"
	"sort"
	"strings"

	"cityvoice-be/models"
)

// SortKey selects the issue field a view is ordered by.
type SortKey string

const (
	SortByPriority  SortKey = "priority"
	SortByID        SortKey = "id"
	SortByCategory  SortKey = "category"
	SortByLocation  SortKey = "location"
	SortByStatus    SortKey = "status"
	SortByCreatedAt SortKey = "createdAt"
)

// ParseSortKey maps a query value to a known sort key.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByPriority, SortByID, SortByCategory, SortByLocation, SortByStatus, SortByCreatedAt:
		return SortKey(s), true
	}
	return "", false
}

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ViewSort is a sort key plus direction.
type ViewSort struct {
	Key   SortKey
	Order SortOrder
}

// ToggleSort returns the sort that results from clicking key while
// current is active: the same key flips the direction, a new key
// starts descending.
func ToggleSort(current ViewSort, key SortKey) ViewSort {
	if current.Key == key {
		if current.Order == Asc {
			return ViewSort{Key: key, Order: Desc}
		}
		return ViewSort{Key: key, Order: Asc}
	}
	return ViewSort{Key: key, Order: Desc}
}

// ViewFilter narrows a view to one category and/or a location
// substring. Category "all" or "" matches everything; the location
// match is case-insensitive.
type ViewFilter struct {
	Category string
	Location string
}

func (f ViewFilter) matches(issue models.Issue) bool {
	if f.Category != "" && f.Category != "all" && string(issue.Category) != f.Category {
		return false
	}
	return strings.Contains(strings.ToLower(issue.Location), strings.ToLower(f.Location))
}

// ViewIssues derives a display ordering from the given issues. The
// returned sequence is restartable and recomputed from scratch on
// every range, so callers always see the filter and sort applied to
// the slice they passed in. The sort is stable; ties keep their
// incoming relative order.
func ViewIssues(issues []models.Issue, filter ViewFilter, viewSort ViewSort) iter.Seq[models.Issue] {
	return func(yield func(models.Issue) bool) {
		filtered := make([]models.Issue, 0, len(issues))
		for _, issue := range issues {
			if filter.matches(issue) {
				filtered = append(filtered, issue)
			}
		}

		sort.SliceStable(filtered, func(i, j int) bool {
			cmp := compareByKey(filtered[i], filtered[j], viewSort.Key)
			if viewSort.Order == Asc {
				return cmp < 0
			}
			return cmp > 0
		})

		for _, issue := range filtered {
			if !yield(issue) {
				return
			}
		}
	}
}

// CollectView materializes a view into a slice.
func CollectView(seq iter.Seq[models.Issue]) []models.Issue {
	out := []models.Issue{}
	for issue := range seq {
		out = append(out, issue)
	}
	return out
}

func compareByKey(a, b models.Issue, key SortKey) int {
	switch key {
	case SortByPriority:
		return a.Priority - b.Priority
	case SortByID:
		return strings.Compare(a.ID, b.ID)
	case SortByCategory:
		return strings.Compare(string(a.Category), string(b.Category))
	case SortByLocation:
		return strings.Compare(a.Location, b.Location)
	case SortByStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	case SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		// Unknown key: keep the incoming order.
		return 0
	}
}
