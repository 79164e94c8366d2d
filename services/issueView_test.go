package services

import (
	"testing"
	"time"

	"cityvoice-be/models"
	"cityvoice-be/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIssues() []models.Issue {
	return stores.SampleIssues(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
}

func ids(issues []models.Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.ID
	}
	return out
}

func TestViewFilterCategoryAndLocation(t *testing.T) {
	view := ViewIssues(sampleIssues(),
		ViewFilter{Category: "Pothole", Location: "bangalore"},
		ViewSort{Key: SortByPriority, Order: Desc})

	got := CollectView(view)
	require.Len(t, got, 1)
	assert.Equal(t, "IS-001", got[0].ID)
}

func TestViewFilterLocationCaseInsensitive(t *testing.T) {
	tests := []struct {
		name     string
		filter   ViewFilter
		wantLen  int
	}{
		{"lowercase substring matches all", ViewFilter{Category: "all", Location: "bangalore"}, 6},
		{"uppercase substring matches all", ViewFilter{Category: "all", Location: "BANGALORE"}, 6},
		{"empty substring matches all", ViewFilter{Category: "all"}, 6},
		{"neighbourhood narrows", ViewFilter{Category: "all", Location: "hsr"}, 1},
		{"no match", ViewFilter{Category: "all", Location: "mumbai"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectView(ViewIssues(sampleIssues(), tt.filter, ViewSort{Key: SortByPriority, Order: Desc}))
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestViewSortPriorityDescToggleReverses(t *testing.T) {
	issues := sampleIssues() // priorities are all distinct
	desc := CollectView(ViewIssues(issues, ViewFilter{Category: "all"}, ViewSort{Key: SortByPriority, Order: Desc}))
	assert.Equal(t, []string{"IS-005", "IS-001", "IS-003", "IS-002", "IS-004", "IS-006"}, ids(desc))

	toggled := ToggleSort(ViewSort{Key: SortByPriority, Order: Desc}, SortByPriority)
	asc := CollectView(ViewIssues(issues, ViewFilter{Category: "all"}, toggled))

	for i := range desc {
		assert.Equal(t, desc[len(desc)-1-i].ID, asc[i].ID)
	}
}

func TestViewIdempotent(t *testing.T) {
	issues := sampleIssues()
	filter := ViewFilter{Category: "all", Location: "bangalore"}
	sort := ViewSort{Key: SortByPriority, Order: Desc}

	first := CollectView(ViewIssues(issues, filter, sort))
	second := CollectView(ViewIssues(issues, filter, sort))
	assert.Equal(t, first, second)
}

func TestViewRestartable(t *testing.T) {
	seq := ViewIssues(sampleIssues(), ViewFilter{Category: "all"}, ViewSort{Key: SortByID, Order: Asc})

	first := CollectView(seq)
	second := CollectView(seq)
	assert.Equal(t, first, second)
}

func TestViewStableOnTies(t *testing.T) {
	now := time.Now()
	issues := []models.Issue{
		{ID: "A", Location: "x", Priority: 50, CreatedAt: now},
		{ID: "B", Location: "x", Priority: 50, CreatedAt: now},
		{ID: "C", Location: "x", Priority: 50, CreatedAt: now},
	}

	got := CollectView(ViewIssues(issues, ViewFilter{Category: "all"}, ViewSort{Key: SortByPriority, Order: Desc}))
	assert.Equal(t, []string{"A", "B", "C"}, ids(got), "ties keep incoming order")
}

func TestToggleSort(t *testing.T) {
	current := ViewSort{Key: SortByPriority, Order: Desc}

	flipped := ToggleSort(current, SortByPriority)
	assert.Equal(t, ViewSort{Key: SortByPriority, Order: Asc}, flipped)

	flippedBack := ToggleSort(flipped, SortByPriority)
	assert.Equal(t, ViewSort{Key: SortByPriority, Order: Desc}, flippedBack)

	newKey := ToggleSort(flipped, SortByCreatedAt)
	assert.Equal(t, ViewSort{Key: SortByCreatedAt, Order: Desc}, newKey, "a new key starts descending")
}

func TestParseSortKey(t *testing.T) {
	key, ok := ParseSortKey("priority")
	assert.True(t, ok)
	assert.Equal(t, SortByPriority, key)

	_, ok = ParseSortKey("imageUrl")
	assert.False(t, ok)
}
