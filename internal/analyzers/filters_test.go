package analyzers

import (
	"errors"
	"testing"

	"github.com/KaramelBytes/dataspot-cli/models"
)

func samplePatterns() []models.Pattern {
	return []models.Pattern{
		{Path: "country=US", Count: 5, Percentage: 83.33, Depth: 1},
		{Path: "country=US > device=mobile", Count: 3, Percentage: 50.0, Depth: 2},
		{Path: "country=US > device=desktop", Count: 2, Percentage: 33.33, Depth: 2},
		{Path: "country=EU", Count: 1, Percentage: 16.67, Depth: 1},
	}
}

func TestValidateOptionsRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		opts models.FindOptions
	}{
		{"negative min percentage", models.FindOptions{MinPercentage: -1}},
		{"max percentage over 100", models.FindOptions{MaxPercentage: 150}},
		{"negative min count", models.FindOptions{MinCount: -1}},
		{"negative max depth", models.FindOptions{MaxDepth: -2}},
		{"negative limit", models.FindOptions{Limit: -1}},
		{"unknown sort field", models.FindOptions{SortBy: "path"}},
		{"invalid regex", models.FindOptions{Regex: "(["}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateOptions(c.opts)
			var qerr *QueryError
			if !errors.As(err, &qerr) {
				t.Fatalf("err = %v, want QueryError", err)
			}
		})
	}
}

func TestValidateOptionsAcceptsZeroValue(t *testing.T) {
	if err := ValidateOptions(models.FindOptions{}); err != nil {
		t.Fatalf("zero options: %v", err)
	}
}

func TestApplyFiltersPredicates(t *testing.T) {
	kept, err := ApplyFilters(samplePatterns(), models.FindOptions{MinPercentage: 30})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(kept) != 3 {
		t.Fatalf("min percentage kept %d, want 3", len(kept))
	}

	kept, err = ApplyFilters(samplePatterns(), models.FindOptions{Contains: "device"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(kept) != 2 {
		t.Fatalf("contains kept %d, want 2", len(kept))
	}

	kept, err = ApplyFilters(samplePatterns(), models.FindOptions{Exclude: []string{"US"}})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(kept) != 1 || kept[0].Path != "country=EU" {
		t.Fatalf("exclude kept %+v", kept)
	}

	// Regex is a partial match, no implicit anchoring
	kept, err = ApplyFilters(samplePatterns(), models.FindOptions{Regex: "device=mo"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(kept) != 1 || kept[0].Path != "country=US > device=mobile" {
		t.Fatalf("regex kept %+v", kept)
	}
}

func TestApplyFiltersConflictingBoundsMatchNothing(t *testing.T) {
	kept, err := ApplyFilters(samplePatterns(), models.FindOptions{MinCount: 10, MaxCount: 2})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(kept) != 0 {
		t.Fatalf("conflicting bounds kept %d, want 0", len(kept))
	}
}

func TestApplyFiltersSortAscendingAndLimit(t *testing.T) {
	asc := false
	kept, err := ApplyFilters(samplePatterns(), models.FindOptions{
		SortBy:  models.SortByCount,
		Reverse: &asc,
		Limit:   2,
	})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(kept) != 2 {
		t.Fatalf("limit kept %d, want 2", len(kept))
	}
	if kept[0].Count != 1 || kept[1].Count != 2 {
		t.Fatalf("ascending order = %+v", kept)
	}
}

func TestApplyFiltersDefaultSortIsPercentageDescending(t *testing.T) {
	// Feed patterns in extraction (non-sorted) order
	shuffled := []models.Pattern{
		{Path: "a", Percentage: 10},
		{Path: "b", Percentage: 90},
		{Path: "c", Percentage: 50},
	}
	kept, err := ApplyFilters(shuffled, models.FindOptions{})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if kept[0].Path != "b" || kept[1].Path != "c" || kept[2].Path != "a" {
		t.Fatalf("default order = %+v", kept)
	}
}

func TestApplyFiltersIdempotent(t *testing.T) {
	opts := models.FindOptions{MinPercentage: 30, SortBy: models.SortByPercentage}
	once, err := ApplyFilters(samplePatterns(), opts)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	twice, err := ApplyFilters(once, opts)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(once) != len(twice) {
		t.Fatalf("second application changed result: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Path != twice[i].Path {
			t.Fatalf("second application reordered: %q vs %q", once[i].Path, twice[i].Path)
		}
	}
}
