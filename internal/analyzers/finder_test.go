package analyzers

import (
	"errors"
	"strings"
	"testing"

	"github.com/KaramelBytes/dataspot-cli/models"
)

func visitRecords() []models.Record {
	return []models.Record{
		{"country": "US", "device": "mobile"},
		{"country": "US", "device": "mobile"},
		{"country": "US", "device": "mobile"},
		{"country": "US", "device": "desktop"},
		{"country": "US", "device": "desktop"},
		{"country": "EU", "device": "mobile"},
	}
}

func TestFindConcentrations(t *testing.T) {
	out, err := NewFinder(nil).Execute(
		models.FindInput{Data: visitRecords(), Fields: []string{"country", "device"}},
		models.FindOptions{},
	)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if out.TotalRecords != 6 {
		t.Fatalf("total records = %d, want 6", out.TotalRecords)
	}

	wantPaths := []string{
		"country=US",
		"country=US > device=mobile",
		"country=US > device=desktop",
		"country=EU",
		"country=EU > device=mobile",
	}
	if len(out.Patterns) != len(wantPaths) {
		t.Fatalf("got %d patterns, want %d", len(out.Patterns), len(wantPaths))
	}
	for i, want := range wantPaths {
		if out.Patterns[i].Path != want {
			t.Fatalf("pattern %d path = %q, want %q", i, out.Patterns[i].Path, want)
		}
	}

	top := out.Patterns[0]
	if top.Count != 5 || top.Percentage != 83.33 || top.Depth != 1 {
		t.Fatalf("top pattern = %+v", top)
	}
	mobile := out.Patterns[1]
	if mobile.Count != 3 || mobile.Percentage != 50.0 || mobile.Depth != 2 {
		t.Fatalf("us-mobile pattern = %+v", mobile)
	}
	if len(top.Samples) != 3 {
		t.Fatalf("top samples = %d, want 3", len(top.Samples))
	}
}

func TestFindEmptyData(t *testing.T) {
	out, err := NewFinder(nil).Execute(
		models.FindInput{Data: nil, Fields: []string{"country"}},
		models.FindOptions{},
	)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if out.TotalRecords != 0 || len(out.Patterns) != 0 {
		t.Fatalf("empty data output = %+v", out)
	}
}

func TestFindEmptyFields(t *testing.T) {
	out, err := NewFinder(nil).Execute(
		models.FindInput{Data: visitRecords()},
		models.FindOptions{},
	)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(out.Patterns) != 0 || out.TotalRecords != 6 {
		t.Fatalf("empty fields output = %+v", out)
	}
}

func TestFindNilRecord(t *testing.T) {
	_, err := NewFinder(nil).Execute(
		models.FindInput{Data: []models.Record{{"a": 1}, nil}, Fields: []string{"a"}},
		models.FindOptions{},
	)
	var derr *DataError
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want DataError", err)
	}
}

func TestFindQueryPrefilter(t *testing.T) {
	out, err := NewFinder(nil).Execute(
		models.FindInput{
			Data:   visitRecords(),
			Fields: []string{"country"},
			Query:  models.Query{"country": "US"},
		},
		models.FindOptions{},
	)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if out.TotalRecords != 5 {
		t.Fatalf("total records = %d, want 5", out.TotalRecords)
	}
	// Percentages are relative to the filtered total
	if out.Patterns[0].Path != "country=US" || out.Patterns[0].Percentage != 100.0 {
		t.Fatalf("pattern = %+v", out.Patterns[0])
	}
}

func TestFindMissingValueGroupsAsEmpty(t *testing.T) {
	data := []models.Record{
		{"country": "US", "device": "mobile"},
		{"country": "US"},
	}
	out, err := NewFinder(nil).Execute(
		models.FindInput{Data: data, Fields: []string{"country", "device"}},
		models.FindOptions{},
	)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	found := false
	for _, p := range out.Patterns {
		if strings.HasSuffix(p.Path, "device=") {
			found = true
			if p.Count != 1 {
				t.Fatalf("missing-value pattern = %+v", p)
			}
		}
	}
	if !found {
		t.Fatal("no empty-value branch for missing device")
	}
}

func TestFindWithPreprocessor(t *testing.T) {
	f := NewFinder(map[string]models.Preprocessor{
		"country": func(v any) any { return strings.ToLower(Stringify(v)) },
	})
	out, err := f.Execute(
		models.FindInput{
			Data:   []models.Record{{"country": "US"}, {"country": "us"}},
			Fields: []string{"country"},
		},
		models.FindOptions{},
	)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(out.Patterns) != 1 || out.Patterns[0].Path != "country=us" || out.Patterns[0].Count != 2 {
		t.Fatalf("patterns = %+v", out.Patterns)
	}
}
