package analyzers

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/dataspot-cli/models"
)

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"mobile", "mobile"},
		{true, "true"},
		{false, "false"},
		{7, "7"},
		{int64(42), "42"},
		{3.0, "3"},
		{2.5, "2.5"},
	}
	for _, c := range cases {
		if got := Stringify(c.in); got != c.want {
			t.Fatalf("Stringify(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAddPreprocessorValidation(t *testing.T) {
	var b Base
	if err := b.AddPreprocessor("", func(v any) any { return v }); err == nil {
		t.Fatal("expected error for empty field name")
	}
	if err := b.AddPreprocessor("country", nil); err == nil {
		t.Fatal("expected error for nil preprocessor")
	}
	if err := b.AddPreprocessor("country", func(v any) any { return "first" }); err != nil {
		t.Fatalf("register: %v", err)
	}
	// Second registration replaces the first
	if err := b.AddPreprocessor("country", func(v any) any { return "second" }); err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if got := b.fieldValue(models.Record{"country": "US"}, "country"); got != "second" {
		t.Fatalf("fieldValue = %q, want %q", got, "second")
	}
}

func TestFilterByQuery(t *testing.T) {
	var b Base
	data := []models.Record{
		{"country": "US", "device": "mobile"},
		{"country": "EU", "device": "mobile"},
		{"country": "US", "device": "desktop"},
	}

	if got := b.FilterByQuery(data, nil); len(got) != 3 {
		t.Fatalf("nil query kept %d records, want 3", len(got))
	}
	if got := b.FilterByQuery(data, models.Query{"country": "US"}); len(got) != 2 {
		t.Fatalf("scalar query kept %d records, want 2", len(got))
	}
	if got := b.FilterByQuery(data, models.Query{"device": []string{"mobile", "tablet"}}); len(got) != 2 {
		t.Fatalf("list query kept %d records, want 2", len(got))
	}
	if got := b.FilterByQuery(data, models.Query{"country": []any{"EU"}}); len(got) != 1 {
		t.Fatalf("any-list query kept %d records, want 1", len(got))
	}
	if got := b.FilterByQuery(data, models.Query{"country": "US", "device": "desktop"}); len(got) != 1 {
		t.Fatalf("conjunction kept %d records, want 1", len(got))
	}
}

func TestBuildTree(t *testing.T) {
	var b Base
	data := []models.Record{
		{"country": "US", "device": "mobile"},
		{"country": "US", "device": "mobile"},
		{"country": "US", "device": "desktop"},
		{"country": "EU", "device": "mobile"},
	}
	root := b.BuildTree(data, []string{"country", "device"})

	if root.count != 4 {
		t.Fatalf("root count = %d, want 4", root.count)
	}
	if root.id != 0 {
		t.Fatalf("root id = %d, want 0", root.id)
	}
	us := root.children["US"]
	if us == nil || us.count != 3 {
		t.Fatalf("US node = %+v, want count 3", us)
	}
	if us.label != "country=US" {
		t.Fatalf("US label = %q", us.label)
	}
	// Children sum to parent count
	sum := 0
	for _, key := range us.order {
		sum += us.children[key].count
	}
	if sum != us.count {
		t.Fatalf("US children sum %d != count %d", sum, us.count)
	}
	// First-encounter order
	if strings.Join(root.order, ",") != "US,EU" {
		t.Fatalf("root order = %v", root.order)
	}
}

func TestBuildTreeSampleLimit(t *testing.T) {
	var b Base
	var data []models.Record
	for i := 0; i < 10; i++ {
		data = append(data, models.Record{"country": "US"})
	}
	root := b.BuildTree(data, []string{"country"})
	us := root.children["US"]
	if len(us.samples) != sampleLimit {
		t.Fatalf("samples = %d, want %d", len(us.samples), sampleLimit)
	}
}
