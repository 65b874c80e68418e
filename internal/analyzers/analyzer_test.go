package analyzers

import (
	"testing"

	"github.com/KaramelBytes/dataspot-cli/models"
)

func TestAnalyzeStatistics(t *testing.T) {
	out, err := NewAnalyzer(nil).Execute(
		models.AnalyzeInput{Data: visitRecords(), Fields: []string{"country", "device"}},
		models.AnalyzeOptions{},
	)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	s := out.Statistics
	if s.TotalRecords != 6 || s.FilteredRecords != 6 || s.FilterRatio != 100.0 {
		t.Fatalf("statistics = %+v", s)
	}
	if s.PatternsFound != 5 {
		t.Fatalf("patterns found = %d, want 5", s.PatternsFound)
	}
	if s.MaxConcentration != 83.33 {
		t.Fatalf("max concentration = %v", s.MaxConcentration)
	}
	// (83.33 + 50 + 33.33 + 16.67 + 16.67) / 5
	if s.AvgConcentration != 40.0 {
		t.Fatalf("avg concentration = %v", s.AvgConcentration)
	}
	if len(out.TopPatterns) != 5 {
		t.Fatalf("top patterns = %d", len(out.TopPatterns))
	}
	if out.Insights.ConcentrationDistribution == "" {
		t.Fatal("no concentration distribution")
	}
}

func TestAnalyzeFilterRatio(t *testing.T) {
	out, err := NewAnalyzer(nil).Execute(
		models.AnalyzeInput{
			Data:   visitRecords(),
			Fields: []string{"device"},
			Query:  models.Query{"country": "EU"},
		},
		models.AnalyzeOptions{},
	)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	s := out.Statistics
	if s.TotalRecords != 6 || s.FilteredRecords != 1 || s.FilterRatio != 16.67 {
		t.Fatalf("statistics = %+v", s)
	}
}

func TestAnalyzeFieldDistributions(t *testing.T) {
	data := []models.Record{
		{"country": "US"},
		{"country": "US"},
		{"country": "EU"},
		{"country": nil},
		{},
	}
	out, err := NewAnalyzer(nil).Execute(
		models.AnalyzeInput{Data: data, Fields: []string{"country"}},
		models.AnalyzeOptions{},
	)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(out.FieldStats) != 1 {
		t.Fatalf("field stats = %+v", out.FieldStats)
	}
	fs := out.FieldStats[0]
	if fs.Field != "country" || fs.TotalValues != 3 || fs.NullValues != 2 || fs.UniqueValues != 2 {
		t.Fatalf("country stats = %+v", fs)
	}
	if len(fs.TopValues) != 2 || fs.TopValues[0].Value != "US" || fs.TopValues[0].Count != 2 {
		t.Fatalf("top values = %+v", fs.TopValues)
	}
}

func TestAnalyzeEmptyData(t *testing.T) {
	out, err := NewAnalyzer(nil).Execute(
		models.AnalyzeInput{Data: nil, Fields: []string{"country"}},
		models.AnalyzeOptions{},
	)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if out.Statistics.TotalRecords != 0 || out.Statistics.FilterRatio != 0 {
		t.Fatalf("statistics = %+v", out.Statistics)
	}
	if out.Insights.ConcentrationDistribution != "No patterns found" {
		t.Fatalf("distribution = %q", out.Insights.ConcentrationDistribution)
	}
}

func TestConcentrationDistributionBands(t *testing.T) {
	high := []models.Pattern{{Percentage: 80}, {Percentage: 60}, {Percentage: 10}}
	if got := concentrationDistribution(high); got != "High concentration patterns dominant" {
		t.Fatalf("high band = %q", got)
	}
	medium := []models.Pattern{{Percentage: 30}, {Percentage: 25}, {Percentage: 40}, {Percentage: 5}}
	if got := concentrationDistribution(medium); got != "Moderate concentration patterns" {
		t.Fatalf("medium band = %q", got)
	}
	low := []models.Pattern{{Percentage: 5}, {Percentage: 3}, {Percentage: 2}, {Percentage: 8}}
	if got := concentrationDistribution(low); got != "Low concentration patterns prevalent" {
		t.Fatalf("low band = %q", got)
	}
}
