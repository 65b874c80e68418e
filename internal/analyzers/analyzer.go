package analyzers

import (
	"sort"

	"github.com/KaramelBytes/dataspot-cli/models"
)

const topValueLimit = 10

// Analyzer layers dataset statistics, per-field distributions and insight
// summaries on top of the finder's pattern search.
type Analyzer struct {
	Base
}

// NewAnalyzer returns an Analyzer sharing the given preprocessing context.
func NewAnalyzer(prep map[string]models.Preprocessor) *Analyzer {
	return &Analyzer{Base: Base{Preprocessors: prep}}
}

// Execute analyzes data and returns patterns together with statistics,
// insights and field distributions.
func (a *Analyzer) Execute(input models.AnalyzeInput, opts models.AnalyzeOptions) (*models.AnalyzeOutput, error) {
	found, err := NewFinder(a.Preprocessors).Execute(
		models.FindInput{Data: input.Data, Fields: input.Fields, Query: input.Query},
		analyzeFindOptions(opts),
	)
	if err != nil {
		return nil, err
	}

	total := len(input.Data)
	filtered := total
	if len(input.Query) > 0 {
		filtered = len(a.FilterByQuery(input.Data, input.Query))
	}
	ratio := 0.0
	if total > 0 {
		ratio = round2(float64(filtered) / float64(total) * 100)
	}

	maxConc, avgConc := concentrationSummary(found.Patterns)

	top := found.Patterns
	if len(top) > 5 {
		top = top[:5]
	}

	return &models.AnalyzeOutput{
		Patterns: found.Patterns,
		Statistics: models.Statistics{
			TotalRecords:     total,
			FilteredRecords:  filtered,
			FilterRatio:      ratio,
			PatternsFound:    len(found.Patterns),
			MaxConcentration: maxConc,
			AvgConcentration: avgConc,
		},
		Insights: models.Insights{
			PatternsFound:             len(found.Patterns),
			MaxConcentration:          maxConc,
			AvgConcentration:          avgConc,
			ConcentrationDistribution: concentrationDistribution(found.Patterns),
		},
		FieldStats:     a.fieldDistributions(input.Data, input.Fields),
		TopPatterns:    top,
		FieldsAnalyzed: input.Fields,
	}, nil
}

func concentrationSummary(patterns []models.Pattern) (maxConc, avgConc float64) {
	if len(patterns) == 0 {
		return 0, 0
	}
	var sum float64
	for _, p := range patterns {
		if p.Percentage > maxConc {
			maxConc = p.Percentage
		}
		sum += p.Percentage
	}
	return maxConc, round2(sum / float64(len(patterns)))
}

// concentrationDistribution describes the landscape of the findings: are
// the strong concentrations dominant or is signal spread thin?
func concentrationDistribution(patterns []models.Pattern) string {
	if len(patterns) == 0 {
		return "No patterns found"
	}
	high, medium := 0, 0
	for _, p := range patterns {
		switch {
		case p.Percentage >= 50:
			high++
		case p.Percentage >= 20:
			medium++
		}
	}
	total := float64(len(patterns))
	switch {
	case float64(high)/total > 0.3:
		return "High concentration patterns dominant"
	case float64(medium)/total > 0.5:
		return "Moderate concentration patterns"
	default:
		return "Low concentration patterns prevalent"
	}
}

// fieldDistributions profiles each analyzed field over the full dataset:
// null share, cardinality and the most frequent values after preprocessing.
func (a *Analyzer) fieldDistributions(data []models.Record, fields []string) []models.FieldStats {
	stats := make([]models.FieldStats, 0, len(fields))
	for _, field := range fields {
		counts := make(map[string]int)
		var order []string
		nulls := 0
		for _, r := range data {
			v, ok := r[field]
			if !ok || v == nil {
				nulls++
				continue
			}
			key := a.fieldValue(r, field)
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}

		tops := make([]models.ValueCount, 0, len(order))
		for _, key := range order {
			tops = append(tops, models.ValueCount{Value: key, Count: counts[key]})
		}
		sort.SliceStable(tops, func(i, j int) bool {
			if tops[i].Count != tops[j].Count {
				return tops[i].Count > tops[j].Count
			}
			return tops[i].Value < tops[j].Value
		})
		totalValues := len(data) - nulls
		unique := len(counts)
		if len(tops) > topValueLimit {
			tops = tops[:topValueLimit]
		}
		stats = append(stats, models.FieldStats{
			Field:        field,
			TotalValues:  totalValues,
			NullValues:   nulls,
			UniqueValues: unique,
			TopValues:    tops,
		})
	}
	return stats
}

func analyzeFindOptions(opts models.AnalyzeOptions) models.FindOptions {
	return models.FindOptions{
		MinPercentage: opts.MinPercentage,
		MaxPercentage: opts.MaxPercentage,
		MinCount:      opts.MinCount,
		MaxCount:      opts.MaxCount,
		MinDepth:      opts.MinDepth,
		MaxDepth:      opts.MaxDepth,
		Contains:      opts.Contains,
		Exclude:       opts.Exclude,
		Regex:         opts.Regex,
		Limit:         opts.Limit,
		SortBy:        opts.SortBy,
		Reverse:       opts.Reverse,
	}
}
