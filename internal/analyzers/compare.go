package analyzers

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/dataspot-cli/models"
)

const (
	defaultChangeThreshold = 0.15
	// newPatternCountFloor judges significance for brand-new patterns,
	// where no relative change exists. Kept exactly as observed even
	// though it is an absolute floor among relative thresholds.
	newPatternCountFloor = 5
	// infChangeSortValue stands in for an infinite change percentage when
	// ordering changes by magnitude.
	infChangeSortValue = 1000
)

// Compare diffs two datasets over the same field hierarchy and classifies
// every pattern path by how much it moved.
type Compare struct {
	Base
	stats Stats
}

// NewCompare returns a Compare sharing the given preprocessing context.
func NewCompare(prep map[string]models.Preprocessor) *Compare {
	return &Compare{Base: Base{Preprocessors: prep}}
}

// Execute compares current data against baseline. The two pattern searches
// are independent and run concurrently.
func (c *Compare) Execute(input models.CompareInput, opts models.CompareOptions) (*models.CompareOutput, error) {
	if err := c.ValidateRecords(input.CurrentData); err != nil {
		return nil, err
	}
	if err := c.ValidateRecords(input.BaselineData); err != nil {
		return nil, err
	}

	threshold := opts.ChangeThreshold
	if threshold == 0 {
		threshold = defaultChangeThreshold
	}

	var current, baseline *models.FindOutput
	var g errgroup.Group
	g.Go(func() error {
		out, err := c.patternsFor(input.CurrentData, input, opts)
		current = out
		return err
	})
	g.Go(func() error {
		out, err := c.patternsFor(input.BaselineData, input, opts)
		baseline = out
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	changes := c.diffPatterns(current.Patterns, baseline.Patterns, threshold, opts.StatisticalSignificance)

	significant := 0
	for _, ch := range changes {
		if ch.IsSignificant {
			significant++
		}
	}

	out := &models.CompareOutput{
		Changes: changes,
		Statistics: models.ComparisonStatistics{
			CurrentTotal:       len(input.CurrentData),
			BaselineTotal:      len(input.BaselineData),
			PatternsCompared:   len(changes),
			SignificantChanges: significant,
		},
		FieldsAnalyzed:          input.Fields,
		ChangeThreshold:         threshold,
		StatisticalSignificance: opts.StatisticalSignificance,
	}
	categorize(out)
	return out, nil
}

func (c *Compare) patternsFor(data []models.Record, input models.CompareInput, opts models.CompareOptions) (*models.FindOutput, error) {
	return NewFinder(c.Preprocessors).Execute(
		models.FindInput{Data: data, Fields: input.Fields, Query: input.Query},
		compareFindOptions(opts),
	)
}

// diffPatterns builds one ChangeItem per path in the union of both pattern
// sets. Paths only in the baseline count as 0 in the current period and
// vice versa.
func (c *Compare) diffPatterns(current, baseline []models.Pattern, threshold float64, withStats bool) []models.ChangeItem {
	curByPath := indexByPath(current)
	baseByPath := indexByPath(baseline)

	// Union in a stable order: current patterns first, then baseline-only.
	paths := make([]string, 0, len(current)+len(baseline))
	for _, p := range current {
		paths = append(paths, p.Path)
	}
	for _, p := range baseline {
		if _, ok := curByPath[p.Path]; !ok {
			paths = append(paths, p.Path)
		}
	}

	changes := make([]models.ChangeItem, 0, len(paths))
	for _, path := range paths {
		cur, inCurrent := curByPath[path]
		base, inBaseline := baseByPath[path]

		countChange := cur.Count - base.Count
		var countChangePct, relativeChange float64
		switch {
		case base.Count > 0:
			countChangePct = float64(countChange) / float64(base.Count) * 100
			relativeChange = float64(countChange) / float64(base.Count)
		case cur.Count > 0:
			countChangePct = math.Inf(1)
			relativeChange = math.Inf(1)
		}

		isSignificant := false
		if math.IsInf(relativeChange, 1) {
			isSignificant = cur.Count > newPatternCountFloor
		} else {
			isSignificant = math.Abs(relativeChange) >= threshold
		}

		depth := cur.Depth
		if !inCurrent {
			depth = base.Depth
		}

		var sig *models.SignificanceResult
		if withStats && cur.Count > 0 && base.Count > 0 {
			sig = c.stats.Compare(cur.Count, base.Count)
		}

		changes = append(changes, models.ChangeItem{
			Path:                    path,
			CurrentCount:            cur.Count,
			BaselineCount:           base.Count,
			CountChange:             countChange,
			CountChangePercentage:   countChangePct,
			RelativeChange:          relativeChange,
			CurrentPercentage:       cur.Percentage,
			BaselinePercentage:      base.Percentage,
			PercentageChange:        round2(cur.Percentage - base.Percentage),
			Status:                  changeStatus(countChangePct),
			IsNew:                   !inBaseline,
			IsDisappeared:           !inCurrent,
			IsSignificant:           isSignificant,
			Depth:                   depth,
			StatisticalSignificance: sig,
		})
	}

	// Significant changes first, then by change magnitude descending.
	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].IsSignificant != changes[j].IsSignificant {
			return changes[i].IsSignificant
		}
		return changeMagnitude(changes[i]) > changeMagnitude(changes[j])
	})
	return changes
}

func indexByPath(patterns []models.Pattern) map[string]models.Pattern {
	byPath := make(map[string]models.Pattern, len(patterns))
	for _, p := range patterns {
		byPath[p.Path] = p
	}
	return byPath
}

func changeMagnitude(c models.ChangeItem) float64 {
	if math.IsInf(c.CountChangePercentage, 0) {
		return infChangeSortValue
	}
	return math.Abs(c.CountChangePercentage)
}

// changeStatus thresholds the percentage count change against a fixed
// descending ladder. An infinite change is always NEW.
func changeStatus(changePct float64) string {
	if math.IsInf(changePct, 1) {
		return models.StatusNew
	}
	ladder := []struct {
		threshold float64
		status    string
	}{
		{200, models.StatusCriticalIncrease},
		{100, models.StatusSignificantIncrease},
		{50, models.StatusIncrease},
		{15, models.StatusSlightIncrease},
		{-15, models.StatusStable},
		{-50, models.StatusSlightDecrease},
		{-80, models.StatusDecrease},
		{-100, models.StatusCriticalDecrease},
	}
	for _, step := range ladder {
		if changePct >= step.threshold {
			return step.status
		}
	}
	return models.StatusDisappeared
}

// categorize fills the five non-exclusive buckets from the change list.
func categorize(out *models.CompareOutput) {
	for _, c := range out.Changes {
		if c.Status == models.StatusStable {
			out.StablePatterns = append(out.StablePatterns, c)
		}
		if c.IsNew {
			out.NewPatterns = append(out.NewPatterns, c)
		}
		if c.IsDisappeared {
			out.DisappearedPatterns = append(out.DisappearedPatterns, c)
		}
		if strings.Contains(c.Status, "INCREASE") {
			out.IncreasedPatterns = append(out.IncreasedPatterns, c)
		}
		if strings.Contains(c.Status, "DECREASE") {
			out.DecreasedPatterns = append(out.DecreasedPatterns, c)
		}
	}
}

func compareFindOptions(opts models.CompareOptions) models.FindOptions {
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
