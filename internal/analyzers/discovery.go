package analyzers

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/dataspot-cli/models"
)

const (
	defaultMaxFields       = 3
	defaultMaxCombinations = 10
	defaultMinPercentage   = 10
	// scoringMinPercentage is the lowered floor used when ranking single
	// fields, so weak signals still contribute to the score.
	scoringMinPercentage = 5
	fieldSampleSize      = 100
	topPatternLimit      = 20
)

// Discovery searches field combinations automatically: it detects candidate
// categorical fields, scores them individually, then fans the finder out
// over combinations within a fixed budget.
type Discovery struct {
	Base
}

// NewDiscovery returns a Discovery sharing the given preprocessing context.
func NewDiscovery(prep map[string]models.Preprocessor) *Discovery {
	return &Discovery{Base: Base{Preprocessors: prep}}
}

type fieldScore struct {
	field string
	score float64
}

// Execute discovers the most concentrated patterns without a caller-supplied
// field list.
func (d *Discovery) Execute(input models.DiscoverInput, opts models.DiscoverOptions) (*models.DiscoverOutput, error) {
	if err := d.ValidateRecords(input.Data); err != nil {
		return nil, err
	}

	data := d.FilterByQuery(input.Data, input.Query)
	if len(data) == 0 {
		return emptyDiscoverOutput(), nil
	}

	fields := d.detectCategoricalFields(data)
	scores := d.scoreFields(data, fields, opts)

	allPatterns, tried, err := d.tryCombinations(data, scores, opts)
	if err != nil {
		return nil, err
	}

	top := rankAndDeduplicate(allPatterns)
	if len(top) > topPatternLimit {
		top = top[:topPatternLimit]
	}

	ranking := make([]models.FieldRanking, len(scores))
	for i, s := range scores {
		ranking[i] = models.FieldRanking{Field: s.field, Score: s.score}
	}

	best := 0.0
	if len(top) > 0 {
		best = top[0].Percentage
	}
	return &models.DiscoverOutput{
		TopPatterns:       top,
		FieldRanking:      ranking,
		CombinationsTried: tried,
		Statistics: models.DiscoveryStatistics{
			TotalRecords:       len(data),
			FieldsAnalyzed:     len(fields),
			CombinationsTried:  len(tried),
			PatternsDiscovered: len(top),
			BestConcentration:  best,
		},
		FieldsAnalyzed: fields,
	}, nil
}

func emptyDiscoverOutput() *models.DiscoverOutput {
	return &models.DiscoverOutput{
		TopPatterns:       []models.Pattern{},
		FieldRanking:      []models.FieldRanking{},
		CombinationsTried: []models.CombinationTried{},
		FieldsAnalyzed:    []string{},
	}
}

// detectCategoricalFields samples up to 100 records and keeps the fields
// whose value distribution looks categorical: some variation, but not
// near-unique like identifier columns. First-seen field order is preserved
// so discovery runs are deterministic.
func (d *Discovery) detectCategoricalFields(data []models.Record) []string {
	sample := data
	if len(sample) > fieldSampleSize {
		sample = sample[:fieldSampleSize]
	}

	seen := make(map[string]bool)
	var fields []string
	for _, r := range sample {
		for field := range r {
			if !seen[field] {
				seen[field] = true
				fields = append(fields, field)
			}
		}
	}
	// Record maps iterate in random order; re-derive a stable field order.
	ordered := fieldsInFirstSeenOrder(sample, fields)

	var categorical []string
	for _, field := range ordered {
		if suitableForAnalysis(sample, field) {
			categorical = append(categorical, field)
		}
	}
	return categorical
}

// fieldsInFirstSeenOrder re-derives a deterministic field order: fields are
// ranked by the index of the first sampled record containing them, then by
// name among fields introduced by the same record.
func fieldsInFirstSeenOrder(sample []models.Record, fields []string) []string {
	firstAt := make(map[string]int, len(fields))
	for _, f := range fields {
		firstAt[f] = len(sample)
	}
	for i, r := range sample {
		for f := range r {
			if i < firstAt[f] {
				firstAt[f] = i
			}
		}
	}
	ordered := append([]string(nil), fields...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if firstAt[ordered[i]] != firstAt[ordered[j]] {
			return firstAt[ordered[i]] < firstAt[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})
	return ordered
}

func suitableForAnalysis(sample []models.Record, field string) bool {
	var total int
	distinct := make(map[string]bool)
	for _, r := range sample {
		v, ok := r[field]
		if !ok || v == nil {
			continue
		}
		total++
		distinct[Stringify(v)] = true
	}
	if total < 2 || len(distinct) <= 1 {
		return false
	}
	// Tiny samples: any variation at all is enough.
	if total <= 5 {
		return len(distinct) >= 2
	}
	unique := float64(len(distinct))
	return unique <= float64(total)*0.8 && unique/float64(total) < 0.95
}

// scoreFields runs a single-field finder per candidate and scores the
// resulting patterns. Scoring calls are independent and read-only over the
// same records, so they fan out on an errgroup; a failing field scores 0
// and stays in the ranking rather than aborting the run.
func (d *Discovery) scoreFields(data []models.Record, fields []string, opts models.DiscoverOptions) []fieldScore {
	scores := make([]fieldScore, len(fields))
	var g errgroup.Group
	for i, field := range fields {
		i, field := i, field
		g.Go(func() error {
			out, err := NewFinder(d.Preprocessors).Execute(
				models.FindInput{Data: data, Fields: []string{field}},
				discoverFindOptions(opts, scoringMinPercentage),
			)
			if err != nil {
				scores[i] = fieldScore{field: field, score: 0}
				return nil
			}
			scores[i] = fieldScore{field: field, score: calculateFieldScore(out.Patterns)}
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	return scores
}

// calculateFieldScore weighs the strongest concentration, the number of
// significant (>=10%) patterns, and overall pattern diversity.
func calculateFieldScore(patterns []models.Pattern) float64 {
	if len(patterns) == 0 {
		return 0
	}
	var maxPct float64
	significant := 0
	for _, p := range patterns {
		if p.Percentage > maxPct {
			maxPct = p.Percentage
		}
		if p.Percentage >= 10 {
			significant++
		}
	}
	return maxPct*0.5 + float64(significant)*5 + float64(len(patterns))*0.5
}

// tryCombinations analyzes the top-scored fields individually, then all
// combinations of sizes 2..maxFields, executing at most maxCombinations per
// size. Attempts run concurrently; results merge in attempt order so the
// outcome is deterministic.
func (d *Discovery) tryCombinations(data []models.Record, scores []fieldScore, opts models.DiscoverOptions) ([]models.Pattern, []models.CombinationTried, error) {
	maxFields := opts.MaxFields
	if maxFields <= 0 {
		maxFields = defaultMaxFields
	}
	maxCombos := opts.MaxCombinations
	if maxCombos <= 0 {
		maxCombos = defaultMaxCombinations
	}

	candidateCount := maxFields + 2
	if candidateCount > len(scores) {
		candidateCount = len(scores)
	}
	candidates := make([]string, candidateCount)
	for i := 0; i < candidateCount; i++ {
		candidates[i] = scores[i].field
	}

	var fieldLists [][]string
	singles := maxFields
	if singles > len(candidates) {
		singles = len(candidates)
	}
	for _, f := range candidates[:singles] {
		fieldLists = append(fieldLists, []string{f})
	}
	for size := 2; size <= maxFields && size <= len(candidates); size++ {
		combos := combinationsOf(candidates, size)
		if len(combos) > maxCombos {
			combos = combos[:maxCombos]
		}
		fieldLists = append(fieldLists, combos...)
	}

	results := make([]*models.FindOutput, len(fieldLists))
	findOpts := discoverFindOptions(opts, resolvedMinPercentage(opts))
	var g errgroup.Group
	for i, fields := range fieldLists {
		i, fields := i, fields
		g.Go(func() error {
			out, err := NewFinder(d.Preprocessors).Execute(models.FindInput{Data: data, Fields: fields}, findOpts)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var allPatterns []models.Pattern
	tried := make([]models.CombinationTried, 0, len(fieldLists))
	for i, fields := range fieldLists {
		allPatterns = append(allPatterns, results[i].Patterns...)
		tried = append(tried, models.CombinationTried{
			Fields:        fields,
			PatternsFound: len(results[i].Patterns),
		})
	}
	return allPatterns, tried, nil
}

// combinationsOf enumerates size-k combinations of fields in lexicographic
// index order.
func combinationsOf(fields []string, k int) [][]string {
	var out [][]string
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]string, k)
		for i, j := range idx {
			combo[i] = fields[j]
		}
		out = append(out, combo)

		i := k - 1
		for i >= 0 && idx[i] == len(fields)-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// rankAndDeduplicate merges patterns from every attempt, keyed by path; the
// occurrence with the higher percentage wins. The result is sorted by
// percentage descending, first-seen order preserved for ties.
func rankAndDeduplicate(patterns []models.Pattern) []models.Pattern {
	best := make(map[string]models.Pattern)
	var order []string
	for _, p := range patterns {
		cur, ok := best[p.Path]
		if !ok {
			best[p.Path] = p
			order = append(order, p.Path)
		} else if p.Percentage > cur.Percentage {
			best[p.Path] = p
		}
	}
	out := make([]models.Pattern, 0, len(order))
	for _, path := range order {
		out = append(out, best[path])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Percentage > out[j].Percentage })
	return out
}

func resolvedMinPercentage(opts models.DiscoverOptions) float64 {
	if opts.MinPercentage <= 0 {
		return defaultMinPercentage
	}
	return opts.MinPercentage
}

func discoverFindOptions(opts models.DiscoverOptions, minPercentage float64) models.FindOptions {
	return models.FindOptions{
		MinPercentage: minPercentage,
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
