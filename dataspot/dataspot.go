// Package dataspot finds concentration patterns in tabular data: where do
// records pile up when grouped by successive field values?
//
// The entry point is a Dataspot instance, which carries the per-field
// preprocessor registry shared by every analysis it runs:
//
//	ds := dataspot.New()
//	out, err := ds.Find(dataspot.FindInput{Data: records, Fields: []string{"country", "device"}}, dataspot.FindOptions{})
//
// Package-level helpers (Find, Analyze, Tree, Discover, Compare) cover the
// common case of a one-shot analysis without preprocessors.
package dataspot

import (
	"github.com/KaramelBytes/dataspot-cli/internal/analyzers"
	"github.com/KaramelBytes/dataspot-cli/models"
)

// Re-exported model types so callers only import this package.
type (
	Record       = models.Record
	Query        = models.Query
	Preprocessor = models.Preprocessor
	Pattern      = models.Pattern

	FindInput   = models.FindInput
	FindOptions = models.FindOptions
	FindOutput  = models.FindOutput

	AnalyzeInput   = models.AnalyzeInput
	AnalyzeOptions = models.AnalyzeOptions
	AnalyzeOutput  = models.AnalyzeOutput

	DiscoverInput   = models.DiscoverInput
	DiscoverOptions = models.DiscoverOptions
	DiscoverOutput  = models.DiscoverOutput

	CompareInput   = models.CompareInput
	CompareOptions = models.CompareOptions
	CompareOutput  = models.CompareOutput

	TreeInput   = models.TreeInput
	TreeOptions = models.TreeOptions
	TreeOutput  = models.TreeOutput
)

// Sort field names accepted by the SortBy options.
const (
	SortByPercentage = models.SortByPercentage
	SortByCount      = models.SortByCount
	SortByDepth      = models.SortByDepth
)

// Dataspot is the analysis facade. A zero-value Dataspot is not usable; call
// New.
type Dataspot struct {
	preprocessors map[string]models.Preprocessor
}

// New returns a Dataspot with an empty preprocessor registry.
func New() *Dataspot {
	return &Dataspot{preprocessors: make(map[string]models.Preprocessor)}
}

// AddPreprocessor registers a value transform applied to the named field
// before grouping, in every analysis run from this instance. Registering a
// second preprocessor for the same field replaces the first.
func (d *Dataspot) AddPreprocessor(field string, fn Preprocessor) error {
	base := analyzers.Base{Preprocessors: d.preprocessors}
	if err := base.AddPreprocessor(field, fn); err != nil {
		return err
	}
	d.preprocessors = base.Preprocessors
	return nil
}

// Find returns the concentration patterns for the given field hierarchy.
func (d *Dataspot) Find(input FindInput, opts FindOptions) (*FindOutput, error) {
	return analyzers.NewFinder(d.preprocessors).Execute(input, opts)
}

// Analyze runs Find and layers dataset statistics, per-field distributions
// and insight summaries on top.
func (d *Dataspot) Analyze(input AnalyzeInput, opts AnalyzeOptions) (*AnalyzeOutput, error) {
	return analyzers.NewAnalyzer(d.preprocessors).Execute(input, opts)
}

// Discover finds the most concentrated patterns without a caller-supplied
// field list, detecting and ranking candidate fields automatically.
func (d *Dataspot) Discover(input DiscoverInput, opts DiscoverOptions) (*DiscoverOutput, error) {
	return analyzers.NewDiscovery(d.preprocessors).Execute(input, opts)
}

// Compare diffs current data against a baseline over the same field
// hierarchy and classifies every pattern path by how much it moved.
func (d *Dataspot) Compare(input CompareInput, opts CompareOptions) (*CompareOutput, error) {
	return analyzers.NewCompare(d.preprocessors).Execute(input, opts)
}

// Tree renders the filtered patterns as a hierarchy, keeping the top N
// branches per level.
func (d *Dataspot) Tree(input TreeInput, opts TreeOptions) (*TreeOutput, error) {
	return analyzers.NewTree(d.preprocessors).Execute(input, opts)
}
