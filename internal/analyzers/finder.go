package analyzers

import "github.com/KaramelBytes/dataspot-cli/models"

// Finder is the base analysis primitive: validate, pre-filter, build the
// concentration tree, extract patterns, filter. Every other analyzer is
// built on top of it.
type Finder struct {
	Base
}

// NewFinder returns a Finder sharing the given preprocessing context.
func NewFinder(prep map[string]models.Preprocessor) *Finder {
	return &Finder{Base: Base{Preprocessors: prep}}
}

// Execute finds concentration patterns in the input data. TotalRecords in
// the output always reflects the record count after query pre-filtering;
// percentages are relative to that total.
func (f *Finder) Execute(input models.FindInput, opts models.FindOptions) (*models.FindOutput, error) {
	if err := f.ValidateRecords(input.Data); err != nil {
		return nil, err
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}

	filtered := f.FilterByQuery(input.Data, input.Query)
	if len(input.Fields) == 0 || len(filtered) == 0 {
		return &models.FindOutput{
			Patterns:     []models.Pattern{},
			TotalRecords: len(filtered),
		}, nil
	}

	tree := f.BuildTree(filtered, input.Fields)
	patterns := ExtractPatterns(tree, len(filtered))
	kept, err := ApplyFilters(patterns, opts)
	if err != nil {
		return nil, err
	}

	return &models.FindOutput{
		Patterns:      kept,
		TotalRecords:  len(filtered),
		TotalPatterns: len(kept),
	}, nil
}
