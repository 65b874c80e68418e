package dataspot

// One-shot helpers for callers that need no preprocessors.

// Find runs a pattern search on a fresh instance.
func Find(input FindInput, opts FindOptions) (*FindOutput, error) {
	return New().Find(input, opts)
}

// Analyze runs a full analysis on a fresh instance.
func Analyze(input AnalyzeInput, opts AnalyzeOptions) (*AnalyzeOutput, error) {
	return New().Analyze(input, opts)
}

// Discover runs automatic discovery on a fresh instance.
func Discover(input DiscoverInput, opts DiscoverOptions) (*DiscoverOutput, error) {
	return New().Discover(input, opts)
}

// Compare runs a comparison on a fresh instance.
func Compare(input CompareInput, opts CompareOptions) (*CompareOutput, error) {
	return New().Compare(input, opts)
}

// Tree renders a tree on a fresh instance.
func Tree(input TreeInput, opts TreeOptions) (*TreeOutput, error) {
	return New().Tree(input, opts)
}
