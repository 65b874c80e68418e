package dataspot

import "github.com/KaramelBytes/dataspot-cli/internal/analyzers"

// Error types surfaced by the analysis engines. Callers can distinguish them
// with errors.As:
//
//	var qerr *dataspot.QueryError
//	if errors.As(err, &qerr) { ... }
type (
	// DataError indicates malformed input records.
	DataError = analyzers.DataError
	// QueryError indicates an invalid option value, raised before analysis.
	QueryError = analyzers.QueryError
	// ConfigurationError indicates invalid component wiring.
	ConfigurationError = analyzers.ConfigurationError
)
