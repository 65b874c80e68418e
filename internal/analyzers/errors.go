package analyzers

import "fmt"

// DataError indicates malformed input records. It is fatal to the call and
// surfaced immediately.
type DataError struct {
	Msg string
}

func (e *DataError) Error() string { return fmt.Sprintf("invalid data: %s", e.Msg) }

// QueryError indicates an invalid option value (bad regex, unknown sort
// field, out-of-range bound). It is raised at validation time, before any
// analysis runs, so partial results never leak.
type QueryError struct {
	Msg string
	Err error
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid query options: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("invalid query options: %s", e.Msg)
}

func (e *QueryError) Unwrap() error { return e.Err }

// ConfigurationError indicates invalid component wiring, e.g. registering a
// nil preprocessor.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return fmt.Sprintf("invalid configuration: %s", e.Msg) }
