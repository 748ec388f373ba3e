package domain

import "errors"

// ErrMissingData indicates one or more of the required parallel result
// sequences (assignments, start times, durations) is absent, empty, or of
// mismatched length. A render aborts on it; there is no partial output.
var ErrMissingData = errors.New("missing required schedule data")
