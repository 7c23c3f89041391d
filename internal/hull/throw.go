package hull

import "github.com/pkg/errors"

// The incremental construction keeps several invariants (every visible region
// has a horizon, every face is oriented away from the interior) that are
// awkward to thread errors through. Violations panic instead, and Compute
// recovers them into an error.

// HullError wraps the panics raised by fatalf, so that runtime errors are not
// mistaken for them.
type HullError struct {
	error
}

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError{errors.Errorf(format, args...)})
}

// HandleHullPanicRecover turns a recovered HullError back into an error, and
// re-panics anything else. The returned error is the HullError itself, so
// callers can tell a broken construction from bad input.
func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
