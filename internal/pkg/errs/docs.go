// Package errs provides the typed errors shared by the hiring backend.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsRequired, ...)
// with a struct carrying the offending parameter and an optional cause.
// Unwrap returns the sentinel, so callers classify with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return nil, nil
//	}
package errs
