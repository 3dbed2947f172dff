// Package monitors implements the probe for each monitor type. Every
// probe honors the deadline on its context; response times are measured
// by the caller.
package monitors

// Result is the outcome of a single probe execution. Details carries the
// type-specific raw detail (HTTP status code, port number, record type)
// used by the formatting helpers.
type Result struct {
	Success bool
	Details string
	Err     error
}

func success(details string) Result {
	return Result{Success: true, Details: details}
}

func failure(details string, err error) Result {
	return Result{Success: false, Details: details, Err: err}
}
