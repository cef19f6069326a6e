package places

import "fmt"

// UpstreamError reports a failed call to the places-search API. StatusCode is
// zero when the upstream could not be reached at all (network error or
// timeout); otherwise it carries the HTTP status the upstream answered with,
// and Status/Message the detail from the Google error envelope when one was
// present. The API key is never included.
type UpstreamError struct {
	StatusCode int
	Status     string
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Unreachable() {
		return fmt.Sprintf("places api unreachable: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("places api error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("places api error %d", e.StatusCode)
}

// Unwrap exposes the underlying transport error, if any.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Unreachable reports whether the upstream never produced a response,
// as opposed to rejecting the request.
func (e *UpstreamError) Unreachable() bool {
	return e.StatusCode == 0
}
