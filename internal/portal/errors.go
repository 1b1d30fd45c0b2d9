package portal

import "fmt"

// TransportError is a failed read against the portal API: a network
// error or a non-2xx response on a GET. Reads during the main
// dashboard load are fatal to that load; per-customer reads degrade
// locally instead.
type TransportError struct {
	Endpoint   string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("portal GET %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("portal GET %s: status %d", e.Endpoint, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SubmitError is a rejected write. Body carries the portal's response
// text so the operator sees the backend's own detail.
type SubmitError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("portal POST %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}
