package ideas

import "fmt"

// TransportError reports that the request never produced a response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx response from the service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

// ShapeError reports a response body that could not be decoded. Its message
// is deliberately generic; the cause is kept for logs.
type ShapeError struct {
	Err error
}

func (e *ShapeError) Error() string {
	return "An unknown error occurred"
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}
