package exchange

import "fmt"

//
// HTTPError represents an error due to non-2xx response from an API endpoint. When dealing with
// cryptocurrency exchange APIs, such a response almost always means that something critically wrong
// has occurred.
//
type HTTPError struct {
	operation  string
	statusCode int
	body       []byte
}

func NewHTTPError(operation string, statusCode int, body []byte) *HTTPError {
	return &HTTPError{
		operation:  operation,
		statusCode: statusCode,
		body:       body,
	}
}

func (o *HTTPError) Operation() string {
	return o.operation
}

func (o *HTTPError) StatusCode() int {
	return o.statusCode
}

//
// Body returns whatever payload the server sent along with the failing status code.
//
func (o *HTTPError) Body() []byte {
	return o.body
}

func (o *HTTPError) Error() string {
	return fmt.Sprintf("%s: server responded with a %d status code", o.operation, o.statusCode)
}
