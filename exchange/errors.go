package exchange

import "fmt"

//
// ConfigurationError represents a request that could not even be built, such as one for an
// operation that the client does not know how to route. No request is sent when it occurs.
//
type ConfigurationError struct {
	operation string
	reason    string
}

func NewConfigurationError(operation string, reason string) *ConfigurationError {
	return &ConfigurationError{
		operation: operation,
		reason:    reason,
	}
}

func (o *ConfigurationError) Operation() string {
	return o.operation
}

func (o *ConfigurationError) Error() string {
	return fmt.Sprintf("%q: %s", o.operation, o.reason)
}

//
// TransportError represents a failure to exchange a request and response with the server at all
// (DNS, connection, TLS, cancelled context, and so on).
//
type TransportError struct {
	operation string
	err       error
}

func NewTransportError(operation string, err error) *TransportError {
	return &TransportError{
		operation: operation,
		err:       err,
	}
}

func (o *TransportError) Operation() string {
	return o.operation
}

func (o *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %s", o.operation, o.err)
}

func (o *TransportError) Unwrap() error {
	return o.err
}

//
// DecodeError represents a response payload that is not valid JSON, or that contains a numeric
// literal which cannot be represented as a decimal.
//
type DecodeError struct {
	operation string
	err       error
}

func NewDecodeError(operation string, err error) *DecodeError {
	return &DecodeError{
		operation: operation,
		err:       err,
	}
}

func (o *DecodeError) Operation() string {
	return o.operation
}

func (o *DecodeError) Error() string {
	return fmt.Sprintf("%s: failed to decode response: %s", o.operation, o.err)
}

func (o *DecodeError) Unwrap() error {
	return o.err
}
