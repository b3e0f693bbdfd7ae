package bittrex

import (
	"fmt"

	"github.com/lukehollenback/bittrex/exchange"
)

var _ exchange.APIError = (*APIError)(nil)

//
// APIError implements the exchange.APIError interface for envelopes returned from Bittrex API calls
// with "success" set to false.
//
type APIError struct {
	message string
}

func (o *APIError) Message() string {
	return o.message
}

func (o *APIError) Error() string {
	msg := o.message
	if msg == "" {
		msg = "no message"
	}

	return fmt.Sprintf("the Bittrex endpoint returned an API error (message: %s)", msg)
}
