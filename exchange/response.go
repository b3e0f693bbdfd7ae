package exchange

import "net/http"

//
// Response generically provides an interface to an object that represents a response from a call to
// an exchange's API endpoint.
//
type Response interface {

	//
	// Raw provides the raw HTTP response from the endpoint call that was made. Its body has already
	// been consumed.
	//
	Raw() *http.Response

	//
	// Body provides the undecoded response payload.
	//
	Body() []byte

	//
	// Envelope provides the decoded response payload exactly as it was received. Every numeric
	// literal in it is a decimal.Decimal.
	//
	Envelope() interface{}

	//
	// Success reports the "success" flag of the envelope. A payload that is not an object, or that
	// lacks the flag, is never successful.
	//
	Success() bool

	//
	// Message provides the "message" field of the envelope (if there was one).
	//
	Message() string

	//
	// Result provides the operation-specific "result" field of the envelope (if there was one).
	//
	Result() interface{}

	//
	// Err returns the API error described by the envelope, or nil if the envelope reports success.
	//
	Err() APIError

	//
	// Candles provides a slice of the candles returned from the endpoint call that was made (if there
	// were any).
	//
	Candles() []Candle
}
