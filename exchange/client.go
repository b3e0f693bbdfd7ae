package exchange

import (
	"context"
)

//
// Client generically provides an interface to an object that can be used to interact with a
// cryptocurrency exchange's regular REST API. Normally, this is the client used to do things
// like place orders, check balances, and retrieve historical trade data.
//
// Whenever an endpoint fails – whether due to a configuration problem, a transport failure, an HTTP
// error, or an undecodable payload – the error component of the response will be non-nil. An API
// level failure reported inside a well-formed payload is NOT an error at this layer; it is exposed
// through Response.Err() instead.
//
type Client interface {

	//
	// Dispatch signs and sends a single request for the named operation with the provided query
	// parameters, returning the decoded response envelope. A nil parameter set is treated as empty.
	//
	Dispatch(ctx context.Context, operation string, params *Params) (Response, error)

	//
	// RetrieveCandles retrieves candles of the specified interval for the specified market.
	//
	RetrieveCandles(ctx context.Context, market string, interval Interval) (Response, error)
}
