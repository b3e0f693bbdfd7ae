package bittrex

import (
	"net/http"

	"github.com/lukehollenback/bittrex/exchange"
)

var _ exchange.Response = (*Response)(nil)

//
// Response implements the exchange.Response interface for wrapped responses from the Bittrex API.
// The envelope is handed back exactly as decoded; a "success": false payload is a normal response.
//
type Response struct {
	response *http.Response
	body     []byte
	envelope interface{}
	candles  []*Candle
}

func (o *Response) Raw() *http.Response {
	return o.response
}

func (o *Response) Body() []byte {
	return o.body
}

func (o *Response) Envelope() interface{} {
	return o.envelope
}

func (o *Response) Success() bool {
	success, _ := o.field("success").(bool)

	return success
}

func (o *Response) Message() string {
	msg, _ := o.field("message").(string)

	return msg
}

func (o *Response) Result() interface{} {
	return o.field("result")
}

func (o *Response) Err() exchange.APIError {
	if o.Success() {
		return nil
	}

	return &APIError{
		message: o.Message(),
	}
}

func (o *Response) Candles() []exchange.Candle {
	ret := make([]exchange.Candle, len(o.candles))

	for i, v := range o.candles {
		ret[i] = v
	}

	return ret
}

func (o *Response) field(name string) interface{} {
	obj, ok := o.envelope.(map[string]interface{})
	if !ok {
		return nil
	}

	return obj[name]
}
