package bittrex

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/lukehollenback/bittrex/exchange"
)

//
// signedRequest is a fully assembled request URL and the signature computed over it.
//
type signedRequest struct {
	operation string
	family    EndpointFamily
	path      string
	url       string
	signature string
}

//
// buildRequest assembles and signs the request URL for the provided operation. The layout is
//
//  {host}{base}{segment}/{operation}?[apikey={key}&nonce={nonce}&]{params}
//
// including the trailing separator when there are no params, since the exchange verifies the
// signature against the URL exactly as sent.
//
func (o *Client) buildRequest(operation string, params *exchange.Params) (*signedRequest, error) {
	family := Classify(operation)
	if family == Unknown {
		return nil, exchange.NewConfigurationError(operation, "not a known Bittrex API operation")
	}

	path := family.basePath() + family.segment() + "/" + operation

	var sb strings.Builder

	sb.WriteString(o.host)
	sb.WriteString(path)
	sb.WriteByte('?')

	if family.Authenticated() {
		sb.WriteString("apikey=")
		sb.WriteString(url.QueryEscape(o.apiKey))
		sb.WriteString("&nonce=")
		sb.WriteString(strconv.FormatInt(o.nonces.Next(), 10))
		sb.WriteByte('&')
	}

	sb.WriteString(params.Encode())

	requestURL := sb.String()

	return &signedRequest{
		operation: operation,
		family:    family,
		path:      path,
		url:       requestURL,
		signature: Sign(o.apiSecret, requestURL),
	}, nil
}
