package bittrex

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/lukehollenback/bittrex/exchange"
	"github.com/sirupsen/logrus"
)

var _ exchange.Client = (*Client)(nil)

//
// Client implements the exchange.Client interface for the Bittrex API. Credentials are fixed for the
// lifetime of the client. It is safe for concurrent use.
//
type Client struct {
	apiKey     string
	apiSecret  string
	host       string
	httpClient *resty.Client
	nonces     *nonceSource
	logger     logrus.FieldLogger
}

//
// Option customizes a client as it is constructed.
//
type Option func(*clientOptions)

type clientOptions struct {
	host       string
	httpClient *http.Client
	logger     logrus.FieldLogger
	clock      func() time.Time
}

//
// WithHost points the client at a different scheme and host (e.g. a test server). An empty host
// leaves the default in place.
//
func WithHost(host string) Option {
	return func(o *clientOptions) {
		if host = strings.TrimSuffix(host, "/"); host != "" {
			o.host = host
		}
	}
}

//
// WithHTTPClient supplies the underlying HTTP client. Its timeout (if any) is the only one applied.
// The client is copied and its cookie jar (if any) is not used.
//
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

//
// WithClock replaces the wall clock that nonces are derived from.
//
func WithClock(clock func() time.Time) Option {
	return func(o *clientOptions) {
		o.clock = clock
	}
}

//
// NewClient instantiates a client using the provided API key and secret. Either may be empty, in
// which case authenticated operations will simply be rejected by the exchange.
//
func NewClient(key string, secret string, opts ...Option) *Client {
	cfg := &clientOptions{
		host:   DefaultHost,
		logger: logrus.WithField("exchange", "bittrex"),
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	var httpClient *resty.Client
	if cfg.httpClient != nil {
		hc := *cfg.httpClient
		httpClient = resty.NewWithClient(&hc)
	} else {
		httpClient = resty.New()
	}

	// NOTE ~> Every call stands alone. Cookies the exchange (or a proxy in front of it) hands out are
	//         never replayed on later calls.
	httpClient.SetCookieJar(nil)

	httpClient.SetLogger(cfg.logger)

	return &Client{
		apiKey:     key,
		apiSecret:  secret,
		host:       cfg.host,
		httpClient: httpClient,
		nonces:     newNonceSource(cfg.clock),
		logger:     cfg.logger,
	}
}

//
// Dispatch implements the exchange.Client interface's described method. Exactly one GET request is
// made per call and it is never retried. The provided context is the only deadline applied.
//
func (o *Client) Dispatch(ctx context.Context, operation string, params *exchange.Params) (exchange.Response, error) {
	resp, err := o.dispatch(ctx, operation, params)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

//
// RetrieveCandles implements the exchange.Client interface's described method using the v2.0 tick
// endpoint. Candles are only parsed out of successful envelopes.
//
func (o *Client) RetrieveCandles(
	ctx context.Context,
	market string,
	interval exchange.Interval,
) (exchange.Response, error) {
	resp, err := o.dispatch(ctx, OpGetTicks, tickParams(market, interval))
	if err != nil {
		return nil, err
	}

	if !resp.Success() {
		return resp, nil
	}

	candles, err := parseCandles(resp.Result())
	if err != nil {
		return resp, exchange.NewDecodeError(OpGetTicks, err)
	}

	resp.candles = candles

	return resp, nil
}

//
// dispatch builds, signs, and sends the request for the provided operation and decodes whatever
// comes back.
//
func (o *Client) dispatch(ctx context.Context, operation string, params *exchange.Params) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	//
	// Build and sign the request URL. Unknown operations never leave the process.
	//
	req, err := o.buildRequest(operation, params)
	if err != nil {
		o.logger.WithField("operation", operation).Warn("Refusing to dispatch unknown operation.")

		return nil, err
	}

	log := o.logger.WithFields(logrus.Fields{
		"operation": operation,
		"family":    req.family.String(),
		"path":      req.path,
	})

	log.Debug("Dispatching request.")

	//
	// Make the endpoint request.
	//
	start := time.Now()

	resp, err := o.httpClient.R().
		SetContext(ctx).
		SetHeader(APISignHeader, req.signature).
		Get(req.url)
	if err != nil {
		log.WithError(err).Debug("Request failed.")

		return nil, exchange.NewTransportError(operation, err)
	}

	log = log.WithFields(logrus.Fields{
		"status":  resp.StatusCode(),
		"elapsed": time.Since(start),
	})

	//
	// Make sure the status code was valid.
	//
	if !resp.IsSuccess() {
		log.Debug("Server rejected request.")

		return nil, exchange.NewHTTPError(operation, resp.StatusCode(), resp.Body())
	}

	//
	// Decode the payload.
	//
	envelope, err := decodeJSON(resp.Body())
	if err != nil {
		log.WithError(err).Debug("Response was not decodable.")

		return nil, exchange.NewDecodeError(operation, err)
	}

	wrappedResp := &Response{
		response: resp.RawResponse,
		body:     resp.Body(),
		envelope: envelope,
	}

	log.WithField("success", wrappedResp.Success()).Debug("Received response.")

	return wrappedResp, nil
}
