package bittrex

import (
	"context"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/lukehollenback/bittrex/exchange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method     string
	path       string
	requestURI string
	query      url.Values
	signature  string
}

//
// stubExchange is an httptest server that answers every request with a canned status and body and
// remembers what it was sent.
//
type stubExchange struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newStubExchange(t *testing.T, status int, body string) *stubExchange {
	o := &stubExchange{
		status: status,
		body:   body,
	}

	o.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o.mu.Lock()
		o.requests = append(o.requests, recordedRequest{
			method:     r.Method,
			path:       r.URL.Path,
			requestURI: r.RequestURI,
			query:      r.URL.Query(),
			signature:  r.Header.Get(APISignHeader),
		})
		o.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(o.status)
		_, _ = w.Write([]byte(o.body))
	}))

	t.Cleanup(o.Close)

	return o
}

func (o *stubExchange) recorded() []recordedRequest {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]recordedRequest(nil), o.requests...)
}

func (o *stubExchange) client(opts ...Option) *Client {
	return newTestClient(append([]Option{WithHost(o.URL)}, opts...)...)
}

func TestDispatchPublicTicker(t *testing.T) {
	stub := newStubExchange(t, http.StatusOK,
		`{"success":true,"message":"","result":{"Bid":0.00350397,"Ask":0.00351000,"Last":0.00350350}}`)

	resp, err := stub.client().Dispatch(context.Background(), "getticker", exchange.NewParams().Add("market", "BTC-LTC"))
	require.NoError(t, err)

	reqs := stub.recorded()
	require.Len(t, reqs, 1)

	assert.Equal(t, http.MethodGet, reqs[0].method)
	assert.Equal(t, "/api/v1.1/public/getticker", reqs[0].path)
	assert.Equal(t, "BTC-LTC", reqs[0].query.Get("market"))
	assert.NotContains(t, reqs[0].query, "apikey")
	assert.NotContains(t, reqs[0].query, "nonce")
	assert.Equal(t, Sign(testSecret, stub.URL+reqs[0].requestURI), reqs[0].signature)

	assert.True(t, resp.Success())
	assert.Equal(t, "", resp.Message())
	assert.Nil(t, resp.Err())

	result := resp.Result().(map[string]interface{})
	assert.True(t, result["Bid"].(decimal.Decimal).Equal(decimal.New(350397, -8)))
	assert.Equal(t, http.StatusOK, resp.Raw().StatusCode)
	assert.Contains(t, string(resp.Body()), `"Last":0.00350350`)
}

func TestDispatchSignsAuthenticatedRequestsInOrder(t *testing.T) {
	stub := newStubExchange(t, http.StatusOK, `{"success":true,"message":"","result":{"uuid":"e606d53c"}}`)

	params := exchange.NewParams().
		Add("market", "BTC-LTC").
		Add("quantity", "1.5").
		Add("rate", "0.002")

	_, err := stub.client().Dispatch(context.Background(), "buylimit", params)
	require.NoError(t, err)

	reqs := stub.recorded()
	require.Len(t, reqs, 1)

	assert.Equal(t, "/api/v1.1/market/buylimit", reqs[0].path)
	assert.Equal(t,
		"/api/v1.1/market/buylimit?apikey=0123456789abcdef&nonce=1509600000000&market=BTC-LTC&quantity=1.5&rate=0.002",
		reqs[0].requestURI,
	)
	assert.Equal(t, Sign(testSecret, stub.URL+reqs[0].requestURI), reqs[0].signature)
}

func TestDispatchSendsTheTrailingSeparatorItSigned(t *testing.T) {
	stub := newStubExchange(t, http.StatusOK, `{"success":true,"message":"","result":[]}`)

	_, err := stub.client().Dispatch(context.Background(), "getbalances", nil)
	require.NoError(t, err)

	_, err = stub.client().Dispatch(context.Background(), "getmarkets", nil)
	require.NoError(t, err)

	reqs := stub.recorded()
	require.Len(t, reqs, 2)

	assert.Equal(t, "/api/v1.1/account/getbalances?apikey=0123456789abcdef&nonce=1509600000000&", reqs[0].requestURI)
	assert.Equal(t, Sign(testSecret, stub.URL+reqs[0].requestURI), reqs[0].signature)

	assert.Equal(t, "/api/v1.1/public/getmarkets?", reqs[1].requestURI)
	assert.Equal(t, Sign(testSecret, stub.URL+reqs[1].requestURI), reqs[1].signature)
}

func TestDispatchUnknownOperationSendsNothing(t *testing.T) {
	stub := newStubExchange(t, http.StatusOK, `{"success":true}`)

	resp, err := stub.client().Dispatch(context.Background(), "bogus", nil)
	assert.Nil(t, resp)

	var cfgErr *exchange.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Empty(t, stub.recorded())
}

func TestDispatchPassesExchangeFailuresThrough(t *testing.T) {
	stub := newStubExchange(t, http.StatusOK, `{"success":false,"message":"INVALID_MARKET","result":null}`)

	resp, err := stub.client().Dispatch(context.Background(), "getticker", exchange.NewParams().Add("market", "BTC-NOPE"))
	require.NoError(t, err)

	assert.False(t, resp.Success())
	assert.Equal(t, "INVALID_MARKET", resp.Message())
	assert.Nil(t, resp.Result())

	apiErr := resp.Err()
	require.NotNil(t, apiErr)
	assert.Equal(t, "INVALID_MARKET", apiErr.Message())
	assert.Contains(t, apiErr.Error(), "INVALID_MARKET")

	envelope := resp.Envelope().(map[string]interface{})
	assert.Equal(t, false, envelope["success"])
}

func TestDispatchReportsHTTPErrors(t *testing.T) {
	stub := newStubExchange(t, http.StatusServiceUnavailable, `<html>down for maintenance</html>`)

	resp, err := stub.client().Dispatch(context.Background(), "getmarkets", nil)
	assert.Nil(t, resp)

	var httpErr *exchange.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode())
	assert.Equal(t, "getmarkets", httpErr.Operation())
	assert.Equal(t, "<html>down for maintenance</html>", string(httpErr.Body()))

	// No retries.
	assert.Len(t, stub.recorded(), 1)
}

func TestDispatchReportsDecodeErrors(t *testing.T) {
	stub := newStubExchange(t, http.StatusOK, `{"success":true,"result":[`)

	resp, err := stub.client().Dispatch(context.Background(), "getcurrencies", nil)
	assert.Nil(t, resp)

	var decodeErr *exchange.DecodeError
	assert.True(t, errors.As(err, &decodeErr))

	var httpErr *exchange.HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func TestDispatchReportsTransportErrors(t *testing.T) {
	stub := newStubExchange(t, http.StatusOK, `{"success":true}`)
	client := stub.client()
	stub.Close()

	resp, err := client.Dispatch(context.Background(), "getmarkets", nil)
	assert.Nil(t, resp)

	var transportErr *exchange.TransportError
	assert.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "getmarkets", transportErr.Operation())
}

func TestDispatchHonoursTheCallerContext(t *testing.T) {
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(WithHost(server.URL)).Dispatch(ctx, "getmarkets", nil)

	var transportErr *exchange.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRetrieveCandles(t *testing.T) {
	stub := newStubExchange(t, http.StatusOK, `{"success":true,"message":"","result":[
		{"O":0.00350397,"H":0.00351000,"L":0.00350000,"C":0.00350350,"V":1326.42643480,"T":"2017-11-03T03:18:00","BV":4.64416189},
		{"O":0.00350350,"H":0.00350400,"L":0.00349000,"C":0.00349500,"V":10.5,"T":"2017-11-03T03:19:00","BV":0.0367}
	]}`)

	resp, err := stub.client().RetrieveCandles(context.Background(), "BTC-LTC", exchange.OneMinute)
	require.NoError(t, err)

	reqs := stub.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/Api/v2.0/pub/market/GetTicks", reqs[0].path)
	assert.Equal(t, "BTC-LTC", reqs[0].query.Get("marketName"))
	assert.Equal(t, "oneMin", reqs[0].query.Get("tickInterval"))

	candles := resp.Candles()
	require.Len(t, candles, 2)

	first := candles[0]
	assert.Equal(t, time.Date(2017, 11, 3, 3, 18, 0, 0, time.UTC), *first.StartTime())
	assert.True(t, first.Open().Equal(decimal.RequireFromString("0.00350397")))
	assert.True(t, first.High().Equal(decimal.RequireFromString("0.00351")))
	assert.True(t, first.Low().Equal(decimal.RequireFromString("0.0035")))
	assert.True(t, first.Close().Equal(decimal.RequireFromString("0.0035035")))
	assert.True(t, first.Volume().Equal(decimal.RequireFromString("1326.4264348")))
	assert.True(t, first.BaseVolume().Equal(decimal.RequireFromString("4.64416189")))
}

func TestRetrieveCandlesLeavesFailedEnvelopesAlone(t *testing.T) {
	stub := newStubExchange(t, http.StatusOK, `{"success":false,"message":"INVALID_MARKET","result":null}`)

	resp, err := stub.client().RetrieveCandles(context.Background(), "BTC-NOPE", exchange.OneDay)
	require.NoError(t, err)

	assert.False(t, resp.Success())
	assert.Empty(t, resp.Candles())
}

func TestRetrieveCandlesRejectsMalformedTicks(t *testing.T) {
	stub := newStubExchange(t, http.StatusOK, `{"success":true,"message":"","result":[{"O":"0.1","T":"2017-11-03T03:18:00"}]}`)

	resp, err := stub.client().RetrieveCandles(context.Background(), "BTC-LTC", exchange.FiveMinute)
	require.NotNil(t, resp)

	var decodeErr *exchange.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestDispatchDoesNotReplayCookies(t *testing.T) {
	var mu sync.Mutex
	var cookies []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		cookies = append(cookies, r.Header.Get("Cookie"))
		mu.Unlock()

		http.SetCookie(w, &http.Cookie{Name: "__cfduid", Value: "session123", Path: "/"})
		_, _ = w.Write([]byte(`{"success":true,"message":"","result":[]}`))
	}))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	clients := map[string]*Client{
		"default":  newTestClient(WithHost(srv.URL)),
		"supplied": newTestClient(WithHost(srv.URL), WithHTTPClient(&http.Client{Jar: jar})),
	}

	for name, client := range clients {
		t.Run(name, func(t *testing.T) {
			mu.Lock()
			cookies = nil
			mu.Unlock()

			for i := 0; i < 2; i++ {
				_, err := client.GetMarkets(context.Background())
				require.NoError(t, err)
			}

			mu.Lock()
			defer mu.Unlock()

			assert.Equal(t, []string{"", ""}, cookies)
		})
	}
}

func TestDispatchIsSafeForConcurrentUse(t *testing.T) {
	stub := newStubExchange(t, http.StatusOK, `{"success":true,"message":"","result":[]}`)
	client := stub.client()

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := client.GetBalances(context.Background())
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	nonces := make(map[string]bool)
	for _, r := range stub.recorded() {
		nonces[r.query.Get("nonce")] = true
	}

	assert.Len(t, nonces, 10)
}
