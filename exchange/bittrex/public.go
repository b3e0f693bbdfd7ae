package bittrex

import (
	"context"

	"github.com/lukehollenback/bittrex/exchange"
)

//
// GetMarkets retrieves the open and available trading markets along with their metadata.
//
func (o *Client) GetMarkets(ctx context.Context) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetMarkets, nil)
}

//
// GetCurrencies retrieves every supported currency along with its metadata.
//
func (o *Client) GetCurrencies(ctx context.Context) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetCurrencies, nil)
}

//
// GetTicker retrieves the current tick values (bid, ask, last) for a market such as "BTC-LTC".
//
func (o *Client) GetTicker(ctx context.Context, market string) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetTicker, exchange.NewParams().Add("market", market))
}

//
// GetMarketSummaries retrieves the last 24 hour summary of every active market.
//
func (o *Client) GetMarketSummaries(ctx context.Context) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetMarketSummaries, nil)
}

//
// GetOrderBook retrieves one or both sides of a market's order book. The exchange caps depth at 100.
//
func (o *Client) GetOrderBook(
	ctx context.Context,
	market string,
	bookType OrderBookType,
	depth int,
) (exchange.Response, error) {
	params := exchange.NewParams().
		Add("market", market).
		Add("type", string(bookType)).
		Add("depth", depth)

	return o.Dispatch(ctx, OpGetOrderBook, params)
}

//
// GetMarketHistory retrieves the latest trades (between 1 and 100 of them) that have occurred in a
// market.
//
func (o *Client) GetMarketHistory(ctx context.Context, market string, count int) (exchange.Response, error) {
	params := exchange.NewParams().
		Add("market", market).
		Add("count", count)

	return o.Dispatch(ctx, OpGetMarketHistory, params)
}

//
// GetTicks retrieves candles for a market from the v2.0 API. See RetrieveCandles for a variant that
// also parses them.
//
func (o *Client) GetTicks(ctx context.Context, market string, interval exchange.Interval) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetTicks, tickParams(market, interval))
}

//
// GetLatestTick retrieves only the most recent candle for a market from the v2.0 API.
//
func (o *Client) GetLatestTick(
	ctx context.Context,
	market string,
	interval exchange.Interval,
) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetLatestTick, tickParams(market, interval))
}

//
// tickParams builds the query of both v2.0 tick operations. Only marketName and tickInterval are
// sent. There is no "_" cache-buster parameter and no default interval.
//
func tickParams(market string, interval exchange.Interval) *exchange.Params {
	return exchange.NewParams().
		Add("marketName", market).
		Add("tickInterval", interval.String())
}
