package bittrex

import (
	"context"

	"github.com/lukehollenback/bittrex/exchange"
	"github.com/shopspring/decimal"
)

func (o *Client) BuyMarket(
	ctx context.Context,
	market string,
	quantity decimal.Decimal,
	rate decimal.Decimal,
) (exchange.Response, error) {
	return o.Dispatch(ctx, OpBuyMarket, orderParams(market, quantity, rate))
}

//
// BuyLimit places a limit buy order. The API key must have trading permissions.
//
func (o *Client) BuyLimit(
	ctx context.Context,
	market string,
	quantity decimal.Decimal,
	rate decimal.Decimal,
) (exchange.Response, error) {
	return o.Dispatch(ctx, OpBuyLimit, orderParams(market, quantity, rate))
}

func (o *Client) SellMarket(
	ctx context.Context,
	market string,
	quantity decimal.Decimal,
	rate decimal.Decimal,
) (exchange.Response, error) {
	return o.Dispatch(ctx, OpSellMarket, orderParams(market, quantity, rate))
}

//
// SellLimit places a limit sell order. The API key must have trading permissions.
//
func (o *Client) SellLimit(
	ctx context.Context,
	market string,
	quantity decimal.Decimal,
	rate decimal.Decimal,
) (exchange.Response, error) {
	return o.Dispatch(ctx, OpSellLimit, orderParams(market, quantity, rate))
}

//
// Cancel cancels an open buy or sell order.
//
func (o *Client) Cancel(ctx context.Context, uuid string) (exchange.Response, error) {
	return o.Dispatch(ctx, OpCancel, exchange.NewParams().Add("uuid", uuid))
}

//
// GetOpenOrders retrieves every open order on the account, optionally narrowed to one market.
//
func (o *Client) GetOpenOrders(ctx context.Context, market string) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetOpenOrders, exchange.NewParams().Add("market", market))
}

func orderParams(market string, quantity decimal.Decimal, rate decimal.Decimal) *exchange.Params {
	return exchange.NewParams().
		Add("market", market).
		Add("quantity", quantity).
		Add("rate", rate)
}
