package bittrex

import (
	"context"

	"github.com/lukehollenback/bittrex/exchange"
	"github.com/shopspring/decimal"
)

func (o *Client) GetBalances(ctx context.Context) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetBalances, nil)
}

func (o *Client) GetBalance(ctx context.Context, currency string) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetBalance, exchange.NewParams().Add("currency", currency))
}

//
// GetDepositAddress generates or retrieves the deposit address for a currency.
//
func (o *Client) GetDepositAddress(ctx context.Context, currency string) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetDepositAddress, exchange.NewParams().Add("currency", currency))
}

//
// Withdraw sends the provided quantity of a currency to an external address.
//
func (o *Client) Withdraw(
	ctx context.Context,
	currency string,
	quantity decimal.Decimal,
	address string,
) (exchange.Response, error) {
	params := exchange.NewParams().
		Add("currency", currency).
		Add("quantity", quantity).
		Add("address", address)

	return o.Dispatch(ctx, OpWithdraw, params)
}

func (o *Client) GetOrder(ctx context.Context, uuid string) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetOrder, exchange.NewParams().Add("uuid", uuid))
}

//
// GetOrderHistory retrieves the account's order history. An empty market means every market.
//
func (o *Client) GetOrderHistory(ctx context.Context, market string) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetOrderHistory, exchange.NewParams().Add("market", market))
}

//
// GetWithdrawalHistory retrieves the account's withdrawals. An empty currency means every currency.
//
func (o *Client) GetWithdrawalHistory(ctx context.Context, currency string) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetWithdrawalHistory, exchange.NewParams().Add("currency", currency))
}

//
// GetDepositHistory retrieves the account's deposits. An empty currency means every currency.
//
func (o *Client) GetDepositHistory(ctx context.Context, currency string) (exchange.Response, error) {
	return o.Dispatch(ctx, OpGetDepositHistory, exchange.NewParams().Add("currency", currency))
}
