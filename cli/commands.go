package cli

import (
	"fmt"
	"strings"

	"github.com/lukehollenback/bittrex/exchange"
	"github.com/lukehollenback/bittrex/exchange/bittrex"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

//
// request is the shape shared by every command that makes exactly one call and prints the envelope.
//
type request func(cmd *cobra.Command, args []string) (exchange.Response, error)

func (a *app) run(fn request) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		resp, err := fn(cmd, args)
		if err != nil {
			return err
		}

		return a.printResponse(cmd.OutOrStdout(), resp)
	}
}

func (a *app) operationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List every operation the client can route, by endpoint family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			for _, family := range []bittrex.EndpointFamily{bittrex.Public, bittrex.Market, bittrex.Account, bittrex.MarketV2} {
				auth := ""
				if family.Authenticated() {
					auth = " (signed)"
				}

				fmt.Fprintf(w, "%s%s\n", a.colors.Bold(family.String()), auth)

				for _, op := range bittrex.Operations(family) {
					fmt.Fprintf(w, "  %s\n", op)
				}
			}

			return nil
		},
	}
}

func (a *app) callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <operation> [key=value ...]",
		Short: "Dispatch any operation with arbitrary parameters (kept in the given order)",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			params, err := parseParams(args[1:])
			if err != nil {
				return nil, err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			return a.client.Dispatch(ctx, args[0], params)
		}),
	}
}

//
// parseParams turns "key=value" arguments into ordered parameters.
//
func parseParams(args []string) (*exchange.Params, error) {
	bad, found := lo.Find(args, func(arg string) bool {
		return !strings.Contains(arg, "=")
	})
	if found {
		return nil, errors.Errorf("parameter %q is not of the form key=value", bad)
	}

	params := exchange.NewParams()

	for _, arg := range args {
		key, value, _ := strings.Cut(arg, "=")
		params.Add(key, value)
	}

	return params, nil
}

func (a *app) marketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markets",
		Short: "List the open and available trading markets",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			ctx, cancel := a.context(cmd)
			defer cancel()

			return a.client.GetMarkets(ctx)
		}),
	}
}

func (a *app) currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List every supported currency",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			ctx, cancel := a.context(cmd)
			defer cancel()

			return a.client.GetCurrencies(ctx)
		}),
	}
}

func (a *app) summariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summaries",
		Short: "Show the last 24 hours of every active market",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			ctx, cancel := a.context(cmd)
			defer cancel()

			return a.client.GetMarketSummaries(ctx)
		}),
	}
}

func (a *app) tickerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ticker <market>",
		Short: "Show the current bid, ask, and last price of a market (e.g. BTC-LTC)",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			ctx, cancel := a.context(cmd)
			defer cancel()

			return a.client.GetTicker(ctx, args[0])
		}),
	}
}

func (a *app) orderBookCmd() *cobra.Command {
	var bookType string
	var depth int

	cmd := &cobra.Command{
		Use:   "orderbook <market>",
		Short: "Show a market's order book",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			t := bittrex.OrderBookType(bookType)
			if !lo.Contains([]bittrex.OrderBookType{bittrex.BuyOrderBook, bittrex.SellOrderBook, bittrex.BothOrderBook}, t) {
				return nil, errors.Errorf("order book type must be buy, sell, or both (got %q)", bookType)
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			return a.client.GetOrderBook(ctx, args[0], t, depth)
		}),
	}

	cmd.Flags().StringVar(&bookType, "type", string(bittrex.BothOrderBook), "buy, sell, or both")
	cmd.Flags().IntVar(&depth, "depth", bittrex.DefaultOrderBookDepth, "entries per side (max 100)")

	return cmd
}

func (a *app) historyCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "history <market>",
		Short: "Show the latest trades in a market",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			ctx, cancel := a.context(cmd)
			defer cancel()

			return a.client.GetMarketHistory(ctx, args[0], count)
		}),
	}

	cmd.Flags().IntVar(&count, "count", bittrex.DefaultMarketHistoryCount, "number of trades (1-100)")

	return cmd
}

func (a *app) balancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show every balance on the account",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			ctx, cancel := a.context(cmd)
			defer cancel()

			return a.client.GetBalances(ctx)
		}),
	}
}

func (a *app) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <currency>",
		Short: "Show the account balance of one currency",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			ctx, cancel := a.context(cmd)
			defer cancel()

			return a.client.GetBalance(ctx, args[0])
		}),
	}
}

func (a *app) openOrdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open-orders [market]",
		Short: "List open orders, optionally for one market",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			ctx, cancel := a.context(cmd)
			defer cancel()

			market := ""
			if len(args) == 1 {
				market = args[0]
			}

			return a.client.GetOpenOrders(ctx, market)
		}),
	}
}

func (a *app) orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <uuid>",
		Short: "Show a single order",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			ctx, cancel := a.context(cmd)
			defer cancel()

			return a.client.GetOrder(ctx, args[0])
		}),
	}
}

func (a *app) ticksCmd() *cobra.Command {
	var interval string

	cmd := &cobra.Command{
		Use:   "ticks <market>",
		Short: "Print a market's candles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := exchange.ParseInterval(interval)
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			resp, err := a.client.RetrieveCandles(ctx, args[0], iv)
			if err != nil {
				return err
			}

			return a.printCandles(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&interval, "interval", exchange.FiveMinute.String(), "oneMin, fiveMin, thirtyMin, hour, or day")

	return cmd
}

func (a *app) latestTickCmd() *cobra.Command {
	var interval string

	cmd := &cobra.Command{
		Use:   "latest-tick <market>",
		Short: "Show a market's most recent candle",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) (exchange.Response, error) {
			iv, err := exchange.ParseInterval(interval)
			if err != nil {
				return nil, err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			return a.client.GetLatestTick(ctx, args[0], iv)
		}),
	}

	cmd.Flags().StringVar(&interval, "interval", exchange.FiveMinute.String(), "oneMin, fiveMin, thirtyMin, hour, or day")

	return cmd
}
