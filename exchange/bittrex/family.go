package bittrex

import (
	"sort"

	"github.com/samber/lo"
)

const (
	OpGetMarkets           = "getmarkets"
	OpGetCurrencies        = "getcurrencies"
	OpGetTicker            = "getticker"
	OpGetMarketSummaries   = "getmarketsummaries"
	OpGetOrderBook         = "getorderbook"
	OpGetMarketHistory     = "getmarkethistory"
	OpGetOpenOrders        = "getopenorders"
	OpCancel               = "cancel"
	OpSellMarket           = "sellmarket"
	OpSellLimit            = "selllimit"
	OpBuyMarket            = "buymarket"
	OpBuyLimit             = "buylimit"
	OpGetBalances          = "getbalances"
	OpGetBalance           = "getbalance"
	OpGetDepositAddress    = "getdepositaddress"
	OpWithdraw             = "withdraw"
	OpGetOrder             = "getorder"
	OpGetOrderHistory      = "getorderhistory"
	OpGetWithdrawalHistory = "getwithdrawalhistory"
	OpGetDepositHistory    = "getdeposithistory"
	OpGetTicks             = "GetTicks"
	OpGetLatestTick        = "GetLatestTick"
)

//
// EndpointFamily is an enum that represents the group of API endpoints an operation belongs to. The
// family determines both the URL an operation is sent to and whether it must be authenticated.
//
type EndpointFamily int

const (
	Unknown  EndpointFamily = iota // Not a recognized operation. Never sent.
	Public                         // v1.1 public market data.
	Market                         // v1.1 authenticated order placement and management.
	Account                        // v1.1 authenticated balances, transfers, and history.
	MarketV2                       // v2.0 public market data.
)

var (
	publicOperations = []string{
		OpGetMarkets, OpGetCurrencies, OpGetTicker, OpGetMarketSummaries, OpGetOrderBook,
		OpGetMarketHistory,
	}

	marketOperations = []string{
		OpGetOpenOrders, OpCancel, OpSellMarket, OpSellLimit, OpBuyMarket, OpBuyLimit,
	}

	accountOperations = []string{
		OpGetBalances, OpGetBalance, OpGetDepositAddress, OpWithdraw, OpGetOrder, OpGetOrderHistory,
		OpGetWithdrawalHistory, OpGetDepositHistory,
	}

	marketV2Operations = []string{
		OpGetTicks, OpGetLatestTick,
	}

	// NOTE ~> Maps passed later to lo.Assign win, so the sets are listed lowest priority first. The
	//  sets are disjoint today; the ordering only matters if that ever changes.
	catalog = lo.Assign(
		familyOf(marketV2Operations, MarketV2),
		familyOf(accountOperations, Account),
		familyOf(marketOperations, Market),
		familyOf(publicOperations, Public),
	)
)

func familyOf(operations []string, family EndpointFamily) map[string]EndpointFamily {
	return lo.SliceToMap(operations, func(op string) (string, EndpointFamily) {
		return op, family
	})
}

//
// Classify resolves the endpoint family of the provided operation name. Names are case sensitive.
//
func Classify(operation string) EndpointFamily {
	return catalog[operation]
}

//
// Operations returns the sorted names of every operation in the provided family.
//
func Operations(family EndpointFamily) []string {
	ops := lo.Keys(lo.PickByValues(catalog, []EndpointFamily{family}))

	sort.Strings(ops)

	return ops
}

func (o EndpointFamily) String() string {
	switch o {
	case Public:
		return "public"
	case Market:
		return "market"
	case Account:
		return "account"
	case MarketV2:
		return "market-v2"
	default:
		return "unknown"
	}
}

//
// Authenticated reports whether requests in the family carry the API key and a nonce.
//
func (o EndpointFamily) Authenticated() bool {
	return o == Market || o == Account
}

func (o EndpointFamily) basePath() string {
	if o == MarketV2 {
		return v2BasePath
	}

	return v1BasePath
}

func (o EndpointFamily) segment() string {
	switch o {
	case Public:
		return "public"
	case Market, MarketV2:
		return "market"
	case Account:
		return "account"
	default:
		return ""
	}
}
