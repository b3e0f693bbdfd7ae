package bittrex

const (
	APISignHeader = "apisign"

	DefaultHost = "https://bittrex.com"

	v1BasePath = "/api/v1.1/"
	v2BasePath = "/Api/v2.0/pub/"

	DefaultOrderBookDepth     = 20
	DefaultMarketHistoryCount = 20

	tickTimeLayout = "2006-01-02T15:04:05"
)

//
// OrderBookType selects which side(s) of an order book to retrieve.
//
type OrderBookType string

const (
	BuyOrderBook  OrderBookType = "buy"
	SellOrderBook OrderBookType = "sell"
	BothOrderBook OrderBookType = "both"
)
