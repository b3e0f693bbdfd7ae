package exchange

import (
	"time"

	"github.com/shopspring/decimal"
)

//
// Candle generically provides an interface to objects that represent candlesticks (a.k.a. ticks)
// provided in a response from a call to an exchange's API endpoint.
//
type Candle interface {

	//
	// StartTime returns a pointer to the structure representing the opening instant of the candle.
	//
	StartTime() *time.Time

	//
	// Open returns a pointer to the structure representing the opening price of the candle.
	//
	Open() *decimal.Decimal

	//
	// High returns a pointer to the structure representing the high price of the candle.
	//
	High() *decimal.Decimal

	//
	// Low returns a pointer to the structure representing the low price of the candle.
	//
	Low() *decimal.Decimal

	//
	// Close returns a pointer to the structure representing the closing price of the candle.
	//
	Close() *decimal.Decimal

	//
	// Volume returns a pointer to the structure representing the trade volume of the candle, in
	// units of the market's traded currency.
	//
	Volume() *decimal.Decimal

	//
	// BaseVolume returns a pointer to the trade volume of the candle expressed in the market's base
	// currency.
	//
	BaseVolume() *decimal.Decimal
}
