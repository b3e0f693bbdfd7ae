package bittrex

import (
	"fmt"
	"time"

	"github.com/lukehollenback/bittrex/exchange"
	"github.com/shopspring/decimal"
)

// NOTE ~> The v2.0 tick endpoints return candles as objects shaped like the following (numbers are
//  already decimals by the time they get here, courtesy of decodeJSON):
//
//  {
//    "O":  0.00350397,            // Open
//    "H":  0.00351000,            // High
//    "L":  0.00350000,            // Low
//    "C":  0.00350350,            // Close
//    "V":  1326.42643480,         // Volume (traded currency)
//    "T":  "2017-11-03T03:18:00", // Start time (UTC, no zone designator)
//    "BV": 4.64416189             // Volume (base currency)
//  }

const (
	OpenKey       = "O"
	HighKey       = "H"
	LowKey        = "L"
	CloseKey      = "C"
	VolumeKey     = "V"
	StartTimeKey  = "T"
	BaseVolumeKey = "BV"
)

var _ exchange.Candle = (*Candle)(nil)

//
// Candle implements the exchange.Candle interface for ticks provided by the Bittrex API.
//
type Candle struct {
	start      time.Time
	open       decimal.Decimal
	high       decimal.Decimal
	low        decimal.Decimal
	close      decimal.Decimal
	volume     decimal.Decimal
	baseVolume decimal.Decimal
}

func (o *Candle) StartTime() *time.Time {
	return &o.start
}

func (o *Candle) Open() *decimal.Decimal {
	return &o.open
}

func (o *Candle) High() *decimal.Decimal {
	return &o.high
}

func (o *Candle) Low() *decimal.Decimal {
	return &o.low
}

func (o *Candle) Close() *decimal.Decimal {
	return &o.close
}

func (o *Candle) Volume() *decimal.Decimal {
	return &o.volume
}

func (o *Candle) BaseVolume() *decimal.Decimal {
	return &o.baseVolume
}

func (o *Candle) String() string {
	return fmt.Sprintf(
		"%s O:%s H:%s L:%s C:%s V:%s",
		o.start.Format(tickTimeLayout), o.open, o.high, o.low, o.close, o.volume,
	)
}

//
// parseCandles converts the "result" field of a tick endpoint envelope into candles. A missing result
// yields no candles.
//
func parseCandles(result interface{}) ([]*Candle, error) {
	if result == nil {
		return make([]*Candle, 0), nil
	}

	raw, ok := result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("failed to assert type of tick result (%T)", result)
	}

	candles := make([]*Candle, len(raw))

	for i, v := range raw {
		candle, err := parseCandle(v)
		if err != nil {
			return nil, fmt.Errorf("tick %d: %w", i, err)
		}

		candles[i] = candle
	}

	return candles, nil
}

func parseCandle(raw interface{}) (*Candle, error) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("failed to assert type of tick (%+v)", raw)
	}

	o := &Candle{}

	//
	// Parse the start time of the candle.
	//
	startRaw, ok := obj[StartTimeKey].(string)
	if !ok {
		return nil, fmt.Errorf("failed to assert type of start time (%+v)", obj[StartTimeKey])
	}

	start, err := time.ParseInLocation(tickTimeLayout, startRaw, time.UTC)
	if err != nil {
		return nil, err
	}

	o.start = start

	//
	// Parse the prices and volumes of the candle.
	//
	fields := []struct {
		key string
		dst *decimal.Decimal
	}{
		{OpenKey, &o.open},
		{HighKey, &o.high},
		{LowKey, &o.low},
		{CloseKey, &o.close},
		{VolumeKey, &o.volume},
		{BaseVolumeKey, &o.baseVolume},
	}

	for _, f := range fields {
		v, ok := obj[f.key].(decimal.Decimal)
		if !ok {
			return nil, fmt.Errorf("failed to assert type of %s (%+v)", f.key, obj[f.key])
		}

		*f.dst = v
	}

	return o, nil
}
