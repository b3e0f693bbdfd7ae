package exchange

import "fmt"

//
// Interval is an enum that represents the various candlestick ("tick") intervals that can be
// retrieved from an exchange's historical data endpoints.
//
type Interval int

const (
	OneMinute Interval = iota
	FiveMinute
	ThirtyMinute
	OneHour
	OneDay
)

var intervalNames = [...]string{"oneMin", "fiveMin", "thirtyMin", "hour", "day"}

func (o Interval) String() string {
	if o < 0 || int(o) >= len(intervalNames) {
		return fmt.Sprintf("Interval(%d)", int(o))
	}

	return intervalNames[o]
}

//
// ParseInterval maps the wire name of an interval (e.g. "fiveMin") back onto the enum.
//
func ParseInterval(name string) (Interval, error) {
	for i, v := range intervalNames {
		if v == name {
			return Interval(i), nil
		}
	}

	return 0, fmt.Errorf("unknown tick interval %q (valid: %v)", name, intervalNames)
}
