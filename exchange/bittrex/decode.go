package bittrex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

//
// decodeJSON decodes a response payload into generic maps and slices, with every numeric literal –
// integral or not – converted to a decimal.Decimal. Prices and quantities therefore never pass
// through float64.
//
func decodeJSON(body []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw interface{}

	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	//
	// Make sure nothing but whitespace follows the top-level value.
	//
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level JSON value")
	}

	return toDecimals(raw)
}

func toDecimals(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return nil, fmt.Errorf("numeric literal %s is not a valid decimal: %w", t, err)
		}
		return d, nil

	case map[string]interface{}:
		for k, e := range t {
			converted, err := toDecimals(e)
			if err != nil {
				return nil, err
			}
			t[k] = converted
		}
		return t, nil

	case []interface{}:
		for i, e := range t {
			converted, err := toDecimals(e)
			if err != nil {
				return nil, err
			}
			t[i] = converted
		}
		return t, nil

	default:
		return v, nil
	}
}
