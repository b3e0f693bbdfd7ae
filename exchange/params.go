package exchange

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type param struct {
	key   string
	value string
}

//
// Params is an ordered set of query parameters. Unlike url.Values – which sorts by key when encoded –
// it always encodes in insertion order, so that the same calls always produce the same query string
// (and therefore the same request signature).
//
type Params struct {
	entries []param
}

//
// NewParams instantiates an empty parameter set.
//
func NewParams() *Params {
	return &Params{
		entries: make([]param, 0),
	}
}

//
// Add appends the provided key and value. Adding a key a second time appends a second entry rather
// than replacing the first. The receiver is returned so calls can be chained.
//
func (o *Params) Add(key string, value interface{}) *Params {
	o.entries = append(o.entries, param{key: key, value: FormatValue(value)})

	return o
}

//
// Get returns the first value recorded for the provided key.
//
func (o *Params) Get(key string) (string, bool) {
	if o == nil {
		return "", false
	}

	for _, v := range o.entries {
		if v.key == key {
			return v.value, true
		}
	}

	return "", false
}

//
// Keys returns every key in insertion order.
//
func (o *Params) Keys() []string {
	if o == nil {
		return nil
	}

	keys := make([]string, len(o.entries))
	for i, v := range o.entries {
		keys[i] = v.key
	}

	return keys
}

func (o *Params) Len() int {
	if o == nil {
		return 0
	}

	return len(o.entries)
}

//
// Encode renders the parameters in "application/x-www-form-urlencoded" form, in insertion order.
//
func (o *Params) Encode() string {
	if o.Len() == 0 {
		return ""
	}

	var sb strings.Builder

	for i, v := range o.entries {
		if i > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(url.QueryEscape(v.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v.value))
	}

	return sb.String()
}

//
// FormatValue renders a primitive parameter value as it should appear on the wire. Decimals are
// rendered from their exact representation.
//
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	case *decimal.Decimal:
		if v == nil {
			return ""
		}
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
