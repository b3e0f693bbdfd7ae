package bittrex

import (
	"sync/atomic"
	"time"
)

//
// nonceSource issues millisecond wall-clock nonces. Two calls landing in the same millisecond (or a
// clock that steps backwards) would otherwise reuse a nonce, so every value is forced to be strictly
// greater than the one before it.
//
type nonceSource struct {
	clock func() time.Time
	last  atomic.Int64
}

func newNonceSource(clock func() time.Time) *nonceSource {
	return &nonceSource{
		clock: clock,
	}
}

func (o *nonceSource) Next() int64 {
	for {
		last := o.last.Load()

		next := o.clock().UnixMilli()
		if next <= last {
			next = last + 1
		}

		if o.last.CompareAndSwap(last, next) {
			return next
		}
	}
}
