package bittrex

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

//
// Sign computes the value of the apisign header for the provided request URL: the lowercase hex
// HMAC-SHA512 of the entire URL, keyed with the API secret.
//
func Sign(secret string, requestURL string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(requestURL))

	return hex.EncodeToString(mac.Sum(nil))
}
