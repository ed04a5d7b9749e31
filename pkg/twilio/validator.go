package twilio

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"sort"
)

// SignatureHeader carries the signature Twilio computes over each webhook call.
const SignatureHeader = "X-Twilio-Signature"

// RequestValidator verifies that a webhook request was signed by Twilio.
// The expected signature is HMAC-SHA1 over the full callback URL followed by
// every POST parameter key+value pair in lexical key order, base64 encoded.
type RequestValidator struct {
	authToken string
}

func NewRequestValidator(authToken string) *RequestValidator {
	return &RequestValidator{authToken: authToken}
}

func (v *RequestValidator) Validate(url string, params map[string]string, signature string) bool {
	if signature == "" {
		return false
	}

	expected := v.sign(url, params)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (v *RequestValidator) sign(url string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mac := hmac.New(sha1.New, []byte(v.authToken))
	mac.Write([]byte(url))
	for _, k := range keys {
		mac.Write([]byte(k))
		mac.Write([]byte(params[k]))
	}

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
