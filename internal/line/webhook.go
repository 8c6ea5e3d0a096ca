package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidSignature is returned when a webhook body does not match its
// signature header.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// SignatureHeader is the request header carrying the body signature.
const SignatureHeader = "X-Line-Signature"

// ValidateSignature reports whether signature is the base64-encoded
// HMAC-SHA256 of body under channelSecret. Comparison is constant-time.
func ValidateSignature(channelSecret string, body []byte, signature string) bool {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return hmac.Equal(decoded, mac.Sum(nil))
}

// ParseRequest verifies the signature of a raw webhook body and decodes its
// event batch. It returns ErrInvalidSignature when verification fails.
func ParseRequest(channelSecret string, body []byte, signature string) ([]Event, error) {
	if !ValidateSignature(channelSecret, body, signature) {
		return nil, ErrInvalidSignature
	}

	var req WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("failed to decode webhook body: %w", err)
	}
	return req.Events, nil
}

// Sign computes the signature the platform would send for body. Used by tests
// and local tooling.
func Sign(channelSecret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
