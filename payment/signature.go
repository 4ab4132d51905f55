package payment

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// VerifyNotificationSignature checks the signature_key Midtrans attaches to
// HTTP notifications: sha512(order_id + status_code + gross_amount +
// server key), hex-encoded. Notifications that fail this check must be
// rejected before any status is applied.
func (c *Client) VerifyNotificationSignature(orderID, statusCode, grossAmount, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + c.serverKey))
	expected := hex.EncodeToString(sum[:])
	given := strings.ToLower(signature)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(given)) == 1
}
