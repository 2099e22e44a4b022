package solidgate

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// newMerchantMiddleware rejects callbacks addressed to another merchant key.
func newMerchantMiddleware(publicKey string, logger *zap.Logger) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			merchant := strings.TrimSpace(r.Header.Get(headerMerchant))
			if merchant == "" {
				writeJSONError(w, NewHTTPError(http.StatusUnauthorized, InvalidRequest, MissingMerchant, "Merchant header is required"))
				return
			}
			if subtle.ConstantTimeCompare([]byte(merchant), []byte(publicKey)) != 1 {
				logger.Debug("solidgate webhook rejected", zap.String("reason", "invalid_merchant"))
				writeJSONError(w, NewHTTPError(http.StatusUnauthorized, InvalidRequest, InvalidMerchant, "Merchant header does not match the webhook key"))
				return
			}
			next(w, r)
		}
	}
}
