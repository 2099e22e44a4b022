package solidgate

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/sumup/solidgate-go/signature"
)

// newSignatureMiddleware verifies the Signature header against the raw body.
// The body stays readable for the next handler.
func newSignatureMiddleware(keys signature.Signer, logger *zap.Logger) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sig := strings.TrimSpace(r.Header.Get(headerSignature))
			if sig == "" {
				writeJSONError(w, NewHTTPError(http.StatusUnauthorized, InvalidRequest, SignatureRequired, "Signature header is required"))
				return
			}
			raw, err := signature.ReadAndBufferBody(r)
			if err != nil {
				writeJSONError(w, NewInvalidRequestError("unable to read request body"))
				return
			}
			if err := keys.Verify(raw, sig); err != nil {
				logger.Debug("solidgate webhook rejected", zap.String("reason", "invalid_signature"))
				writeJSONError(w, NewHTTPError(http.StatusUnauthorized, InvalidRequest, InvalidSignature, "signature verification failed"))
				return
			}
			next(w, r)
		}
	}
}
