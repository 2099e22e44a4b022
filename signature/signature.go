// Package signature implements the HMAC-SHA-512 request signatures used by the
// Solidgate API and its webhooks.
package signature

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
)

// Encoding selects how the raw HMAC digest is turned into the signature string.
type Encoding int

const (
	// DigestRaw base64-encodes the raw digest bytes.
	DigestRaw Encoding = iota
	// DigestHex base64-encodes the lowercase hex rendering of the digest, which is
	// the byte layout produced by the PHP SDK (hash_hmac without raw output).
	DigestHex
)

var (
	// ErrEmptyKey is returned when a signer is used without key material.
	ErrEmptyKey = errors.New("signature: public and secret keys are required")
	// ErrInvalidSignature is returned when a signature does not match the payload.
	ErrInvalidSignature = errors.New("signature: invalid signature")
)

// Signer holds a merchant key pair. The zero Encoding is [DigestRaw].
type Signer struct {
	PublicKey string
	SecretKey string
	Encoding  Encoding
}

// SignPayload canonicalizes payload and signs the result.
func (s Signer) SignPayload(payload any) (string, error) {
	canonical, err := Canonicalize(payload)
	if err != nil {
		return "", err
	}
	return s.Sign(canonical), nil
}

// Sign signs already canonical bytes.
func (s Signer) Sign(canonical []byte) string {
	sum := digest(s.PublicKey, s.SecretKey, canonical)
	if s.Encoding == DigestHex {
		return base64.StdEncoding.EncodeToString([]byte(hex.EncodeToString(sum)))
	}
	return base64.StdEncoding.EncodeToString(sum)
}

// Verify recomputes the signature over canonical and compares it in constant time.
func (s Signer) Verify(canonical []byte, sig string) error {
	if s.PublicKey == "" || s.SecretKey == "" {
		return ErrEmptyKey
	}
	if !hmac.Equal([]byte(s.Sign(canonical)), []byte(sig)) {
		return ErrInvalidSignature
	}
	return nil
}

// Sign computes base64(HMAC-SHA-512(secretKey, publicKey + canonical + publicKey)).
func Sign(publicKey, secretKey string, canonical []byte) string {
	return Signer{PublicKey: publicKey, SecretKey: secretKey}.Sign(canonical)
}

func digest(publicKey, secretKey string, canonical []byte) []byte {
	mac := hmac.New(sha512.New, []byte(secretKey))
	_, _ = mac.Write(BuildSigningPayload(publicKey, canonical))
	return mac.Sum(nil)
}

// BuildSigningPayload constructs the message that is HMAC-signed. The public key
// wraps the payload on both ends.
func BuildSigningPayload(publicKey string, canonical []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(2*len(publicKey) + len(canonical))
	buf.WriteString(publicKey)
	buf.Write(canonical)
	buf.WriteString(publicKey)
	return buf.Bytes()
}

// Canonicalize renders payload as the exact bytes that are signed and sent.
// Empty payloads yield an empty slice; see [IsEmpty] for what counts as
// empty. Raw bytes are used verbatim. Everything else is encoded as compact
// JSON without HTML escaping; key order is whatever the value's encoder
// produces and is never re-sorted here.
func Canonicalize(payload any) ([]byte, error) {
	if IsEmpty(payload) {
		return []byte{}, nil
	}
	switch v := payload.(type) {
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("signature: encode payload: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// IsEmpty reports whether payload carries no data to sign. Only nil, nil
// pointers and interfaces, and zero-length maps, slices, arrays and strings
// count as empty; a struct, even one with all fields zero, is not and signs as
// its JSON rendering.
func IsEmpty(payload any) bool {
	if payload == nil {
		return true
	}
	v := reflect.ValueOf(payload)
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.String, reflect.Array:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// ReadAndBufferBody reads the request body while keeping it accessible for later handlers.
func ReadAndBufferBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		r.Body = io.NopCloser(bytes.NewReader(nil))
		return nil, nil
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	return raw, nil
}
