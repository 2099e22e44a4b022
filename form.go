package solidgate

import (
	"fmt"

	"github.com/sumup/solidgate-go/formcrypto"
)

// FormInit initializes the embedded payment form.
type FormInit struct {
	EncryptedFormData string `json:"encryptedFormData"`
	MerchantPublicKey string `json:"merchantPublicKey"`
	Signature         string `json:"signature"`
}

// FormUpdate updates an already initialized payment form.
type FormUpdate struct {
	EncryptedFormData string `json:"encryptedFormData"`
	Signature         string `json:"signature"`
}

// FormResign re-signs the payment form for a resign flow.
type FormResign struct {
	EncryptedFormData string `json:"encryptedFormData"`
	MerchantPublicKey string `json:"merchantPublicKey"`
	Signature         string `json:"signature"`
}

// FormMerchantData encrypts attrs for the payment form initialization.
// Secrets shorter than 32 bytes fail with [formcrypto.ErrInvalidKey].
func (c *client) FormMerchantData(attrs Attributes) (*FormInit, error) {
	blob, sig, err := c.encryptForm(attrs)
	if err != nil {
		return nil, err
	}
	return &FormInit{EncryptedFormData: blob, MerchantPublicKey: c.creds.PublicKey, Signature: sig}, nil
}

// FormUpdate encrypts attrs for a payment form update.
func (c *client) FormUpdate(attrs Attributes) (*FormUpdate, error) {
	blob, sig, err := c.encryptForm(attrs)
	if err != nil {
		return nil, err
	}
	return &FormUpdate{EncryptedFormData: blob, Signature: sig}, nil
}

// FormResign encrypts attrs for a resign payment form.
func (c *client) FormResign(attrs Attributes) (*FormResign, error) {
	blob, sig, err := c.encryptForm(attrs)
	if err != nil {
		return nil, err
	}
	return &FormResign{EncryptedFormData: blob, MerchantPublicKey: c.creds.PublicKey, Signature: sig}, nil
}

// encryptForm encrypts the JSON rendering of attrs ({} when empty) and signs
// the JSON string of the resulting blob.
func (c *client) encryptForm(attrs Attributes) (blob, sig string, err error) {
	plaintext, err := attrs.MarshalJSON()
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrEncode, err)
	}
	blob, err = formcrypto.Encrypt(c.creds.SecretKey, plaintext)
	if err != nil {
		return "", "", fmt.Errorf("solidgate: encrypt form data: %w", err)
	}
	sig, err = c.builder.signer.SignPayload(blob)
	if err != nil {
		return "", "", err
	}
	return blob, sig, nil
}
