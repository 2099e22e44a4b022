// Package solidgate is a client for the Solidgate payment APIs.
//
// Three façades share one signing and transport core: [PaymentsAPI] for card
// and wallet operations, [PaymentPageAPI] for hosted payment pages and
// [SubscriptionAPI] for products and subscriptions. Each request is signed with
// HMAC-SHA-512 over the exact JSON bytes that are sent, and the raw response
// body is returned without interpretation. A request that could not be sent
// returns an empty body and a *[TransportFault].
//
// # Payment form
//
// FormMerchantData, FormUpdate and FormResign (available on every façade)
// encrypt merchant attributes with AES-256-CBC for the embedded payment form
// and sign the encrypted blob.
//
// # Orders
//
// [NewOneTimePaymentOrder] and [NewSubscriptionOrder] build validated orders
// for [NewInitRequest]. Amounts are integers in minor units; see [MinorUnits]
// for converting decimal prices.
//
// # Webhooks
//
// [NewWebhookHandler] verifies the Merchant and Signature headers of inbound
// callbacks before passing them to a [WebhookReceiver].
package solidgate
