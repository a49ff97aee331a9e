// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub provider names accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// QRCodeTypeOffer tags QR payloads that point at a car offer.
const QRCodeTypeOffer = "offer"

// HeaderRequestID carries the request correlation id.
const HeaderRequestID = "X-Request-Id"
