package service

// OfferQRPayload is the JSON document encoded in an offer QR code.
type OfferQRPayload struct {
	Type    string `json:"type"`
	OfferID int64  `json:"offer_id"`
	URL     string `json:"url"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOfferQR renders a PNG QR code pointing at the public offer page
	GenerateOfferQR(offerID int64) ([]byte, error)

	// ParseOfferQR parses QR code data and returns the offer ID
	ParseOfferQR(qrData string) (int64, error)
}
