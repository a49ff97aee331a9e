package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"carmarket/config"
	"carmarket/internal/domain/constants"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeServiceFromConfig creates a QR code service from the qrcode config section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L", "LOW":
		level = qrcode.Low
	case "Q", "HIGH":
		level = qrcode.High
	case "H", "HIGHEST":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateOfferQR generates a PNG QR code for a car offer
func (s *qrcodeService) GenerateOfferQR(offerID int64) ([]byte, error) {
	data := service.OfferQRPayload{
		Type:    constants.QRCodeTypeOffer,
		OfferID: offerID,
		URL:     fmt.Sprintf("%s/offers/%d", s.baseURL, offerID),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOfferQR parses QR code data and returns the offer ID
func (s *qrcodeService) ParseOfferQR(qrData string) (int64, error) {
	var data service.OfferQRPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != constants.QRCodeTypeOffer {
		return 0, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OfferID <= 0 {
		return 0, errors.Errorf("invalid offer id: %d", data.OfferID)
	}

	return data.OfferID, nil
}
