// Package qrcode renders order pickup codes.
package qrcode

import (
	"surplus/config"
	"surplus/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	// pickupPrefix lets shop scanners tell pickup codes apart from arbitrary text
	pickupPrefix = "surplus:order:"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	levelName := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(levelName),
	}
}

func parseRecoveryLevel(name string) qrcode.RecoveryLevel {
	switch name {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// PickupPayload is the text encoded in a pickup QR code
func PickupPayload(displayID string) string {
	return pickupPrefix + displayID
}

// GeneratePickupQR renders the pickup payload of a placed cart as a PNG
func (s *qrcodeService) GeneratePickupQR(displayID string) ([]byte, error) {
	if displayID == "" {
		return nil, errors.New("display id is required")
	}

	qrCode, err := qrcode.New(PickupPayload(displayID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
