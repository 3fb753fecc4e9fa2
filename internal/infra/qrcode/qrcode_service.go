// Package qrcode generates the shareable shop QR code.
package qrcode

import (
	"encoding/json"

	"kirana/internal/domain/service"
	"kirana/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ShopQRData represents the QR code payload a customer device scans to open
// the shop.
type ShopQRData struct {
	OwnerID  string `json:"owner_id"`
	ShopName string `json:"shop_name"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateShopQR generates a PNG QR code encoding the shop share payload.
func (s *qrcodeService) GenerateShopQR(ownerID, shopName string) ([]byte, error) {
	data := ShopQRData{
		OwnerID:  ownerID,
		ShopName: shopName,
		Type:     "shop",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "marshal shop QR payload")
	}

	png, err := qrcode.Encode(string(jsonData), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode shop QR code")
	}

	return png, nil
}
