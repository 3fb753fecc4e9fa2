package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateShopQR generates a QR code image encoding the shop share payload.
	GenerateShopQR(ownerID, shopName string) ([]byte, error)
}
