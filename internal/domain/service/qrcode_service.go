package service

// QRCodeService renders pickup codes for placed orders.
type QRCodeService interface {
	// GeneratePickupQR returns a PNG QR code encoding the cart display id.
	GeneratePickupQR(displayID string) ([]byte, error)
}
