package service

import "github.com/google/uuid"

// QRCodeService defines the interface for generating shareable QR codes.
type QRCodeService interface {
	// GenerateJoinQR produces a PNG QR code encoding the join URL for an order.
	GenerateJoinQR(orderID uuid.UUID) ([]byte, error)
}
