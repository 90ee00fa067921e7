// Package qrcode renders shareable QR codes for joining orders.
package qrcode

import (
	"fmt"
	"strings"

	"warung/config"
	"warung/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance from configuration.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch cfg.QRCode.ErrorCorrectionLevel {
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
		size:                 cfg.QRCode.Size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(cfg.QRCode.BaseURL, "/"),
	}
}

// GenerateJoinQR produces a PNG QR code encoding the join URL for an order.
// Scanning it lands a participant on the order's join page.
func (s *qrcodeService) GenerateJoinQR(orderID uuid.UUID) ([]byte, error) {
	joinURL := fmt.Sprintf("%s/orders/%s/join", s.baseURL, orderID)

	qrCode, err := qrcode.New(joinURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
