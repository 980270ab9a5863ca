package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/you/twofasvc/domain"
)

// QRServiceImpl implements domain.QRService
type QRServiceImpl struct {
	size int
}

// NewQRService creates a QR renderer producing size x size pixel PNGs
func NewQRService(size int) domain.QRService {
	if size <= 0 {
		size = 256
	}
	return &QRServiceImpl{size: size}
}

// RenderPNG implements domain.QRService
func (s *QRServiceImpl) RenderPNG(provisioningURI string) ([]byte, error) {
	png, err := qrcode.Encode(provisioningURI, qrcode.Medium, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to render provisioning QR code: %w", err)
	}
	return png, nil
}
