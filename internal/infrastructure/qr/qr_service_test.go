package qr

import (
	"bytes"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRService_RenderPNG(t *testing.T) {
	svc := NewQRService(256)

	png, err := svc.RenderPNG("otpauth://totp/twofasvc:alice?secret=JBSWY3DPEHPK3PXP&issuer=twofasvc")
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("output should be a PNG image")
	}
}

func TestQRService_EmptyInput(t *testing.T) {
	svc := NewQRService(256)

	if _, err := svc.RenderPNG(""); err == nil {
		t.Error("empty content should be rejected")
	}
}
