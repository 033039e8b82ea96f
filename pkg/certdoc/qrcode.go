package certdoc

import (
	"fmt"

	"github.com/skip2/go-qrcode"
	svg "github.com/wamuir/svg-qr-code"
)

// GenerateQRCodePNG returns the QR code for link as PNG bytes.
func GenerateQRCodePNG(link string, size int) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// GenerateQRCodePNGFile writes the QR code for link to outputPath.
// When the code is embedded into a PDF, size 50 should be enough.
func GenerateQRCodePNGFile(link, outputPath string, size int) error {
	err := qrcode.WriteFile(link, qrcode.Medium, size, outputPath)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	return nil
}

// GenerateQRCodeSVG returns the QR code for link as an SVG document.
func GenerateQRCodeSVG(link string) (string, error) {
	qr, err := svg.New(link)
	if err != nil {
		return "", fmt.Errorf("failed to generate SVG QR code: %w", err)
	}
	return qr.String(), nil
}
