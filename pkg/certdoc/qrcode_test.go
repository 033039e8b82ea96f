package certdoc

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
)

func TestGenerateQRCodePNG(t *testing.T) {
	data, err := GenerateQRCodePNG("http://localhost:3000/verify.html?id=CERT-001", 256)
	if err != nil {
		t.Fatalf("GenerateQRCodePNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Output is not a decodable PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 256 || bounds.Dy() != 256 {
		t.Errorf("Expected 256x256 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestGenerateQRCodeSVG(t *testing.T) {
	out, err := GenerateQRCodeSVG("http://localhost:3000/verify.html?id=CERT-001")
	if err != nil {
		t.Fatalf("GenerateQRCodeSVG() error: %v", err)
	}

	if !strings.Contains(out, "<svg") {
		t.Errorf("Expected an SVG document, got: %.80s", out)
	}
}
