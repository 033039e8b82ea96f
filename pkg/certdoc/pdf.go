package certdoc

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Apply the QR code image to the bottom right corner of a PDF file,
// if array of selected pages is provided, will apply to those pages
// otherwise apply to all pages
func EmbedQRCodeToPdf(inFile, outFile, qrCodePath string, selectedPages []string) error {
	// scale is for image size, 1 means 100% of original size
	description := "pos: br, off: -10 10, scale: 1 abs, rotation: 0"
	err := api.AddImageWatermarksFile(inFile, outFile, selectedPages, true, qrCodePath, description, nil)
	if err != nil {
		return fmt.Errorf("failed to embed QR code in PDF: %w", err)
	}
	return nil
}
