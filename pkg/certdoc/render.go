package certdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

/*
 * Attention: tdewolff/canvas uses mm as the unit of measurement, the renderer
 * lays out an A4 landscape page (297 x 210 mm) directly in mm.
 */

const (
	pageWidthMM  = 297.0
	pageHeightMM = 210.0
)

// Data holds the certificate fields stamped onto the page.
type Data struct {
	ID     string
	Name   string
	Course string
	Date   string
	Status string
}

// The faces stamped onto the page. Sizes are in pt, colors hex.
var (
	headingFont = Font{Size: 20, Color: "#6b7280", Weight: FontWeightRegular}
	titleFont   = Font{Size: 42, Color: "#111827", Weight: FontWeightBold}
	bodyFont    = Font{Size: 16, Color: "#1f2937", Weight: FontWeightRegular}
	smallFont   = Font{Size: 11, Color: "#6b7280", Weight: FontWeightRegular}
	revokedFont = Font{Size: 24, Color: "#b91c1c", Weight: FontWeightBold}
)

type Renderer struct {
	cfg        *Config
	fontFamily *canvas.FontFamily
}

func (r *Renderer) face(f Font) *canvas.FontFace {
	return r.fontFamily.Face(f.Size, canvas.Hex(f.Color), f.GetFontStyle(), canvas.FontNormal)
}

// NewRenderer loads the named font family from the configured font directory.
// An empty fontName picks the first family found.
func NewRenderer(cfg *Config, fontName string) (*Renderer, error) {
	fontLoader, err := NewFontLoader(cfg.FontDir)
	if err != nil {
		return nil, err
	}

	fontFamily, err := fontLoader.LoadFont(fontName, canvas.FontRegular)
	if err != nil {
		return nil, err
	}

	return &Renderer{cfg: cfg, fontFamily: fontFamily}, nil
}

func (r *Renderer) drawCenteredLine(ctx *canvas.Context, face *canvas.FontFace, text string, y float64) {
	rt := canvas.NewRichText(face)
	rt.WriteString(text)

	textBox := rt.ToText(pageWidthMM, 30.0, canvas.Left, canvas.Top, 0.0, 0.0)
	textWidthMM := textBox.Bounds().W()

	ctx.DrawText((pageWidthMM-textWidthMM)/2, y, textBox)
}

// RenderPDF lays out the certificate page and writes it to outFile. The
// output path must carry a .pdf extension for the renderer to pick the
// right writer.
func (r *Renderer) RenderPDF(data Data, outFile string) error {
	c := canvas.New(pageWidthMM, pageHeightMM)
	canvasCtx := canvas.NewContext(c)
	// Change coordination from bottom-left to top-left
	canvasCtx.SetCoordSystem(canvas.CartesianIV)

	body := r.face(bodyFont)

	r.drawCenteredLine(canvasCtx, r.face(headingFont), "Certificate of Completion", 35)
	r.drawCenteredLine(canvasCtx, r.face(titleFont), data.Name, 70)
	r.drawCenteredLine(canvasCtx, body, fmt.Sprintf("has successfully completed %s", data.Course), 105)
	r.drawCenteredLine(canvasCtx, body, fmt.Sprintf("on %s", data.Date), 120)
	r.drawCenteredLine(canvasCtx, r.face(smallFont), fmt.Sprintf("Certificate ID: %s", data.ID), 160)

	if strings.EqualFold(data.Status, "Revoked") {
		r.drawCenteredLine(canvasCtx, r.face(revokedFont), "REVOKED", 180)
	}

	if err := renderers.Write(outFile, c); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}

// RenderPDFWithQR renders the certificate page and stamps a QR code linking
// to the public verification page into the bottom right corner.
func (r *Renderer) RenderPDFWithQR(data Data, verificationURL, outFile string) error {
	basePdf := filepath.Join(r.cfg.TmpDir, fmt.Sprintf("%s_base.pdf", data.ID))
	qrPng := filepath.Join(r.cfg.TmpDir, fmt.Sprintf("%s_qr.png", data.ID))
	defer os.Remove(basePdf)
	defer os.Remove(qrPng)

	if err := r.RenderPDF(data, basePdf); err != nil {
		return err
	}

	if err := GenerateQRCodePNGFile(verificationURL, qrPng, 50); err != nil {
		return err
	}

	return EmbedQRCodeToPdf(basePdf, outFile, qrPng, nil)
}
