package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/nis6tech/certify/internal/constant"
	"github.com/nis6tech/certify/internal/util"
	"github.com/nis6tech/certify/pkg/certdoc"
	"gorm.io/gorm"
)

// VerifyController serves the public, unauthenticated surface. Lookups go
// through the verification service so store failures never leak past
// not_found.
type VerifyController struct {
	*baseController
}

const QRCODE_DEFAULT_SIZE = 256

func (vc VerifyController) Verify(ctx *gin.Context) {
	certificateId := ctx.Param("certificateId")

	result := vc.app.Verifier.Verify(ctx, certificateId)

	util.ResponseSuccess(ctx, gin.H{
		"state":       result.State,
		"certificate": result.Certificate,
	})
}

// QRCode returns a QR image pointing at the verification page for the id.
// The image is generated for any id, existing or not: scanning it runs the
// verification and shows the real state.
func (vc VerifyController) QRCode(ctx *gin.Context) {
	certificateId := ctx.Param("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	link := util.VerificationURL(vc.app.Config.App.FrontURL, certificateId)

	format := ctx.DefaultQuery("format", "png")
	switch format {
	case "png":
		png, err := certdoc.GenerateQRCodePNG(link, QRCODE_DEFAULT_SIZE)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate QR code", util.GenerateErrorMessages(err), nil)
			return
		}
		ctx.Data(http.StatusOK, "image/png", png)
	case "svg":
		svg, err := certdoc.GenerateQRCodeSVG(link)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate QR code", util.GenerateErrorMessages(err), nil)
			return
		}
		ctx.Data(http.StatusOK, "image/svg+xml", []byte(svg))
	default:
		util.ResponseFailed(ctx, http.StatusBadRequest, "Unsupported format", util.GenerateErrorMessages(fmt.Errorf("unsupported format: %s", format), "format"), nil)
	}
}

// PDF renders a downloadable certificate document with the verification QR
// embedded. Only certificates that verify as valid or revoked get a
// document, an unknown id is a 404.
func (vc VerifyController) PDF(ctx *gin.Context) {
	certificateId := ctx.Param("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	result := vc.app.Verifier.Verify(ctx, certificateId)
	if result.State == constant.VerificationStateNotFound {
		util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New(ErrCertificateNotFound), "notFound"), nil)
		return
	}
	cert := result.Certificate

	renderer, err := certdoc.NewRenderer(certdoc.NewDefaultConfig(vc.app.Config.App.FontDir), "")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to prepare renderer", util.GenerateErrorMessages(err), nil)
		return
	}

	outDir, err := util.CreateTempDir("pdf-")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to render certificate", util.GenerateErrorMessages(err), nil)
		return
	}
	defer os.RemoveAll(outDir)
	outFile := filepath.Join(outDir, fmt.Sprintf("%s.pdf", cert.ID))

	data := certdoc.Data{
		ID:     cert.ID,
		Name:   cert.Name,
		Course: cert.Course,
		Date:   cert.Date,
		Status: string(cert.Status),
	}
	if err := renderer.RenderPDFWithQR(data, util.VerificationURL(vc.app.Config.App.FrontURL, cert.ID), outFile); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to render certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s.pdf", cert.ID)))
	ctx.File(outFile)
}

// Badge streams the linked badge image straight from object storage.
func (vc VerifyController) Badge(ctx *gin.Context) {
	certificateId := ctx.Param("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	cert, err := vc.app.Repository.Certificate.GetById(ctx, nil, certificateId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New(ErrCertificateNotFound), "notFound"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	if cert.BadgeFile == nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Certificate has no badge", util.GenerateErrorMessages(errors.New("certificate has no badge"), "badge"), nil)
		return
	}

	object, err := vc.app.S3.GetObject(ctx, cert.BadgeFile.BucketName, cert.BadgeFile.UniqueFileName, minio.GetObjectOptions{})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get badge", util.GenerateErrorMessages(err), nil)
		return
	}
	defer object.Close()

	stat, err := object.Stat()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get badge", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Header("Content-Type", stat.ContentType)
	ctx.Header("Content-Length", fmt.Sprintf("%d", stat.Size))
	ctx.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", cert.BadgeFile.ToBaseFilename()))
	ctx.Status(http.StatusOK)

	if _, err := io.Copy(ctx.Writer, object); err != nil {
		vc.app.Logger.Errorf("Failed to stream badge for certificate %s: %v", certificateId, err)
	}
}
