package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nis6tech/certify/internal/constant"
	"github.com/nis6tech/certify/internal/mailer"
	"github.com/nis6tech/certify/internal/model"
	"github.com/nis6tech/certify/internal/repository"
	"github.com/nis6tech/certify/internal/util"
	"gorm.io/gorm"
)

type CertificateController struct {
	*baseController
}

const (
	ErrCertificateIdRequired = "certificate id is required"
	ErrCertificateNotFound   = "certificate not found"
)

type certificateResponse struct {
	ID       string                     `json:"id"`
	Name     string                     `json:"name"`
	Course   string                     `json:"course"`
	Date     string                     `json:"date"`
	Status   constant.CertificateStatus `json:"status"`
	Email    string                     `json:"email,omitempty"`
	BadgeUrl string                     `json:"badgeUrl,omitempty"`
}

func (cc CertificateController) toResponse(ctx *gin.Context, cert *model.Certificate) certificateResponse {
	resp := certificateResponse{
		ID:     cert.ID,
		Name:   cert.Name,
		Course: cert.Course,
		Date:   cert.Date,
		Status: cert.Status,
		Email:  cert.Email,
	}

	if cert.BadgeFile != nil {
		url, err := cert.BadgeFile.ToPresignedUrl(ctx, cc.app.S3)
		if err != nil {
			// The list stays usable without the badge link
			cc.app.Logger.Errorf("Failed to presign badge URL for certificate %s: %v", cert.ID, err)
		} else {
			resp.BadgeUrl = url
		}
	}

	return resp
}

// List returns the full collection in provider order. The admin table is a
// full-replace render, every call re-fetches.
func (cc CertificateController) List(ctx *gin.Context) {
	certificates, err := cc.app.Repository.Certificate.GetAll(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificates", util.GenerateErrorMessages(err), nil)
		return
	}

	certificateList := make([]certificateResponse, len(certificates))
	for i := range certificates {
		certificateList[i] = cc.toResponse(ctx, &certificates[i])
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificates": certificateList,
	})
}

// GetById serves the edit form: always a fresh read, never a cached row.
func (cc CertificateController) GetById(ctx *gin.Context) {
	certificateId := ctx.Param("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	cert, err := cc.app.Repository.Certificate.GetById(ctx, nil, certificateId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New(ErrCertificateNotFound), "notFound"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificate": cc.toResponse(ctx, cert),
	})
}

func (cc CertificateController) Create(ctx *gin.Context) {
	var newCert model.Certificate
	if err := ctx.ShouldBind(&newCert); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.Certificate.Create(ctx, nil, &newCert); err != nil {
		if errors.Is(err, repository.ErrDuplicateCertificateId) {
			util.ResponseFailed(ctx, http.StatusConflict, "Certificate ID already exists", util.GenerateErrorMessages(err, "id"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificate": cc.toResponse(ctx, &newCert),
	})
}

// Update applies a partial merge. The id cannot be changed through this
// path: the route parameter addresses the row and any id field in the body
// is ignored.
func (cc CertificateController) Update(ctx *gin.Context) {
	certificateId := ctx.Param("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	type UpdateCertificateRequest struct {
		Name   *string                     `json:"name" form:"name" binding:"omitempty,strNotEmpty,cmax=120"`
		Course *string                     `json:"course" form:"course" binding:"omitempty,strNotEmpty,cmax=120"`
		Date   *string                     `json:"date" form:"date" binding:"omitempty,strNotEmpty,cmax=32"`
		Status *constant.CertificateStatus `json:"status" form:"status" binding:"omitempty,oneof=Verified Revoked"`
		Email  *string                     `json:"email" form:"email" binding:"omitempty,email"`
	}

	var req UpdateCertificateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Course != nil {
		fields["course"] = *req.Course
	}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}

	if err := cc.app.Repository.Certificate.Update(ctx, nil, certificateId, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New(ErrCertificateNotFound), "notFound"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	cert, err := cc.app.Repository.Certificate.GetById(ctx, nil, certificateId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"certificate": cc.toResponse(ctx, cert),
	})
}

// Revoke is the delete operation: a soft status transition, the row stays.
func (cc CertificateController) Revoke(ctx *gin.Context) {
	certificateId := ctx.Param("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	if err := cc.app.Repository.Certificate.Revoke(ctx, nil, certificateId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New(ErrCertificateNotFound), "notFound"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to revoke certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// Notify mails the candidate their certificate id and verification link.
func (cc CertificateController) Notify(ctx *gin.Context) {
	certificateId := ctx.Param("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	cert, err := cc.app.Repository.Certificate.GetById(ctx, nil, certificateId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New(ErrCertificateNotFound), "notFound"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	if cert.Email == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate has no candidate email", util.GenerateErrorMessages(errors.New("certificate has no candidate email"), "email"), nil)
		return
	}

	vars := struct {
		Name            string
		Course          string
		Date            string
		CertificateId   string
		VerificationURL string
		AppName         string
	}{
		Name:            cert.Name,
		Course:          cert.Course,
		Date:            cert.Date,
		CertificateId:   cert.ID,
		VerificationURL: util.VerificationURL(cc.app.Config.App.FrontURL, cert.ID),
		AppName:         util.GetAppName(),
	}

	template := mailerTemplateForStatus(cert.Status)
	if _, err := cc.app.Mailer.Send(template, cert.Name, cert.Email, vars); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to send notification mail", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// UploadBadge stores a badge image for the certificate in object storage and
// links it. The admin list and the public badge endpoint serve it back.
func (cc CertificateController) UploadBadge(ctx *gin.Context) {
	certificateId := ctx.Param("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	if _, err := cc.app.Repository.Certificate.GetById(ctx, nil, certificateId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(errors.New(ErrCertificateNotFound), "notFound"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	fileHeader, err := ctx.FormFile("badge")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Badge file is required", util.GenerateErrorMessages(err, "badge"), nil)
		return
	}

	info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
		DirectoryPath: util.BadgeDirectoryPath(certificateId),
		UniquePrefix:  true,
		Bucket:        cc.app.Config.App.BadgeBucket,
		S3:            cc.app.S3,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload badge", util.GenerateErrorMessages(err), nil)
		return
	}

	file, err := cc.app.Repository.File.Create(ctx, nil, &model.File{
		FileName:       fileHeader.Filename,
		UniqueFileName: info.Key,
		BucketName:     info.Bucket,
		Size:           info.Size,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save badge file", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.Certificate.Update(ctx, nil, certificateId, map[string]any{
		"badge_file_id": file.ID,
	}); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to link badge file", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"badgeFile": file,
	})
}

func mailerTemplateForStatus(status constant.CertificateStatus) string {
	if status == constant.CertificateStatusRevoked {
		return mailer.CERTIFICATE_REVOKED_TEMPLATE
	}
	return mailer.CERTIFICATE_ISSUED_TEMPLATE
}
