package model

import (
	"time"

	"github.com/nis6tech/certify/internal/constant"
)

// Certificate does not embed BaseModel: the id is assigned by the issuer at
// creation and doubles as the document key, so no uuid hook may overwrite it.
type Certificate struct {
	ID     string `gorm:"type:text;primaryKey" json:"id" form:"id" binding:"required,strNotEmpty,cmax=64"`
	Name   string `gorm:"type:text;not null" json:"name" form:"name" binding:"required,strNotEmpty,cmax=120"`
	Course string `gorm:"type:text;not null" json:"course" form:"course" binding:"required,strNotEmpty,cmax=120"`
	// Completion date as supplied by the issuer, not validated for calendar
	// correctness.
	Date   string                     `gorm:"type:text;not null" json:"date" form:"date" binding:"required,strNotEmpty,cmax=32"`
	Status constant.CertificateStatus `gorm:"type:text;not null;default:Verified" json:"status" form:"status" binding:"omitempty,oneof=Verified Revoked"`

	// Candidate email, used for the issuance notification mail. Optional.
	Email string `gorm:"type:text;default:null" json:"email,omitempty" form:"email" binding:"omitempty,email"`

	BadgeFileId string `gorm:"type:text;default:null" json:"badgeFileId,omitempty" form:"badgeFileId"`
	BadgeFile   *File  `gorm:"foreignKey:BadgeFileId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"badgeFile,omitempty" form:"badgeFile"`

	CreatedAt *time.Time `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP;not null" json:"-"`
	UpdatedAt *time.Time `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP;onUpdate:CURRENT_TIMESTAMP;not null" json:"-"`
}

func (c Certificate) TableName() string {
	return "certificates"
}

func (c Certificate) Revoked() bool {
	return c.Status == constant.CertificateStatusRevoked
}
